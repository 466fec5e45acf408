package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

type questionResponseReq struct {
	QuestionID   uint    `json:"question_id" binding:"required"`
	OptionID     *uint   `json:"option_id"`
	ResponseText *string `json:"response_text"`
}

type submitResponseReq struct {
	Responses []questionResponseReq `json:"responses" binding:"required,min=1"`
}

/* ========== Submit a response ========== */

// SubmitSurveyResponse validates the submission against the survey's schema
// and persists it atomically. The (survey_id, alumni_id) unique index is the
// authoritative duplicate guard; the lookup below only produces the
// friendlier error message.
func SubmitSurveyResponse(c *gin.Context) {
	surveyID, err := strconv.Atoi(c.Param("id"))
	if err != nil || surveyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid survey ID"})
		return
	}

	var survey models.Survey
	if err := config.DB.First(&survey, surveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch survey"})
		return
	}

	alumni := currentAlumni(c)

	var existing int64
	config.DB.Model(&models.FeedbackResponse{}).
		Where("survey_id = ? AND alumni_id = ?", survey.ID, alumni.ID).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "You have already submitted a response for this survey"})
		return
	}

	var req submitResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid payload", "message": err.Error()})
		return
	}

	var questions []models.SurveyQuestion
	if err := config.DB.Where("survey_id = ?", survey.ID).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch survey questions"})
		return
	}

	surveyQuestions := make(map[uint]bool, len(questions))
	for _, q := range questions {
		surveyQuestions[q.ID] = true
	}

	// Every submitted question must belong to this exact survey.
	answered := make(map[uint]bool, len(req.Responses))
	for _, r := range req.Responses {
		if !surveyQuestions[r.QuestionID] {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Question %d does not belong to the specified survey", r.QuestionID),
			})
			return
		}
		answered[r.QuestionID] = true
	}

	// The answered set must cover the full question set.
	var unanswered []uint
	for _, q := range questions {
		if !answered[q.ID] {
			unanswered = append(unanswered, q.ID)
		}
	}
	if len(unanswered) > 0 {
		sort.Slice(unanswered, func(i, j int) bool { return unanswered[i] < unanswered[j] })
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   "All questions must be answered",
			"data":    gin.H{"unanswered_question_ids": unanswered},
		})
		return
	}

	// Selected options must belong to their question, and choosing an
	// "Others" option requires free text.
	for _, r := range req.Responses {
		if r.OptionID == nil {
			continue
		}
		var option models.SurveyOption
		if err := config.DB.
			Where("option_id = ? AND question_id = ?", *r.OptionID, r.QuestionID).
			First(&option).Error; err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Option %d is not valid for question %d", *r.OptionID, r.QuestionID),
			})
			return
		}
		if option.IsOtherOption && (r.ResponseText == nil || strings.TrimSpace(*r.ResponseText) == "") {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error":   fmt.Sprintf(`Response text is required when selecting "Others" for question ID %d`, r.QuestionID),
			})
			return
		}
	}

	// Best-effort respondent ordinal; racy under concurrent submissions and
	// only used for the "you were respondent #N" message.
	var ordinal int64
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FeedbackResponse{}).
			Where("survey_id = ?", survey.ID).
			Count(&ordinal).Error; err != nil {
			return err
		}

		feedback := models.FeedbackResponse{
			SurveyID:     survey.ID,
			AlumniID:     alumni.ID,
			ResponseDate: time.Now(),
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}

		rows := make([]models.QuestionResponse, 0, len(req.Responses))
		for _, r := range req.Responses {
			rows = append(rows, models.QuestionResponse{
				ResponseID:   feedback.ID,
				QuestionID:   r.QuestionID,
				OptionID:     r.OptionID,
				ResponseText: r.ResponseText,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		return markInvitationRead(tx, survey.ID, alumni.ID)
	})
	if err != nil {
		// The unique index may have rejected a concurrent duplicate; report
		// it as the same conflict the pre-check would have.
		var count int64
		config.DB.Model(&models.FeedbackResponse{}).
			Where("survey_id = ? AND alumni_id = ?", survey.ID, alumni.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "You have already submitted a response for this survey"})
			return
		}
		log.Printf("SubmitSurveyResponse survey=%d alumni=%d: %v", survey.ID, alumni.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while submitting the survey response"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Survey responses submitted successfully",
		"data":    gin.H{"order": ordinal + 1},
	})
}

// markInvitationRead flips the alumni's survey-invitation notification, if
// one exists. Located through the notification's survey reference.
func markInvitationRead(tx *gorm.DB, surveyID, alumniID uint) error {
	var notification models.Notification
	err := tx.Where("type = ? AND survey_id = ?", "surveyInvitation", surveyID).
		First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("no matching notification found for survey ID %d", surveyID)
		return nil
	}
	if err != nil {
		return err
	}
	return tx.Model(&models.AlumniNotification{}).
		Where("alumni_id = ? AND notification_id = ?", alumniID, notification.ID).
		Update("is_read", true).Error
}

/* ========== Aggregate: all respondents per question ========== */

// GetSurveyResponses projects every respondent's answer under each question
// of each section, with the alumni's demographic fields alongside.
// Respondents with no stored answer for a question yield null fields.
func GetSurveyResponses(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid survey ID"})
		return
	}

	var survey models.Survey
	err = config.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, section_id ASC") }).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, question_id ASC") }).
		Preload("FeedbackResponses", func(db *gorm.DB) *gorm.DB { return db.Order("response_id ASC") }).
		Preload("FeedbackResponses.Alumni").
		Preload("FeedbackResponses.QuestionResponses").
		Preload("FeedbackResponses.QuestionResponses.Option").
		First(&survey, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
		return
	}
	if err != nil {
		log.Printf("GetSurveyResponses %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while fetching survey responses"})
		return
	}

	sections := make([]gin.H, 0, len(survey.Sections))
	for _, section := range survey.Sections {
		questions := make([]gin.H, 0, len(section.Questions))
		for _, question := range section.Questions {
			responses := make([]gin.H, 0, len(survey.FeedbackResponses))
			for _, feedback := range survey.FeedbackResponses {
				row := gin.H{
					"response_id":       feedback.ID,
					"alumni_id":         feedback.AlumniID,
					"alumni_email":      feedback.Alumni.Email,
					"alumni_first_name": feedback.Alumni.FirstName,
					"alumni_last_name":  feedback.Alumni.LastName,
					"gender":            feedback.Alumni.Gender,
					"graduation_year":   feedback.Alumni.GraduationYear,
					"date_of_birth":     feedback.Alumni.DateOfBirth,
					"major":             feedback.Alumni.Major,
					"response_text":     nil,
					"option_text":       nil,
					"option_value":      nil,
				}
				if qr := findQuestionResponse(feedback.QuestionResponses, question.ID); qr != nil {
					row["response_text"] = qr.ResponseText
					if qr.Option != nil {
						row["option_text"] = qr.Option.OptionText
						row["option_value"] = qr.Option.OptionValue
					}
				}
				responses = append(responses, row)
			}
			questions = append(questions, gin.H{
				"question_id":   question.ID,
				"question_text": question.QuestionText,
				"responses":     responses,
			})
		}
		sections = append(sections, gin.H{
			"section_id":    section.ID,
			"section_title": section.SectionTitle,
			"questions":     questions,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"survey_id": survey.ID,
			"title":     survey.Title,
			"sections":  sections,
		},
	})
}

/* ========== Single respondent's answer sheet ========== */

// GetResponseDetail returns the complete schema with one alumni's answer
// attached to each question; response is null where no answer was stored.
func GetResponseDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("responseId"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid response ID"})
		return
	}

	var feedback models.FeedbackResponse
	err = config.DB.
		Preload("Survey.Sections", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, section_id ASC") }).
		Preload("Survey.Sections.Questions", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, question_id ASC") }).
		Preload("Survey.Sections.Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, option_id ASC") }).
		Preload("QuestionResponses").
		Preload("QuestionResponses.Option").
		Preload("Alumni").
		First(&feedback, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Feedback response not found"})
		return
	}
	if err != nil {
		log.Printf("GetResponseDetail %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while fetching the survey questions and answers"})
		return
	}

	sections := make([]gin.H, 0, len(feedback.Survey.Sections))
	for _, section := range feedback.Survey.Sections {
		questions := make([]gin.H, 0, len(section.Questions))
		for _, question := range section.Questions {
			options := make([]gin.H, 0, len(question.Options))
			for _, option := range question.Options {
				options = append(options, gin.H{
					"option_id":       option.ID,
					"option_text":     option.OptionText,
					"option_value":    option.OptionValue,
					"is_other_option": option.IsOtherOption,
				})
			}

			var response gin.H
			if qr := findQuestionResponse(feedback.QuestionResponses, question.ID); qr != nil {
				response = gin.H{
					"response_text":   qr.ResponseText,
					"selected_option": nil,
				}
				if qr.Option != nil {
					response["selected_option"] = gin.H{
						"option_id":    qr.Option.ID,
						"option_text":  qr.Option.OptionText,
						"option_value": qr.Option.OptionValue,
					}
				}
			}

			questions = append(questions, gin.H{
				"question_id":   question.ID,
				"question_text": question.QuestionText,
				"question_type": question.QuestionType,
				"is_required":   question.IsRequired,
				"options":       options,
				"response":      response,
			})
		}
		sections = append(sections, gin.H{
			"section_id":          section.ID,
			"section_title":       section.SectionTitle,
			"section_description": section.SectionDescription,
			"questions":           questions,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"survey_id":   feedback.Survey.ID,
			"title":       feedback.Survey.Title,
			"description": feedback.Survey.Description,
			"alumni": gin.H{
				"alumni_id":  feedback.Alumni.ID,
				"first_name": feedback.Alumni.FirstName,
				"last_name":  feedback.Alumni.LastName,
				"email":      feedback.Alumni.Email,
			},
			"sections": sections,
		},
	})
}

/* ========== All responses across surveys ========== */

func GetAllResponsesWithAlumni(c *gin.Context) {
	var responses []models.FeedbackResponse
	if err := config.DB.Preload("Alumni").Order("response_id ASC").Find(&responses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while fetching the responses"})
		return
	}

	data := make([]gin.H, 0, len(responses))
	for _, r := range responses {
		data = append(data, gin.H{
			"response_id":   r.ID,
			"survey_id":     r.SurveyID,
			"response_date": r.ResponseDate,
			"alumni": gin.H{
				"alumni_id":    r.Alumni.ID,
				"alumni_name":  r.Alumni.FullName(),
				"alumni_email": r.Alumni.Email,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func findQuestionResponse(responses []models.QuestionResponse, questionID uint) *models.QuestionResponse {
	for i := range responses {
		if responses[i].QuestionID == questionID {
			return &responses[i]
		}
	}
	return nil
}
