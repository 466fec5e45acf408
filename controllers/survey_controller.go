package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"github.com/DavidBatoDev/pup-alumni-portal-server/utils"
)

/* ========== Create survey (admin) ========== */

// CreateSurvey validates the whole nested definition up front, then
// materializes survey -> sections -> questions -> options in one
// transaction, appending the synthetic "Others" option where requested.
// The invitation notification and its fan-out ride the same transaction so
// readers never see a half-built schema or a notification without a survey.
func CreateSurvey(c *gin.Context) {
	var def utils.SurveyDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid payload", "message": err.Error()})
		return
	}

	if errs := def.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": errs, "message": "Survey definition is invalid"})
		return
	}

	// Already validated.
	startDate, _ := utils.ParseDate(def.StartDate)
	endDate, _ := utils.ParseDate(def.EndDate)

	var survey models.Survey
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		survey = models.Survey{
			Title:       def.Title,
			Description: def.Description,
			StartDate:   startDate,
			EndDate:     endDate,
		}
		if err := tx.Create(&survey).Error; err != nil {
			return err
		}

		for i, secDef := range def.Sections {
			section := models.SurveySection{
				SurveyID:           survey.ID,
				SectionTitle:       secDef.SectionTitle,
				SectionDescription: secDef.SectionDescription,
				SortOrder:          i,
			}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}

			for j, qDef := range secDef.Questions {
				question := models.SurveyQuestion{
					SurveyID:     survey.ID,
					SectionID:    section.ID,
					QuestionText: qDef.QuestionText,
					QuestionType: qDef.QuestionType,
					IsRequired:   qDef.IsRequired,
					SortOrder:    j,
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}

				options := make([]models.SurveyOption, 0, len(qDef.Options)+1)
				for k, oDef := range qDef.Options {
					options = append(options, models.SurveyOption{
						QuestionID:  question.ID,
						OptionText:  oDef.OptionText,
						OptionValue: oDef.OptionValue,
						SortOrder:   k,
					})
				}
				if qDef.IsOtherOption && models.QuestionTypeAllowsOther(qDef.QuestionType) {
					options = append(options, models.SurveyOption{
						QuestionID:    question.ID,
						OptionText:    "Others",
						IsOtherOption: true,
						SortOrder:     len(qDef.Options),
					})
				}
				if len(options) > 0 {
					if err := tx.Create(&options).Error; err != nil {
						return err
					}
				}
			}
		}

		notification := models.Notification{
			Type:     "surveyInvitation",
			Alert:    "Survey Invitation",
			Title:    def.Title,
			Message:  "A new survey has been created: " + def.Title + ". Please participate before " + endDate.Format("2006-01-02"),
			Link:     fmt.Sprintf("/survey/%d", survey.ID),
			SurveyID: &survey.ID,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}
		return fanOutNotification(tx, notification.ID)
	})
	if err != nil {
		log.Printf("CreateSurvey: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to create survey"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Survey with sections and questions created successfully",
		"data":    survey,
	})
}

/* ========== Delete survey (admin) ========== */

// DeleteSurvey removes a survey and everything hanging off it: sections,
// questions, options, and all collected responses.
func DeleteSurvey(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid survey ID"})
		return
	}

	var survey models.Survey
	if err := config.DB.First(&survey, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch survey"})
		return
	}

	questionIDs := config.DB.Model(&models.SurveyQuestion{}).Select("question_id").Where("survey_id = ?", survey.ID)
	responseIDs := config.DB.Model(&models.FeedbackResponse{}).Select("response_id").Where("survey_id = ?", survey.ID)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id IN (?)", responseIDs).Delete(&models.QuestionResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", survey.ID).Delete(&models.FeedbackResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&models.SurveyOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", survey.ID).Delete(&models.SurveyQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", survey.ID).Delete(&models.SurveySection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&survey).Error
	})
	if err != nil {
		log.Printf("DeleteSurvey %d: %v", survey.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to delete survey"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Survey and its associated questions and options deleted successfully"})
}

/* ========== Schema fetch ========== */

// GetSurveyWithQuestions returns the full nested schema in authoring order.
func GetSurveyWithQuestions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid survey ID"})
		return
	}

	survey, err := loadSurveySchema(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
		return
	}
	if err != nil {
		log.Printf("GetSurveyWithQuestions %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch survey"})
		return
	}

	sections := make([]gin.H, 0, len(survey.Sections))
	for _, section := range survey.Sections {
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
			questions = append(questions, gin.H{
				"question_id":   question.ID,
				"question_text": question.QuestionText,
				"question_type": question.QuestionType,
				"is_required":   question.IsRequired,
				"options":       options,
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
			"survey_id":   survey.ID,
			"survey":      survey.Title,
			"description": survey.Description,
			"start_date":  survey.StartDate,
			"end_date":    survey.EndDate,
			"sections":    sections,
		},
	})
}

// loadSurveySchema fetches the survey tree ordered by the explicit rank
// columns, so authoring, respondent and reporting views line up.
func loadSurveySchema(surveyID uint) (*models.Survey, error) {
	var survey models.Survey
	err := config.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, section_id ASC") }).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, question_id ASC") }).
		Preload("Sections.Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, option_id ASC") }).
		First(&survey, surveyID).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

/* ========== Listings ========== */

func GetAllSurveys(c *gin.Context) {
	var surveys []models.Survey
	if err := config.DB.Order("creation_date DESC").Find(&surveys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch surveys"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": surveys})
}

// GetUnansweredSurveys lists surveys the authenticated alumni has not
// responded to yet.
func GetUnansweredSurveys(c *gin.Context) {
	alumni := currentAlumni(c)

	answered := config.DB.Model(&models.FeedbackResponse{}).
		Select("survey_id").
		Where("alumni_id = ?", alumni.ID)

	var surveys []models.Survey
	if err := config.DB.
		Where("survey_id NOT IN (?)", answered).
		Order("creation_date DESC").
		Find(&surveys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch surveys"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": surveys})
}

func GetAnsweredSurveys(c *gin.Context) {
	alumni := currentAlumni(c)

	answered := config.DB.Model(&models.FeedbackResponse{}).
		Select("survey_id").
		Where("alumni_id = ?", alumni.ID)

	var surveys []models.Survey
	if err := config.DB.
		Where("survey_id IN (?)", answered).
		Order("creation_date DESC").
		Find(&surveys).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch surveys"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": surveys})
}
