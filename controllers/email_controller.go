package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"github.com/DavidBatoDev/pup-alumni-portal-server/utils"
)

type surveyInviteEmailReq struct {
	SurveyID  uint   `json:"survey_id" binding:"required"`
	AlumniIDs []uint `json:"alumni_ids" binding:"required,min=1"`
}

// SendSurveyInviteEmail mails a survey invitation to the selected alumni.
// Admin only. Delivery failures are logged per recipient and reported back
// without aborting the rest of the batch.
func SendSurveyInviteEmail(c *gin.Context) {
	var req surveyInviteEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "survey_id and a non-empty alumni_ids list are required"})
		return
	}

	var survey models.Survey
	if err := config.DB.First(&survey, req.SurveyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
		return
	}

	var alumni []models.Alumni
	if err := config.DB.Where("alumni_id IN ?", req.AlumniIDs).Find(&alumni).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch alumni"})
		return
	}
	if len(alumni) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No alumni found for the given IDs"})
		return
	}

	subject := "You are invited: " + survey.Title
	sentTo := make([]string, 0, len(alumni))
	failed := make([]string, 0)

	for _, a := range alumni {
		plain := fmt.Sprintf(
			"Hi %s,\n\nYou are invited to take the survey \"%s\". Log in to the alumni portal and open /survey/%d to respond.\n\nThank you!",
			a.FirstName, survey.Title, survey.ID,
		)
		html := fmt.Sprintf(
			"<p>Hi %s,</p><p>You are invited to take the survey <strong>%s</strong>.</p><p>Log in to the alumni portal and open <a href=\"/survey/%d\">the survey page</a> to respond.</p><p>Thank you!</p>",
			a.FirstName, survey.Title, survey.ID,
		)
		if err := utils.SendMail(a.FullName(), a.Email, subject, plain, html); err != nil {
			log.Printf("SendSurveyInviteEmail to %s: %v", a.Email, err)
			failed = append(failed, a.Email)
			continue
		}
		sentTo = append(sentTo, a.Email)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Sent %d of %d invitation emails", len(sentTo), len(alumni)),
		"data": gin.H{
			"emails_sent_to": sentTo,
			"failed":         failed,
		},
	})
}
