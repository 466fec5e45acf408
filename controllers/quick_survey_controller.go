package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

type quickSurveyReq struct {
	SelectedOptions []string `json:"selected_options" binding:"required,min=1"`
	OtherResponse   *string  `json:"other_response"`
}

// SubmitQuickSurvey stores the onboarding quick-survey answers. One row per
// alumni; resubmitting replaces the previous answers.
func SubmitQuickSurvey(c *gin.Context) {
	alumni := currentAlumni(c)

	var req quickSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "selected_options must be a non-empty list"})
		return
	}
	for _, opt := range req.SelectedOptions {
		if strings.TrimSpace(opt) == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "selected_options must not contain blank entries"})
			return
		}
	}

	encoded, err := json.Marshal(req.SelectedOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to save quick survey response"})
		return
	}

	var existing models.QuickSurveyResponse
	res := config.DB.Where("alumni_id = ?", alumni.ID).First(&existing)
	if res.Error == nil {
		existing.SelectedOptions = string(encoded)
		existing.OtherResponse = req.OtherResponse
		if err := config.DB.Save(&existing).Error; err != nil {
			log.Printf("SubmitQuickSurvey update alumni=%d: %v", alumni.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to save quick survey response"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quick survey response updated", "data": existing})
		return
	}

	row := models.QuickSurveyResponse{
		AlumniID:        alumni.ID,
		SelectedOptions: string(encoded),
		OtherResponse:   req.OtherResponse,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		log.Printf("SubmitQuickSurvey create alumni=%d: %v", alumni.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to save quick survey response"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Quick survey response saved", "data": row})
}

// CheckQuickSurveyStatus tells the client whether the alumni already
// answered the quick survey, returning the stored answers when present.
func CheckQuickSurveyStatus(c *gin.Context) {
	alumni := currentAlumni(c)

	var row models.QuickSurveyResponse
	if err := config.DB.Where("alumni_id = ?", alumni.ID).First(&row).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"answered": false}})
		return
	}

	var options []string
	if err := json.Unmarshal([]byte(row.SelectedOptions), &options); err != nil {
		log.Printf("CheckQuickSurveyStatus decode alumni=%d: %v", alumni.ID, err)
		options = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"answered":         true,
			"selected_options": options,
			"other_response":   row.OtherResponse,
			"submitted_at":     row.CreatedAt,
		},
	})
}
