package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"github.com/DavidBatoDev/pup-alumni-portal-server/utils"
)

/* ========== Profile ========== */

func GetProfile(c *gin.Context) {
	alumni := currentAlumni(c)

	if err := config.DB.
		Preload("Address").
		Preload("EmploymentHistory").
		Preload("EducationHistory").
		First(&alumni, alumni.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": alumni})
}

type updateProfileReq struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	DateOfBirth     *string `json:"date_of_birth"`
	Gender          *string `json:"gender"`
	GraduationYear  *int    `json:"graduation_year"`
	Degree          *string `json:"degree"`
	Major           *string `json:"major"`
	CurrentJobTitle *string `json:"current_job_title"`
	CurrentEmployer *string `json:"current_employer"`
	LinkedinProfile *string `json:"linkedin_profile"`
	Password        *string `json:"password"`
}

// UpdateProfile patches the provided fields. Accepts plain JSON, or
// multipart form-data with a "data" JSON part plus an optional
// "profile_picture" file stored through the upload bucket.
func UpdateProfile(c *gin.Context) {
	alumni := currentAlumni(c)

	var req updateProfileReq
	isMultipart := strings.Contains(c.Request.Header.Get("Content-Type"), "multipart/form-data")
	if isMultipart {
		data := c.PostForm("data")
		if data != "" {
			if err := json.Unmarshal([]byte(data), &req); err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid JSON in form data"})
				return
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid payload", "message": err.Error()})
			return
		}
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		var count int64
		config.DB.Model(&models.Alumni{}).
			Where("email = ? AND alumni_id <> ?", *req.Email, alumni.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Email already in use"})
			return
		}
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		dob, err := utils.ParseDate(*req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "date_of_birth must be a valid date"})
			return
		}
		updates["date_of_birth"] = dob
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.GraduationYear != nil {
		updates["graduation_year"] = *req.GraduationYear
	}
	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}
	if req.Major != nil {
		updates["major"] = *req.Major
	}
	if req.CurrentJobTitle != nil {
		updates["current_job_title"] = *req.CurrentJobTitle
	}
	if req.CurrentEmployer != nil {
		updates["current_employer"] = *req.CurrentEmployer
	}
	if req.LinkedinProfile != nil {
		updates["linkedin_profile"] = *req.LinkedinProfile
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "password must be at least 8 characters"})
			return
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to hash password"})
			return
		}
		updates["password"] = hash
	}

	if isMultipart {
		if fileHeader, err := c.FormFile("profile_picture"); err == nil {
			fileID := fmt.Sprintf("alumni_%d", alumni.ID)
			url, upErr := utils.UploadToSupabase(fileHeader, fileHeader.Filename, fileID, "profile_pictures", "")
			if upErr != nil {
				log.Printf("UpdateProfile upload alumni=%d: %v", alumni.ID, upErr)
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to upload profile picture"})
				return
			}
			updates["profile_picture"] = url
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&models.Alumni{}).
		Where("alumni_id = ?", alumni.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to update profile"})
		return
	}

	var updated models.Alumni
	config.DB.First(&updated, alumni.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully", "data": updated})
}

/* ========== Address ========== */

type addressReq struct {
	Street     string `json:"street" binding:"required,max=255"`
	City       string `json:"city" binding:"required,max=255"`
	State      string `json:"state" binding:"required,max=255"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`
	Country    string `json:"country" binding:"required,max=100"`
}

func AddAddress(c *gin.Context) {
	alumni := currentAlumni(c)

	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	address := models.Address{
		AlumniID:   alumni.ID,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	if err := config.DB.Create(&address).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to add address"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Address added successfully", "data": address})
}

type updateAddressReq struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

func UpdateAddress(c *gin.Context) {
	alumni := currentAlumni(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid address ID"})
		return
	}

	var address models.Address
	if err := config.DB.
		Where("address_id = ? AND alumni_id = ?", id, alumni.ID).
		First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
		return
	}

	var req updateAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&address).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to update address"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address updated successfully", "data": address})
}

/* ========== Employment history ========== */

type employmentReq struct {
	Company     string  `json:"company" binding:"required,max=255"`
	JobTitle    string  `json:"job_title" binding:"required,max=255"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

func AddEmploymentHistory(c *gin.Context) {
	alumni := currentAlumni(c)

	var req employmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "start_date must be a valid date"})
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "end_date must be a valid date"})
		return
	}

	employment := models.EmploymentHistory{
		AlumniID:    alumni.ID,
		Company:     req.Company,
		JobTitle:    req.JobTitle,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
	}
	if err := config.DB.Create(&employment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to add employment history"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Employment history added successfully", "data": employment})
}

func UpdateEmploymentHistory(c *gin.Context) {
	alumni := currentAlumni(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid employment history ID"})
		return
	}

	var employment models.EmploymentHistory
	if err := config.DB.
		Where("employment_id = ? AND alumni_id = ?", id, alumni.ID).
		First(&employment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Employment history not found"})
		return
	}

	var req struct {
		Company     *string `json:"company"`
		JobTitle    *string `json:"job_title"`
		StartDate   *string `json:"start_date"`
		EndDate     *string `json:"end_date"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "start_date must be a valid date"})
			return
		}
		updates["start_date"] = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "end_date must be a valid date"})
			return
		}
		updates["end_date"] = end
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&employment).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to update employment history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employment history updated successfully", "data": employment})
}

/* ========== Education history ========== */

type educationReq struct {
	Institution  string  `json:"institution" binding:"required,max=255"`
	Degree       string  `json:"degree" binding:"required,max=255"`
	FieldOfStudy string  `json:"field_of_study" binding:"required,max=255"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      *string `json:"end_date"`
}

func AddEducationHistory(c *gin.Context) {
	alumni := currentAlumni(c)

	var req educationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "start_date must be a valid date"})
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "end_date must be a valid date"})
		return
	}

	education := models.EducationHistory{
		AlumniID:     alumni.ID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    start,
		EndDate:      end,
	}
	if err := config.DB.Create(&education).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to add education history"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Education history added successfully", "data": education})
}

func UpdateEducationHistory(c *gin.Context) {
	alumni := currentAlumni(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid education history ID"})
		return
	}

	var education models.EducationHistory
	if err := config.DB.
		Where("education_id = ? AND alumni_id = ?", id, alumni.ID).
		First(&education).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Education history not found"})
		return
	}

	var req struct {
		Institution  *string `json:"institution"`
		Degree       *string `json:"degree"`
		FieldOfStudy *string `json:"field_of_study"`
		StartDate    *string `json:"start_date"`
		EndDate      *string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Institution != nil {
		updates["institution"] = *req.Institution
	}
	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}
	if req.FieldOfStudy != nil {
		updates["field_of_study"] = *req.FieldOfStudy
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "start_date must be a valid date"})
			return
		}
		updates["start_date"] = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "end_date must be a valid date"})
			return
		}
		updates["end_date"] = end
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nothing to update"})
		return
	}

	if err := config.DB.Model(&education).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to update education history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Education history updated successfully", "data": education})
}

/* ========== Directory ========== */

func GetAllAlumniExceptSelf(c *gin.Context) {
	alumni := currentAlumni(c)

	var others []models.Alumni
	if err := config.DB.
		Preload("Address").
		Preload("EmploymentHistory").
		Preload("EducationHistory").
		Where("alumni_id <> ?", alumni.ID).
		Order("last_name ASC, first_name ASC").
		Find(&others).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch alumni"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": others})
}

func GetSpecificAlumni(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid alumni ID"})
		return
	}

	var alumni models.Alumni
	err = config.DB.
		Preload("Address").
		Preload("EmploymentHistory").
		Preload("EducationHistory").
		First(&alumni, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Alumni not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch alumni"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": alumni})
}

/* ========== Notifications ========== */

// GetNotifications lists the alumni's unread notifications with their
// read-state rows.
func GetNotifications(c *gin.Context) {
	alumni := currentAlumni(c)

	var rows []models.AlumniNotification
	if err := config.DB.
		Preload("Notification").
		Where("alumni_id = ? AND is_read = ?", alumni.ID, false).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notifications"})
		return
	}

	data := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		data = append(data, gin.H{
			"notification_id": row.NotificationID,
			"type":            row.Notification.Type,
			"alert":           row.Notification.Alert,
			"title":           row.Notification.Title,
			"message":         row.Notification.Message,
			"link":            row.Notification.Link,
			"survey_id":       row.Notification.SurveyID,
			"event_id":        row.Notification.EventID,
			"is_read":         row.IsRead,
			"received_at":     row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
