package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"github.com/DavidBatoDev/pup-alumni-portal-server/utils"
)

type eventReq struct {
	EventName    string  `json:"event_name" binding:"required,max=255"`
	EventDate    string  `json:"event_date" binding:"required"`
	Location     string  `json:"location" binding:"required,max=255"`
	Type         string  `json:"type" binding:"required,max=100"`
	Category     string  `json:"category" binding:"required,max=100"`
	Organization *string `json:"organization"`
	Description  *string `json:"description"`
}

/* ========== Create event (admin) ========== */

// CreateEvent stores the event with its photos, then raises an invitation
// notification fanned out to every alumni in one bulk insert. Accepts plain
// JSON or multipart form-data with a "data" part plus "photos" files.
func CreateEvent(c *gin.Context) {
	var req eventReq
	isMultipart := strings.Contains(c.Request.Header.Get("Content-Type"), "multipart/form-data")
	if isMultipart {
		data := c.PostForm("data")
		if data == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing form data"})
			return
		}
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid JSON in form data"})
			return
		}
		if req.EventName == "" || req.EventDate == "" || req.Location == "" || req.Type == "" || req.Category == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "event_name, event_date, location, type and category are required"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid payload", "message": err.Error()})
			return
		}
	}

	eventDate, err := utils.ParseDate(req.EventDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "event_date must be a valid date"})
		return
	}

	var event models.Event
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		event = models.Event{
			EventName:    req.EventName,
			EventDate:    eventDate,
			Location:     req.Location,
			Type:         req.Type,
			Category:     req.Category,
			Organization: req.Organization,
			Description:  req.Description,
			IsActive:     true,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		notification := models.Notification{
			Type:    "eventInvitation",
			Alert:   "New Event Created",
			Title:   req.EventName,
			Message: "You are invited to the event: " + req.EventName + " on " + eventDate.Format("2006-01-02") + " at " + req.Location,
			Link:    fmt.Sprintf("/events/%d", event.ID),
			EventID: &event.ID,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}
		return fanOutNotification(tx, notification.ID)
	})
	if err != nil {
		log.Printf("CreateEvent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create event"})
		return
	}

	// Photo uploads run outside the transaction; a failed upload leaves the
	// event in place and is only logged.
	if isMultipart {
		if form, err := c.MultipartForm(); err == nil {
			for i, fh := range form.File["photos"] {
				fileID := fmt.Sprintf("event_%d_%d", event.ID, i)
				url, upErr := utils.UploadToSupabase(fh, fh.Filename, fileID, "event_photos", "")
				if upErr != nil {
					log.Printf("CreateEvent upload event=%d: %v", event.ID, upErr)
					continue
				}
				photo := models.EventPhoto{EventID: event.ID, PhotoPath: url}
				if err := config.DB.Create(&photo).Error; err != nil {
					log.Printf("CreateEvent photo row event=%d: %v", event.ID, err)
				}
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
}

/* ========== Update / delete / end ========== */

func UpdateEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Invalid payload", "message": err.Error()})
		return
	}
	eventDate, err := utils.ParseDate(req.EventDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "event_date must be a valid date"})
		return
	}

	updates := map[string]interface{}{
		"event_name":   req.EventName,
		"event_date":   eventDate,
		"location":     req.Location,
		"type":         req.Type,
		"category":     req.Category,
		"organization": req.Organization,
		"description":  req.Description,
	}
	if err := config.DB.Model(&event).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event updated successfully", "data": event})
}

func DeleteEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}

	feedbackIDs := config.DB.Model(&models.EventFeedback{}).Select("event_feedback_id").Where("event_id = ?", event.ID)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_feedback_id IN (?)", feedbackIDs).Delete(&models.EventFeedbackPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventFeedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.AlumniEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		log.Printf("DeleteEvent %d: %v", event.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}

// EndEvent closes the event so feedback can be collected.
func EndEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}
	if err := config.DB.Model(&event).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to end event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event ended successfully"})
}

func UnendEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}
	if err := config.DB.Model(&event).Update("is_active", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to reactivate event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event reactivated successfully"})
}

/* ========== Listings / details ========== */

func GetEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.
		Preload("Photos").
		Where("is_active = ?", true).
		Order("event_date ASC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": events})
}

func GetInactiveEvents(c *gin.Context) {
	var events []models.Event
	if err := config.DB.
		Preload("Photos").
		Where("is_active = ?", false).
		Order("event_date DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": events})
}

func GetEventDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	var event models.Event
	err = config.DB.
		Preload("Photos").
		Preload("AlumniEvents.Alumni").
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch event"})
		return
	}

	registered := make([]gin.H, 0, len(event.AlumniEvents))
	for _, ae := range event.AlumniEvents {
		registered = append(registered, gin.H{
			"alumni_id":     ae.AlumniID,
			"first_name":    ae.Alumni.FirstName,
			"last_name":     ae.Alumni.LastName,
			"email":         ae.Alumni.Email,
			"registered_at": ae.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"event":             event,
			"registered_alumni": registered,
		},
	})
}

// GetEventDetailsWithStatus adds whether the calling alumni is registered.
func GetEventDetailsWithStatus(c *gin.Context) {
	alumni := currentAlumni(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	var event models.Event
	err = config.DB.Preload("Photos").First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch event"})
		return
	}

	var count int64
	config.DB.Model(&models.AlumniEvent{}).
		Where("event_id = ? AND alumni_id = ?", event.ID, alumni.ID).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"event":         event,
			"is_registered": count > 0,
		},
	})
}

/* ========== Registration ========== */

func RegisterAlumniToEvent(c *gin.Context) {
	alumni := currentAlumni(c)

	event, ok := findEvent(c)
	if !ok {
		return
	}
	if !event.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Event has already ended"})
		return
	}

	var count int64
	config.DB.Model(&models.AlumniEvent{}).
		Where("event_id = ? AND alumni_id = ?", event.ID, alumni.ID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "You are already registered for this event"})
		return
	}

	registration := models.AlumniEvent{EventID: event.ID, AlumniID: alumni.ID}
	if err := config.DB.Create(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to register for event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registered to event successfully", "data": registration})
}

func GetRegisteredAlumniForEvent(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}

	var registrations []models.AlumniEvent
	if err := config.DB.
		Preload("Alumni").
		Where("event_id = ?", event.ID).
		Order("created_at ASC").
		Find(&registrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch registrations"})
		return
	}

	data := make([]gin.H, 0, len(registrations))
	for _, r := range registrations {
		data = append(data, gin.H{
			"alumni_id":       r.AlumniID,
			"first_name":      r.Alumni.FirstName,
			"last_name":       r.Alumni.LastName,
			"email":           r.Alumni.Email,
			"graduation_year": r.Alumni.GraduationYear,
			"registered_at":   r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

/* ========== Feedback ========== */

// SubmitEventFeedback accepts feedback for ended events from registered
// alumni only. Multipart uploads may attach photos.
func SubmitEventFeedback(c *gin.Context) {
	alumni := currentAlumni(c)

	event, ok := findEvent(c)
	if !ok {
		return
	}
	if event.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Event is still active. Feedback cannot be submitted"})
		return
	}

	var registered int64
	config.DB.Model(&models.AlumniEvent{}).
		Where("event_id = ? AND alumni_id = ?", event.ID, alumni.ID).
		Count(&registered)
	if registered == 0 {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You are not registered for this event"})
		return
	}

	var feedbackText string
	isMultipart := strings.Contains(c.Request.Header.Get("Content-Type"), "multipart/form-data")
	if isMultipart {
		feedbackText = c.PostForm("feedback_text")
	} else {
		var req struct {
			FeedbackText string `json:"feedback_text" binding:"required,max=1000"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
			return
		}
		feedbackText = req.FeedbackText
	}
	if strings.TrimSpace(feedbackText) == "" || len(feedbackText) > 1000 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "feedback_text is required and must not exceed 1000 characters"})
		return
	}

	feedback := models.EventFeedback{
		EventID:      event.ID,
		AlumniID:     alumni.ID,
		FeedbackText: feedbackText,
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to submit feedback"})
		return
	}

	if isMultipart {
		if form, err := c.MultipartForm(); err == nil {
			for i, fh := range form.File["photos"] {
				fileID := fmt.Sprintf("feedback_%d_%d", feedback.ID, i)
				url, upErr := utils.UploadToSupabase(fh, fh.Filename, fileID, "event_feedback_photos", "")
				if upErr != nil {
					log.Printf("SubmitEventFeedback upload feedback=%d: %v", feedback.ID, upErr)
					continue
				}
				photo := models.EventFeedbackPhoto{EventFeedbackID: feedback.ID, PhotoURL: url}
				if err := config.DB.Create(&photo).Error; err != nil {
					log.Printf("SubmitEventFeedback photo row feedback=%d: %v", feedback.ID, err)
				}
			}
		}
	}

	config.DB.Preload("Photos").First(&feedback, feedback.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Feedback submitted successfully", "data": feedback})
}

func GetEventFeedbacks(c *gin.Context) {
	event, ok := findEvent(c)
	if !ok {
		return
	}

	var feedbacks []models.EventFeedback
	if err := config.DB.
		Preload("Alumni").
		Preload("Photos").
		Where("event_id = ?", event.ID).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch feedback"})
		return
	}

	data := make([]gin.H, 0, len(feedbacks))
	for _, f := range feedbacks {
		photos := make([]gin.H, 0, len(f.Photos))
		for _, p := range f.Photos {
			photos = append(photos, gin.H{"photo_id": p.ID, "photo_path": p.PhotoURL})
		}
		data = append(data, gin.H{
			"feedback_id":   f.ID,
			"feedback_text": f.FeedbackText,
			"created_at":    f.CreatedAt,
			"alumni": gin.H{
				"alumni_id":       f.Alumni.ID,
				"first_name":      f.Alumni.FirstName,
				"last_name":       f.Alumni.LastName,
				"email":           f.Alumni.Email,
				"profile_picture": f.Alumni.ProfilePicture,
			},
			"photos": photos,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// findEvent resolves :id to an event, replying with the right error itself.
func findEvent(c *gin.Context) (models.Event, bool) {
	var event models.Event

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return event, false
	}

	err = config.DB.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
		return event, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to fetch event"})
		return event, false
	}
	return event, true
}
