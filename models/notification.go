package models

import "time"

// Notification is a broadcast record fanned out to alumni through
// AlumniNotification rows. SurveyID/EventID point at the entity that raised
// it; Link is kept purely for the client to navigate with.
type Notification struct {
	ID        uint      `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	Type      string    `gorm:"column:type;size:50;not null" json:"type"`
	Alert     string    `gorm:"column:alert;size:255;not null" json:"alert"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Link      string    `gorm:"column:link;size:255" json:"link"`
	SurveyID  *uint     `gorm:"column:survey_id;index" json:"survey_id"`
	EventID   *uint     `gorm:"column:event_id;index" json:"event_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
