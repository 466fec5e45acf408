package models

import "time"

type EventFeedback struct {
	ID           uint      `gorm:"column:event_feedback_id;primaryKey;autoIncrement" json:"event_feedback_id"`
	EventID      uint      `gorm:"column:event_id;not null;index" json:"event_id"`
	Event        Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	AlumniID     uint      `gorm:"column:alumni_id;not null;index" json:"alumni_id"`
	Alumni       Alumni    `gorm:"foreignKey:AlumniID" json:"-"`
	FeedbackText string    `gorm:"column:feedback_text;type:text;not null" json:"feedback_text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Photos []EventFeedbackPhoto `gorm:"foreignKey:EventFeedbackID" json:"photos,omitempty"`
}

func (EventFeedback) TableName() string {
	return "event_feedbacks"
}

type EventFeedbackPhoto struct {
	ID              uint      `gorm:"column:photo_id;primaryKey;autoIncrement" json:"photo_id"`
	EventFeedbackID uint      `gorm:"column:event_feedback_id;not null;index" json:"event_feedback_id"`
	PhotoURL        string    `gorm:"column:photo_url;size:255;not null" json:"photo_url"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EventFeedbackPhoto) TableName() string {
	return "event_feedback_photos"
}
