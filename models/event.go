package models

import "time"

type Event struct {
	ID           uint      `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	EventName    string    `gorm:"column:event_name;size:255;not null" json:"event_name"`
	EventDate    time.Time `gorm:"column:event_date;not null" json:"event_date"`
	Location     string    `gorm:"column:location;size:255;not null" json:"location"`
	Type         string    `gorm:"column:type;size:100;not null" json:"type"`
	Category     string    `gorm:"column:category;size:100;not null" json:"category"`
	Organization *string   `gorm:"column:organization;size:100" json:"organization"`
	Description  *string   `gorm:"column:description;type:text" json:"description"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Photos       []EventPhoto    `gorm:"foreignKey:EventID" json:"photos,omitempty"`
	AlumniEvents []AlumniEvent   `gorm:"foreignKey:EventID" json:"-"`
	Feedbacks    []EventFeedback `gorm:"foreignKey:EventID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

type EventPhoto struct {
	ID        uint      `gorm:"column:photo_id;primaryKey;autoIncrement" json:"photo_id"`
	EventID   uint      `gorm:"column:event_id;not null;index" json:"event_id"`
	PhotoPath string    `gorm:"column:photo_path;size:255;not null" json:"photo_path"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EventPhoto) TableName() string {
	return "event_photos"
}
