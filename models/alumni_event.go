package models

import "time"

// AlumniEvent links an alumni to an event they registered for. One
// registration per (event, alumni) pair.
type AlumniEvent struct {
	ID        uint      `gorm:"column:alumni_event_id;primaryKey;autoIncrement" json:"alumni_event_id"`
	EventID   uint      `gorm:"column:event_id;not null;uniqueIndex:uniq_event_alumni" json:"event_id"`
	Event     Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	AlumniID  uint      `gorm:"column:alumni_id;not null;uniqueIndex:uniq_event_alumni" json:"alumni_id"`
	Alumni    Alumni    `gorm:"foreignKey:AlumniID" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AlumniEvent) TableName() string {
	return "alumni_events"
}
