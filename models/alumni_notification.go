package models

import "time"

type AlumniNotification struct {
	ID             uint         `gorm:"column:alumni_notification_id;primaryKey;autoIncrement" json:"alumni_notification_id"`
	AlumniID       uint         `gorm:"column:alumni_id;not null;index" json:"alumni_id"`
	NotificationID uint         `gorm:"column:notification_id;not null;index" json:"notification_id"`
	Notification   Notification `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"-"`
	IsRead         bool         `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt      time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AlumniNotification) TableName() string {
	return "alumni_notifications"
}
