package controllers

import (
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"gorm.io/gorm"
)

// fanOutNotification attaches a notification to every alumni as unread. One
// bulk insert, so the write count stays independent of the alumni
// population.
func fanOutNotification(tx *gorm.DB, notificationID uint) error {
	var alumniIDs []uint
	if err := tx.Model(&models.Alumni{}).Pluck("alumni_id", &alumniIDs).Error; err != nil {
		return err
	}
	if len(alumniIDs) == 0 {
		return nil
	}

	rows := make([]models.AlumniNotification, 0, len(alumniIDs))
	for _, id := range alumniIDs {
		rows = append(rows, models.AlumniNotification{
			AlumniID:       id,
			NotificationID: notificationID,
			IsRead:         false,
		})
	}
	return tx.CreateInBatches(rows, 500).Error
}
