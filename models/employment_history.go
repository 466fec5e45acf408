package models

import "time"

type EmploymentHistory struct {
	ID          uint       `gorm:"column:employment_id;primaryKey;autoIncrement" json:"employment_id"`
	AlumniID    uint       `gorm:"column:alumni_id;not null;index" json:"alumni_id"`
	Company     string     `gorm:"column:company;size:255;not null" json:"company"`
	JobTitle    string     `gorm:"column:job_title;size:255;not null" json:"job_title"`
	StartDate   time.Time  `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`
	Description *string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EmploymentHistory) TableName() string {
	return "employment_history"
}
