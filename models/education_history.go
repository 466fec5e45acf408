package models

import "time"

type EducationHistory struct {
	ID           uint       `gorm:"column:education_id;primaryKey;autoIncrement" json:"education_id"`
	AlumniID     uint       `gorm:"column:alumni_id;not null;index" json:"alumni_id"`
	Institution  string     `gorm:"column:institution;size:255;not null" json:"institution"`
	Degree       string     `gorm:"column:degree;size:255;not null" json:"degree"`
	FieldOfStudy string     `gorm:"column:field_of_study;size:255;not null" json:"field_of_study"`
	StartDate    time.Time  `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      *time.Time `gorm:"column:end_date" json:"end_date"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EducationHistory) TableName() string {
	return "education_history"
}
