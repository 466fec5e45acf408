package models

import "time"

// QuickSurveyResponse holds the one-off onboarding poll answer; one row per
// alumni, overwritten on resubmission. SelectedOptions is a JSON array
// stored as text.
type QuickSurveyResponse struct {
	ID              uint      `gorm:"column:quick_survey_response_id;primaryKey;autoIncrement" json:"quick_survey_response_id"`
	AlumniID        uint      `gorm:"column:alumni_id;not null;uniqueIndex" json:"alumni_id"`
	SelectedOptions string    `gorm:"column:selected_options;type:text;not null" json:"selected_options"`
	OtherResponse   *string   `gorm:"column:other_response;size:255" json:"other_response"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuickSurveyResponse) TableName() string {
	return "quick_survey_responses"
}
