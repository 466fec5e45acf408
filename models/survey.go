package models

import "time"

type Survey struct {
	ID           uint      `gorm:"column:survey_id;primaryKey;autoIncrement" json:"survey_id"`
	Title        string    `gorm:"column:title;size:255;not null" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	CreationDate time.Time `gorm:"column:creation_date;autoCreateTime" json:"creation_date"`
	StartDate    time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      time.Time `gorm:"column:end_date;not null" json:"end_date"`

	Sections          []SurveySection    `gorm:"foreignKey:SurveyID" json:"-"`
	Questions         []SurveyQuestion   `gorm:"foreignKey:SurveyID" json:"-"`
	FeedbackResponses []FeedbackResponse `gorm:"foreignKey:SurveyID" json:"-"`
}

func (Survey) TableName() string {
	return "surveys"
}
