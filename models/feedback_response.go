package models

import "time"

// FeedbackResponse is one alumni's single completed submission for one
// survey. The composite unique index is the authoritative guard against
// double submission; handlers pre-check only for a friendlier error.
type FeedbackResponse struct {
	ID           uint      `gorm:"column:response_id;primaryKey;autoIncrement" json:"response_id"`
	SurveyID     uint      `gorm:"column:survey_id;not null;uniqueIndex:uniq_survey_alumni" json:"survey_id"`
	Survey       Survey    `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"-"`
	AlumniID     uint      `gorm:"column:alumni_id;not null;uniqueIndex:uniq_survey_alumni" json:"alumni_id"`
	Alumni       Alumni    `gorm:"foreignKey:AlumniID" json:"-"`
	ResponseDate time.Time `gorm:"column:response_date;autoCreateTime" json:"response_date"`

	QuestionResponses []QuestionResponse `gorm:"foreignKey:ResponseID" json:"-"`
}

func (FeedbackResponse) TableName() string {
	return "feedback_responses"
}
