package models

type QuestionResponse struct {
	ID           uint             `gorm:"column:question_response_id;primaryKey;autoIncrement" json:"question_response_id"`
	ResponseID   uint             `gorm:"column:response_id;not null;index" json:"response_id"`
	Response     FeedbackResponse `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID   uint             `gorm:"column:question_id;not null;index" json:"question_id"`
	Question     SurveyQuestion   `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	OptionID     *uint            `gorm:"column:option_id" json:"option_id"`
	Option       *SurveyOption    `gorm:"foreignKey:OptionID" json:"option,omitempty"`
	ResponseText *string          `gorm:"column:response_text;type:text" json:"response_text"`
}

func (QuestionResponse) TableName() string {
	return "question_responses"
}
