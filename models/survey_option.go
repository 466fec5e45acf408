package models

type SurveyOption struct {
	ID            uint           `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	QuestionID    uint           `gorm:"column:question_id;not null;index" json:"question_id"`
	Question      SurveyQuestion `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	OptionText    string         `gorm:"column:option_text;size:255;not null" json:"option_text"`
	OptionValue   *int           `gorm:"column:option_value" json:"option_value"`
	IsOtherOption bool           `gorm:"column:is_other_option;not null;default:false" json:"is_other_option"`
	SortOrder     int            `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
}

func (SurveyOption) TableName() string {
	return "survey_options"
}
