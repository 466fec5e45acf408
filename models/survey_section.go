package models

type SurveySection struct {
	ID                 uint    `gorm:"column:section_id;primaryKey;autoIncrement" json:"section_id"`
	SurveyID           uint    `gorm:"column:survey_id;not null;index" json:"survey_id"`
	Survey             Survey  `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"-"`
	SectionTitle       string  `gorm:"column:section_title;size:255;not null" json:"section_title"`
	SectionDescription *string `gorm:"column:section_description;type:text" json:"section_description"`
	SortOrder          int     `gorm:"column:sort_order;not null;default:0" json:"sort_order"`

	Questions []SurveyQuestion `gorm:"foreignKey:SectionID" json:"questions,omitempty"`
}

func (SurveySection) TableName() string {
	return "survey_sections"
}
