package models

// Question types accepted by the survey builder.
const (
	QuestionTypeMultipleChoice = "Multiple Choice"
	QuestionTypeOpenEnded      = "Open-ended"
	QuestionTypeRating         = "Rating"
	QuestionTypeDropdown       = "Dropdown"
)

// QuestionTypeHasOptions reports whether the type owns selectable options.
func QuestionTypeHasOptions(t string) bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeRating, QuestionTypeDropdown:
		return true
	}
	return false
}

// QuestionTypeAllowsOther reports whether a synthetic "Others" option may be
// appended for the type.
func QuestionTypeAllowsOther(t string) bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeDropdown
}

type SurveyQuestion struct {
	ID           uint          `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	SurveyID     uint          `gorm:"column:survey_id;not null;index" json:"survey_id"`
	Survey       Survey        `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"-"`
	SectionID    uint          `gorm:"column:section_id;not null;index" json:"section_id"`
	Section      SurveySection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionText string        `gorm:"column:question_text;size:255;not null" json:"question_text"`
	QuestionType string        `gorm:"column:question_type;size:50;not null" json:"question_type"`
	IsRequired   bool          `gorm:"column:is_required;not null;default:false" json:"is_required"`
	SortOrder    int           `gorm:"column:sort_order;not null;default:0" json:"sort_order"`

	Options []SurveyOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}
