package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

const maxTextLength = 255

// SurveyDefinition is the nested authoring payload: a survey with its
// sections, questions and options, exactly as the client composes it.
type SurveyDefinition struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Sections    []SectionDefinition `json:"sections"`
}

type SectionDefinition struct {
	SectionTitle       string               `json:"section_title"`
	SectionDescription *string              `json:"section_description"`
	Questions          []QuestionDefinition `json:"questions"`
}

type QuestionDefinition struct {
	QuestionText  string             `json:"question_text"`
	QuestionType  string             `json:"question_type"`
	IsRequired    bool               `json:"is_required"`
	IsOtherOption bool               `json:"is_other_option"`
	Options       []OptionDefinition `json:"options"`
}

type OptionDefinition struct {
	OptionText  string `json:"option_text"`
	OptionValue *int   `json:"option_value"`
}

// ParseDate accepts the date formats the portal clients send.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Validate checks the whole definition before anything is persisted and
// returns per-field errors keyed by payload path, empty when valid.
func (d SurveyDefinition) Validate() map[string]string {
	errs := map[string]string{}

	requireText(errs, "title", d.Title)
	var start, end time.Time
	var startErr, endErr error
	if start, startErr = ParseDate(d.StartDate); d.StartDate == "" || startErr != nil {
		errs["start_date"] = "must be a valid date"
	}
	if end, endErr = ParseDate(d.EndDate); d.EndDate == "" || endErr != nil {
		errs["end_date"] = "must be a valid date"
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs["end_date"] = "must not be before start_date"
	}

	if len(d.Sections) == 0 {
		errs["sections"] = "at least one section is required"
	}
	for i, s := range d.Sections {
		requireText(errs, fmt.Sprintf("sections.%d.section_title", i), s.SectionTitle)
		if len(s.Questions) == 0 {
			errs[fmt.Sprintf("sections.%d.questions", i)] = "at least one question is required"
		}
		for j, q := range s.Questions {
			prefix := fmt.Sprintf("sections.%d.questions.%d", i, j)
			requireText(errs, prefix+".question_text", q.QuestionText)

			switch q.QuestionType {
			case models.QuestionTypeMultipleChoice, models.QuestionTypeRating, models.QuestionTypeDropdown:
				if len(q.Options) == 0 {
					errs[prefix+".options"] = "options are required for " + q.QuestionType + " questions"
				}
			case models.QuestionTypeOpenEnded:
				if len(q.Options) > 0 {
					errs[prefix+".options"] = "options are not allowed for Open-ended questions"
				}
				if q.IsOtherOption {
					errs[prefix+".is_other_option"] = "an Others option is not allowed for Open-ended questions"
				}
			default:
				errs[prefix+".question_type"] = "must be one of: Multiple Choice, Open-ended, Rating, Dropdown"
			}

			if q.IsOtherOption && q.QuestionType == models.QuestionTypeRating {
				errs[prefix+".is_other_option"] = "an Others option is not allowed for Rating questions"
			}

			for k, o := range q.Options {
				requireText(errs, fmt.Sprintf("%s.options.%d.option_text", prefix, k), o.OptionText)
			}
		}
	}
	return errs
}

func requireText(errs map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "is required"
		return
	}
	if len(value) > maxTextLength {
		errs[field] = fmt.Sprintf("must not exceed %d characters", maxTextLength)
	}
}
