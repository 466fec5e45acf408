package utils

import (
	"strings"
	"testing"
)

func validDefinition() SurveyDefinition {
	return SurveyDefinition{
		Title:     "Graduate Tracer Survey",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
		Sections: []SectionDefinition{
			{
				SectionTitle: "Employment",
				Questions: []QuestionDefinition{
					{
						QuestionText:  "What is your current employment status?",
						QuestionType:  "Multiple Choice",
						IsRequired:    true,
						IsOtherOption: true,
						Options: []OptionDefinition{
							{OptionText: "Employed"},
							{OptionText: "Unemployed"},
						},
					},
					{
						QuestionText: "Describe your career goals.",
						QuestionType: "Open-ended",
					},
				},
			},
		},
	}
}

func TestValidateAcceptsCompleteDefinition(t *testing.T) {
	errs := validDefinition().Validate()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRejectsBadDefinitions(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	cases := []struct {
		name   string
		mutate func(*SurveyDefinition)
		field  string
	}{
		{
			name:   "missing title",
			mutate: func(d *SurveyDefinition) { d.Title = "  " },
			field:  "title",
		},
		{
			name:   "title too long",
			mutate: func(d *SurveyDefinition) { d.Title = strings.Repeat("x", 256) },
			field:  "title",
		},
		{
			name:   "bad start date",
			mutate: func(d *SurveyDefinition) { d.StartDate = "not-a-date" },
			field:  "start_date",
		},
		{
			name: "end before start",
			mutate: func(d *SurveyDefinition) {
				d.StartDate = "2026-06-30"
				d.EndDate = "2026-01-01"
			},
			field: "end_date",
		},
		{
			name:   "no sections",
			mutate: func(d *SurveyDefinition) { d.Sections = nil },
			field:  "sections",
		},
		{
			name:   "section without questions",
			mutate: func(d *SurveyDefinition) { d.Sections[0].Questions = nil },
			field:  "sections.0.questions",
		},
		{
			name: "unknown question type",
			mutate: func(d *SurveyDefinition) {
				d.Sections[0].Questions[0].QuestionType = "Checkbox"
			},
			field: "sections.0.questions.0.question_type",
		},
		{
			name: "multiple choice without options",
			mutate: func(d *SurveyDefinition) {
				d.Sections[0].Questions[0].Options = nil
			},
			field: "sections.0.questions.0.options",
		},
		{
			name: "options on open-ended",
			mutate: func(d *SurveyDefinition) {
				d.Sections[0].Questions[1].Options = []OptionDefinition{{OptionText: "Yes"}}
			},
			field: "sections.0.questions.1.options",
		},
		{
			name: "others flag on open-ended",
			mutate: func(d *SurveyDefinition) {
				d.Sections[0].Questions[1].IsOtherOption = true
			},
			field: "sections.0.questions.1.is_other_option",
		},
		{
			name: "others flag on rating",
			mutate: func(d *SurveyDefinition) {
				d.Sections[0].Questions[0].QuestionType = "Rating"
				d.Sections[0].Questions[0].Options = []OptionDefinition{
					{OptionText: "1", OptionValue: intPtr(1)},
					{OptionText: "5", OptionValue: intPtr(5)},
				}
			},
			field: "sections.0.questions.0.is_other_option",
		},
		{
			name: "blank option text",
			mutate: func(d *SurveyDefinition) {
				d.Sections[0].Questions[0].Options[1].OptionText = ""
			},
			field: "sections.0.questions.0.options.1.option_text",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := validDefinition()
			tc.mutate(&def)
			errs := def.Validate()
			if len(errs) == 0 {
				t.Fatalf("expected validation errors")
			}
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error under %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestParseDateFormats(t *testing.T) {
	if _, err := ParseDate("2026-08-30"); err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if _, err := ParseDate("2026-08-30T10:00:00Z"); err != nil {
		t.Fatalf("RFC3339: %v", err)
	}
	if _, err := ParseDate("08/30/2026"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
