package models

import "time"

type Alumni struct {
	ID              uint       `gorm:"column:alumni_id;primaryKey;autoIncrement" json:"alumni_id"`
	FirstName       string     `gorm:"column:first_name;size:255;not null" json:"first_name"`
	LastName        string     `gorm:"column:last_name;size:255;not null" json:"last_name"`
	Email           string     `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password        string     `gorm:"column:password;size:255;not null" json:"-"`
	Phone           *string    `gorm:"column:phone;size:20" json:"phone"`
	DateOfBirth     *time.Time `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender          *string    `gorm:"column:gender;size:20" json:"gender"`
	GraduationYear  *int       `gorm:"column:graduation_year" json:"graduation_year"`
	Degree          *string    `gorm:"column:degree;size:255" json:"degree"`
	Major           *string    `gorm:"column:major;size:255" json:"major"`
	CurrentJobTitle *string    `gorm:"column:current_job_title;size:255" json:"current_job_title"`
	CurrentEmployer *string    `gorm:"column:current_employer;size:255" json:"current_employer"`
	LinkedinProfile *string    `gorm:"column:linkedin_profile;size:255" json:"linkedin_profile"`
	ProfilePicture  *string    `gorm:"column:profile_picture;size:255" json:"profile_picture"`
	IsAdmin         bool       `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Address           []Address           `gorm:"foreignKey:AlumniID" json:"address,omitempty"`
	EmploymentHistory []EmploymentHistory `gorm:"foreignKey:AlumniID" json:"employment_history,omitempty"`
	EducationHistory  []EducationHistory  `gorm:"foreignKey:AlumniID" json:"education_history,omitempty"`
	FeedbackResponses []FeedbackResponse  `gorm:"foreignKey:AlumniID" json:"-"`
}

func (Alumni) TableName() string {
	return "alumni"
}

// FullName is used by reporting views and outbound mail.
func (a Alumni) FullName() string {
	return a.FirstName + " " + a.LastName
}
