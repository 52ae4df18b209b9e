package models

type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`

	Job       Job  `gorm:"foreignKey:JobID" json:"-"`
	Applicant User `gorm:"foreignKey:ApplicantID" json:"-"`
}
