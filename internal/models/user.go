package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Bio          string   `json:"bio"`
	// Skills is a comma-separated tag list, e.g. "go,postgres,docker".
	Skills    string `json:"skills"`
	ResumeRef string `json:"resume_url"`

	// Relations
	Jobs         []Job         `gorm:"foreignKey:EmployerID" json:"-"`
	Applications []Application `gorm:"foreignKey:ApplicantID" json:"-"`
}
