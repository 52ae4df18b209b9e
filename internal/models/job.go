package models

type Job struct {
	BaseModel
	EmployerID  string `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	IsClosed    bool   `gorm:"default:false" json:"is_closed"`
}
