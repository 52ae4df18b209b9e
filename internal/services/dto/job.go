package dto

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`

	// EmployerID is set by the handler from the authenticated identity.
	EmployerID string `json:"-"`
}

type SearchJobsRequest struct {
	Title    string `form:"title"`
	Location string `form:"location"`
	Company  string `form:"company"`
}
