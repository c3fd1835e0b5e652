package models

// Wire shapes of the upstream CareerConnect API. Field names follow the
// upstream JSON contract; the gateway forwards them unmodified.

type JobListing struct {
	JobListingID int64   `json:"jobListingId,omitempty"`
	ID           int64   `json:"id,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Salary       float64 `json:"salary,omitempty"`
	CompanyName  string  `json:"companyName,omitempty"`
	JobType      string  `json:"jobType,omitempty"`
}

const ApplicationStatusPending = "pending"

type Application struct {
	ApplicationID   int64  `json:"applicationId,omitempty"`
	JobSeekerID     int64  `json:"jobSeekerId"`
	JobListingID    int64  `json:"jobListingId"`
	JobTitle        string `json:"jobTitle,omitempty"`
	Status          string `json:"status"`
	ApplicationDate string `json:"applicationDate,omitempty"`
	FilePath        string `json:"filePath,omitempty"`
}

type JobSeekerProfile struct {
	JobSeekerID int64  `json:"jobSeekerId,omitempty"`
	ID          int64  `json:"id,omitempty"`
	UserID      int64  `json:"userId"`
	FullName    string `json:"fullName"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Education   string `json:"education,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Skills      string `json:"skills,omitempty"`
}

type EmployerProfile struct {
	EmployerID         int64  `json:"employerId,omitempty"`
	ID                 int64  `json:"id,omitempty"`
	UserID             int64  `json:"userId"`
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	Position           string `json:"position,omitempty"`
}

type Resume struct {
	ResumeID    int64  `json:"resumeId,omitempty"`
	JobSeekerID int64  `json:"jobSeekerId"`
	FilePath    string `json:"filePath,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	UploadedAt  string `json:"uploadedAt,omitempty"`
}
