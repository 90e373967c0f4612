package api

import "time"

// Location is a user's place of residence.
type Location struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// User is the authenticated-user record as served by the backend.
type User struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	PhoneNumber   string    `json:"phoneNumber"`
	DateOfBirth   string    `json:"dateOfBirth"`
	Gender        string    `json:"gender"`
	Location      Location  `json:"location"`
	UserType      string    `json:"userType"`
	AccountStatus string    `json:"accountStatus"`
	LastLogin     time.Time `json:"lastLogin,omitzero"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
	UpdatedAt     time.Time `json:"updatedAt,omitzero"`
}

// Identity returns the user's stable identifier. Satisfies the session
// store's Identifiable constraint.
func (u User) Identity() string { return u.ID }

// User type values.
const (
	UserTypeYouth    = "Youth"
	UserTypeMentor   = "Mentor"
	UserTypeEmployer = "Employer"
)

// Course is a learning course listing.
type Course struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Instructor      string    `json:"instructor"`
	DurationHours   int       `json:"duration"`
	Difficulty      string    `json:"difficulty"`
	Thumbnail       string    `json:"thumbnail"`
	EnrollmentCount int       `json:"enrollmentCount"`
	Rating          float64   `json:"rating"`
	IsActive        bool      `json:"isActive"`
	CreatedBy       string    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

// Lesson is a unit of course content.
type Lesson struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	VideoURL        string    `json:"videoUrl,omitempty"`
	DurationMinutes int       `json:"duration"`
	Order           int       `json:"order"`
	CourseID        string    `json:"courseId"`
	CreatedAt       time.Time `json:"createdAt,omitzero"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero"`
}

// Job is a job board posting.
type Job struct {
	ID                  string    `json:"_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	JobType             string    `json:"jobType"`
	SalaryMin           float64   `json:"salaryMin,omitempty"`
	SalaryMax           float64   `json:"salaryMax,omitempty"`
	Requirements        []string  `json:"requirements"`
	Skills              []string  `json:"skills"`
	ApplicationDeadline string    `json:"applicationDeadline"`
	IsActive            bool      `json:"isActive"`
	PostedBy            string    `json:"postedBy"`
	ApplicationsCount   int       `json:"applicationsCount"`
	CreatedAt           time.Time `json:"createdAt,omitzero"`
	UpdatedAt           time.Time `json:"updatedAt,omitzero"`
}

// JobApplication records a user's application to a job posting.
type JobApplication struct {
	ID          string    `json:"_id"`
	JobID       string    `json:"jobId"`
	ApplicantID string    `json:"applicantId"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// Message is a direct message between two users.
type Message struct {
	ID         string    `json:"_id"`
	Content    string    `json:"content"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

// Progress tracks a user's advancement through a course.
type Progress struct {
	ID               string    `json:"_id"`
	UserID           string    `json:"userId"`
	CourseID         string    `json:"courseId"`
	CompletedLessons []string  `json:"completedLessons"`
	LastAccessedAt   time.Time `json:"lastAccessedAt,omitzero"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

// CourseCompletion summarizes how much of a course a user has finished.
type CourseCompletion struct {
	UserID           string  `json:"userId"`
	CourseID         string  `json:"courseId"`
	CompletedLessons int     `json:"completedLessons"`
	TotalLessons     int     `json:"totalLessons"`
	Percentage       float64 `json:"percentage"`
}
