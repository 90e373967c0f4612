package api

import (
	"context"
	"net/url"

	"github.com/wisdom2788/youthguard-go/core/gateway"
)

// JobInput carries the writable job posting fields for create and update.
type JobInput struct {
	Title               string   `json:"title,omitempty"`
	Description         string   `json:"description,omitempty"`
	Company             string   `json:"company,omitempty"`
	Location            string   `json:"location,omitempty"`
	JobType             string   `json:"jobType,omitempty"`
	SalaryMin           float64  `json:"salaryMin,omitempty"`
	SalaryMax           float64  `json:"salaryMax,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	IsActive            *bool    `json:"isActive,omitempty"`
}

// ApplicationRequest is a job application submission.
type ApplicationRequest struct {
	JobID       string `json:"jobId"`
	ApplicantID string `json:"applicantId"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// JobsService wraps the job board endpoints.
type JobsService struct {
	gw *gateway.Gateway
}

// NewJobsService creates the job board endpoint wrapper.
func NewJobsService(gw *gateway.Gateway) *JobsService {
	return &JobsService{gw: gw}
}

// List returns all job postings.
func (s *JobsService) List(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := s.gw.Get(ctx, "/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get returns a single job posting by ID.
func (s *JobsService) Get(ctx context.Context, id string) (Job, error) {
	var job Job
	if err := s.gw.Get(ctx, "/jobs/"+url.PathEscape(id), &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Create publishes a new job posting.
func (s *JobsService) Create(ctx context.Context, input JobInput) (Job, error) {
	var job Job
	if err := s.gw.Post(ctx, "/jobs", input, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Update modifies an existing job posting.
func (s *JobsService) Update(ctx context.Context, id string, input JobInput) (Job, error) {
	var job Job
	if err := s.gw.Put(ctx, "/jobs/"+url.PathEscape(id), input, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Delete removes a job posting.
func (s *JobsService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, "/jobs/"+url.PathEscape(id))
}

// Apply submits an application to a job posting.
func (s *JobsService) Apply(ctx context.Context, req ApplicationRequest) (JobApplication, error) {
	var application JobApplication
	if err := s.gw.Post(ctx, "/jobs/apply", req, &application); err != nil {
		return JobApplication{}, err
	}
	return application, nil
}

// Applications returns a user's job applications.
func (s *JobsService) Applications(ctx context.Context, userID string) ([]JobApplication, error) {
	var applications []JobApplication
	if err := s.gw.Get(ctx, "/users/"+url.PathEscape(userID)+"/applications", &applications); err != nil {
		return nil, err
	}
	return applications, nil
}
