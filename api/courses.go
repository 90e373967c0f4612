package api

import (
	"context"
	"net/url"

	"github.com/wisdom2788/youthguard-go/core/gateway"
)

// CourseInput carries the writable course fields for create and update.
type CourseInput struct {
	Title         string  `json:"title,omitempty"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	Instructor    string  `json:"instructor,omitempty"`
	DurationHours int     `json:"duration,omitempty"`
	Difficulty    string  `json:"difficulty,omitempty"`
	Thumbnail     string  `json:"thumbnail,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// CoursesService wraps the course catalog endpoints.
type CoursesService struct {
	gw *gateway.Gateway
}

// NewCoursesService creates the course endpoint wrapper.
func NewCoursesService(gw *gateway.Gateway) *CoursesService {
	return &CoursesService{gw: gw}
}

// List returns all courses.
func (s *CoursesService) List(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := s.gw.Get(ctx, "/courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Get returns a single course by ID.
func (s *CoursesService) Get(ctx context.Context, id string) (Course, error) {
	var course Course
	if err := s.gw.Get(ctx, "/courses/"+url.PathEscape(id), &course); err != nil {
		return Course{}, err
	}
	return course, nil
}

// Create publishes a new course.
func (s *CoursesService) Create(ctx context.Context, input CourseInput) (Course, error) {
	var course Course
	if err := s.gw.Post(ctx, "/courses", input, &course); err != nil {
		return Course{}, err
	}
	return course, nil
}

// Update modifies an existing course.
func (s *CoursesService) Update(ctx context.Context, id string, input CourseInput) (Course, error) {
	var course Course
	if err := s.gw.Put(ctx, "/courses/"+url.PathEscape(id), input, &course); err != nil {
		return Course{}, err
	}
	return course, nil
}

// Delete removes a course.
func (s *CoursesService) Delete(ctx context.Context, id string) error {
	return s.gw.Delete(ctx, "/courses/"+url.PathEscape(id))
}

// Lessons returns the lessons of a course in order.
func (s *CoursesService) Lessons(ctx context.Context, courseID string) ([]Lesson, error) {
	var lessons []Lesson
	if err := s.gw.Get(ctx, "/courses/"+url.PathEscape(courseID)+"/lessons", &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}
