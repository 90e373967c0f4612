package api

import (
	"context"
	"net/url"

	"github.com/wisdom2788/youthguard-go/core/gateway"
)

// ProgressUpdate records a completed lesson for a user.
type ProgressUpdate struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
	LessonID string `json:"lessonId"`
}

// ProgressService wraps the learning progress endpoints.
type ProgressService struct {
	gw *gateway.Gateway
}

// NewProgressService creates the progress endpoint wrapper.
func NewProgressService(gw *gateway.Gateway) *ProgressService {
	return &ProgressService{gw: gw}
}

// Record stores a progress update and returns the new progress state.
func (s *ProgressService) Record(ctx context.Context, update ProgressUpdate) (Progress, error) {
	var progress Progress
	if err := s.gw.Post(ctx, "/progress", update, &progress); err != nil {
		return Progress{}, err
	}
	return progress, nil
}

// ByUser returns a user's progress across all courses.
func (s *ProgressService) ByUser(ctx context.Context, userID string) ([]Progress, error) {
	var progress []Progress
	if err := s.gw.Get(ctx, "/progress/"+url.PathEscape(userID), &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ForCourse returns a user's progress in one course.
func (s *ProgressService) ForCourse(ctx context.Context, userID, courseID string) (Progress, error) {
	var progress Progress
	path := "/progress/" + url.PathEscape(userID) + "/" + url.PathEscape(courseID)
	if err := s.gw.Get(ctx, path, &progress); err != nil {
		return Progress{}, err
	}
	return progress, nil
}

// Completion returns the completion summary of a course for a user.
func (s *ProgressService) Completion(ctx context.Context, userID, courseID string) (CourseCompletion, error) {
	var completion CourseCompletion
	path := "/progress/" + url.PathEscape(userID) + "/" + url.PathEscape(courseID) + "/completion"
	if err := s.gw.Get(ctx, path, &completion); err != nil {
		return CourseCompletion{}, err
	}
	return completion, nil
}
