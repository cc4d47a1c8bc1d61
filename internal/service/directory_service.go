package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhive/admin-gateway/internal/models"
)

type directoryLister interface {
	ListSubjects(ctx context.Context, token string, page, limit int) ([]models.Subject, error)
	ListTeachers(ctx context.Context, token string, page, limit int) ([]models.Teacher, error)
}

// DirectoryService exposes the upstream's subject catalogue and teacher
// roster as read-only pass-throughs. The SPA uses them for labels and
// dropdowns; unlike the calendar read path these do not degrade silently,
// an upstream failure is the caller's to see.
type DirectoryService struct {
	lister  directoryLister
	metrics *MetricsService
	logger  *zap.Logger
}

// NewDirectoryService constructs the service.
func NewDirectoryService(lister directoryLister, metrics *MetricsService, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{lister: lister, metrics: metrics, logger: logger}
}

// Subjects lists the subject catalogue.
func (s *DirectoryService) Subjects(ctx context.Context, token string, page, limit int) ([]models.Subject, error) {
	start := time.Now()
	subjects, err := s.lister.ListSubjects(ctx, token, page, limit)
	s.metrics.ObserveUpstreamRequest("list_subjects", time.Since(start), err != nil)
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// Teachers lists users carrying the teacher role.
func (s *DirectoryService) Teachers(ctx context.Context, token string, page, limit int) ([]models.Teacher, error) {
	start := time.Now()
	teachers, err := s.lister.ListTeachers(ctx, token, page, limit)
	s.metrics.ObserveUpstreamRequest("list_teachers", time.Since(start), err != nil)
	if err != nil {
		return nil, err
	}
	return teachers, nil
}
