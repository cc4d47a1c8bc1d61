package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tutorhive/admin-gateway/internal/dto"
	"github.com/tutorhive/admin-gateway/internal/models"
	"github.com/tutorhive/admin-gateway/internal/upstream"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

type holidayWriter interface {
	CreateHoliday(ctx context.Context, token string, payload upstream.HolidayPayload) (*models.PublicHoliday, error)
	UpdateHoliday(ctx context.Context, token, id string, payload upstream.HolidayPayload) (*models.PublicHoliday, error)
	DeleteHoliday(ctx context.Context, token, id string) error
}

// HolidayService proxies the holiday editor's mutations to the upstream.
// Payloads are validated locally first so an incomplete form never reaches
// the wire; upstream failures surface the upstream's message so the editor
// can stay open for retry.
type HolidayService struct {
	writer    holidayWriter
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewHolidayService constructs the service.
func NewHolidayService(writer holidayWriter, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *HolidayService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HolidayService{writer: writer, validator: validate, metrics: metrics, logger: logger}
}

// Create validates and submits a new holiday.
func (s *HolidayService) Create(ctx context.Context, token string, req dto.CreateHolidayRequest) (*dto.HolidayInfo, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "holiday name and date are required")
	}

	payload := upstream.HolidayPayload{
		Name:        req.Name,
		Date:        req.Date,
		Description: normalizeDescription(req.Description),
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	start := time.Now()
	created, err := s.writer.CreateHoliday(ctx, token, payload)
	s.metrics.ObserveUpstreamRequest("create_holiday", time.Since(start), err != nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info("public holiday created", zap.String("date", req.Date), zap.String("name", req.Name))
	return mutationResult(created, payload, ""), nil
}

// Update validates and submits changes to an existing holiday. The date is
// immutable; callers wanting a different date delete and recreate.
func (s *HolidayService) Update(ctx context.Context, token, id string, req dto.UpdateHolidayRequest) (*dto.HolidayInfo, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "holiday id is required")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "holiday name is required")
	}

	payload := upstream.HolidayPayload{
		Name:        req.Name,
		Description: normalizeDescription(req.Description),
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	start := time.Now()
	updated, err := s.writer.UpdateHoliday(ctx, token, id, payload)
	s.metrics.ObserveUpstreamRequest("update_holiday", time.Since(start), err != nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info("public holiday updated", zap.String("id", id), zap.String("name", req.Name))
	return mutationResult(updated, payload, id), nil
}

// Delete removes a holiday. The destructive-action confirmation prompt is
// the SPA's responsibility; by the time this runs the admin has confirmed.
func (s *HolidayService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "holiday id is required")
	}

	start := time.Now()
	err := s.writer.DeleteHoliday(ctx, token, id)
	s.metrics.ObserveUpstreamRequest("delete_holiday", time.Since(start), err != nil)
	if err != nil {
		return err
	}

	s.logger.Info("public holiday deleted", zap.String("id", id))
	return nil
}

// normalizeDescription trims the description and collapses an empty field
// to null, matching what the holiday editor has always sent.
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// mutationResult prefers the upstream's echo of the record and falls back
// to the submitted payload when the upstream returned an empty body.
func mutationResult(h *models.PublicHoliday, payload upstream.HolidayPayload, id string) *dto.HolidayInfo {
	if h != nil {
		return &dto.HolidayInfo{
			ID:          h.ID,
			Name:        h.Name,
			Date:        models.DateKey(h.Date),
			Description: h.Description,
			IsActive:    h.IsActive,
		}
	}
	return &dto.HolidayInfo{
		ID:          id,
		Name:        payload.Name,
		Date:        payload.Date,
		Description: payload.Description,
		IsActive:    payload.IsActive,
	}
}
