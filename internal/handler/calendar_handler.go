package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/admin-gateway/internal/calendar"
	"github.com/tutorhive/admin-gateway/internal/dto"
	"github.com/tutorhive/admin-gateway/internal/middleware"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
	"github.com/tutorhive/admin-gateway/pkg/response"
)

type calendarService interface {
	View(ctx context.Context, token string, reference time.Time, view calendar.View) (*dto.CalendarResponse, map[string]interface{})
	DaySessions(ctx context.Context, token string, day time.Time) *dto.DaySessionsResponse
}

// CalendarHandler exposes the computed calendar views.
type CalendarHandler struct {
	service     calendarService
	defaultView string
}

// NewCalendarHandler constructs the handler. defaultView is the configured
// view used when a request names none; empty falls back to month.
func NewCalendarHandler(service calendarService, defaultView string) *CalendarHandler {
	return &CalendarHandler{service: service, defaultView: defaultView}
}

// View godoc
// @Summary Computed calendar view model
// @Tags Calendar
// @Produce json
// @Param view query string false "View granularity (month, week, day)"
// @Param date query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) View(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	raw := c.Query("view")
	if raw == "" {
		raw = h.defaultView
	}
	view, err := calendar.ParseView(raw)
	if err != nil {
		response.Error(c, err)
		return
	}

	reference, err := parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	if reference.IsZero() {
		reference = time.Now()
	}

	resp, meta := h.service.View(c.Request.Context(), middleware.Token(c), reference, view)
	response.JSON(c, http.StatusOK, resp, nil, meta)
}

// DaySessions godoc
// @Summary Sessions of a single day, sorted by start time
// @Tags Calendar
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/day-sessions [get]
func (h *CalendarHandler) DaySessions(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	day, err := parseDateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	if day.IsZero() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date is required"))
		return
	}

	resp := h.service.DaySessions(c.Request.Context(), middleware.Token(c), day)
	response.JSON(c, http.StatusOK, resp, nil)
}
