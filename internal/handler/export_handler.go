package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/admin-gateway/internal/calendar"
	"github.com/tutorhive/admin-gateway/internal/middleware"
	"github.com/tutorhive/admin-gateway/internal/service"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
	"github.com/tutorhive/admin-gateway/pkg/response"
)

type exportService interface {
	Agenda(ctx context.Context, token string, reference time.Time, view calendar.View, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler serves agenda downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Agenda godoc
// @Summary Export the visible range's agenda
// @Tags Calendar
// @Produce text/csv
// @Produce application/pdf
// @Param view query string false "View granularity (month, week, day)"
// @Param date query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} binary
// @Router /calendar/export [get]
func (h *ExportHandler) Agenda(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	view, err := calendar.ParseView(c.Query("view"))
	if err != nil {
		response.Error(c, err)
		return
	}

	format, err := service.ParseExportFormat(c.Query("format"))
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

	result, err := h.service.Agenda(c.Request.Context(), middleware.Token(c), reference, view, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
