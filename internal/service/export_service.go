package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tutorhive/admin-gateway/internal/calendar"
	"github.com/tutorhive/admin-gateway/internal/models"
	"github.com/tutorhive/admin-gateway/pkg/export"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

// ExportFormat selects the agenda export encoding.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ParseExportFormat validates a raw format string, defaulting to CSV.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(raw) {
	case ExportCSV, ExportPDF:
		return ExportFormat(raw), nil
	case "":
		return ExportCSV, nil
	}
	return "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
}

// ExportResult is a rendered agenda document.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the visible range's agenda as CSV or PDF.
type ExportService struct {
	calendar *CalendarService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(calendarSvc *CalendarService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		calendar: calendarSvc,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

var agendaHeaders = []string{"Date", "Time", "Title", "Subject", "Teacher", "Student", "Status", "Holiday"}

// Agenda fetches the range for reference+view and renders every session in
// it, one row per session, ordered by start time.
func (s *ExportService) Agenda(ctx context.Context, token string, reference time.Time, view calendar.View, format ExportFormat) (*ExportResult, error) {
	r := calendar.ComputeRange(reference, view)
	data := s.calendar.fetch(ctx, token, r)
	holidays := calendar.HolidaysByDate(data.Holidays)

	sessions := make([]models.Session, len(data.Sessions))
	copy(sessions, data.Sessions)
	calendar.SortSessionsByStart(sessions)

	dataset := export.Dataset{Headers: agendaHeaders}
	for _, session := range sessions {
		key := models.DateKey(session.StartTime)
		holidayName := ""
		if h, ok := holidays[key]; ok {
			holidayName = h.Name
		}
		title := session.Title
		if title == "" {
			title = "Session"
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":    key,
			"Time":    session.StartTime.Format("3:04 PM") + " - " + session.EndTime.Format("3:04 PM"),
			"Title":   title,
			"Subject": session.Subject.Label(),
			"Teacher": session.Teacher.Label(),
			"Student": session.Student.Label(),
			"Status":  string(session.Status),
			"Holiday": holidayName,
		})
	}

	rangeLabel := models.DateKey(r.Start) + " to " + models.DateKey(r.End)
	filename := "agenda-" + models.DateKey(r.Start) + "-" + string(view)

	switch format {
	case ExportPDF:
		content, err := s.pdf.Render(dataset, "Session Agenda", rangeLabel)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render agenda pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: filename + ".pdf"}, nil
	default:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render agenda csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: filename + ".csv"}, nil
	}
}
