package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/tutorhive/admin-gateway/internal/models"
)

type holidaysData struct {
	Holidays []models.PublicHoliday `json:"holidays"`
}

// HolidayPayload is the wire shape of holiday mutations. Description is a
// pointer so an empty form field serialises as null rather than "".
type HolidayPayload struct {
	Name        string  `json:"name"`
	Date        string  `json:"date,omitempty"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

// ListHolidays fetches holidays falling inside [startDate, endDate], both
// YYYY-MM-DD. Filtering happens upstream.
func (c *Client) ListHolidays(ctx context.Context, token, startDate, endDate string) ([]models.PublicHoliday, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var data holidaysData
	if err := c.do(ctx, http.MethodGet, "/public-holidays", query, token, nil, &data); err != nil {
		return nil, err
	}
	return data.Holidays, nil
}

// CreateHoliday creates a holiday and returns the created record.
func (c *Client) CreateHoliday(ctx context.Context, token string, payload HolidayPayload) (*models.PublicHoliday, error) {
	var data json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/public-holidays", nil, token, payload, &data); err != nil {
		return nil, err
	}
	return decodeHoliday(data), nil
}

// UpdateHoliday patches an existing holiday. The payload never carries a
// date; the date of a holiday is immutable.
func (c *Client) UpdateHoliday(ctx context.Context, token, id string, payload HolidayPayload) (*models.PublicHoliday, error) {
	payload.Date = ""

	var data json.RawMessage
	if err := c.do(ctx, http.MethodPatch, "/public-holidays/"+id, nil, token, payload, &data); err != nil {
		return nil, err
	}
	return decodeHoliday(data), nil
}

// DeleteHoliday removes a holiday.
func (c *Client) DeleteHoliday(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/public-holidays/"+id, nil, token, nil, nil)
}

// decodeHoliday accepts both {holiday: {...}} and a bare holiday object;
// the upstream has used both shapes for mutation responses.
func decodeHoliday(data json.RawMessage) *models.PublicHoliday {
	if len(data) == 0 {
		return nil
	}
	var wrapped struct {
		Holiday *models.PublicHoliday `json:"holiday"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Holiday != nil {
		return wrapped.Holiday
	}
	var holiday models.PublicHoliday
	if err := json.Unmarshal(data, &holiday); err == nil && holiday.ID != "" {
		return &holiday
	}
	return nil
}
