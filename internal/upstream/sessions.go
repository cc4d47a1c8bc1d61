package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tutorhive/admin-gateway/internal/models"
)

type sessionsData struct {
	Sessions []models.Session `json:"sessions"`
}

// ListSessions fetches a page of sessions. The upstream offers no date
// filter on this endpoint, so calendar callers request one large page and
// filter to the visible range themselves.
func (c *Client) ListSessions(ctx context.Context, token string, page, limit int) ([]models.Session, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var data sessionsData
	if err := c.do(ctx, http.MethodGet, "/sessions", query, token, nil, &data); err != nil {
		return nil, err
	}
	return data.Sessions, nil
}
