package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tutorhive/admin-gateway/internal/models"
)

type subjectsData struct {
	Subjects []models.Subject `json:"subjects"`
}

type usersData struct {
	Users []models.Teacher `json:"users"`
}

// ListSubjects fetches the subject catalogue, used by the SPA for session
// labels and filter dropdowns.
func (c *Client) ListSubjects(ctx context.Context, token string, page, limit int) ([]models.Subject, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var data subjectsData
	if err := c.do(ctx, http.MethodGet, "/subjects", query, token, nil, &data); err != nil {
		return nil, err
	}
	return data.Subjects, nil
}

// ListTeachers fetches users carrying the teacher role.
func (c *Client) ListTeachers(ctx context.Context, token string, page, limit int) ([]models.Teacher, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var data usersData
	if err := c.do(ctx, http.MethodGet, "/roles/teacher/users", query, token, nil, &data); err != nil {
		return nil, err
	}
	return data.Users, nil
}
