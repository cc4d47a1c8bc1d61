package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhive/admin-gateway/pkg/config"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := New(config.UpstreamConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, nil)
	return client, server
}

func TestListSessions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"sessions":[
			{"_id":"s1","startTime":"2024-03-15T09:00:00Z","endTime":"2024-03-15T10:00:00Z","status":"scheduled",
			 "subject":{"_id":"sub-1","name":"Mathematics"},"teacher":"usr-9"},
			{"_id":"s2","startTime":"2024-03-15T11:00:00Z","endTime":"2024-03-15T12:00:00Z","status":"completed"}
		]}}`)
	})

	sessions, err := client.ListSessions(context.Background(), "secret-token", 1, 1000)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "s1", sessions[0].ID)
	// Entity references arrive either populated or as bare id strings.
	require.NotNil(t, sessions[0].Subject)
	assert.Equal(t, "Mathematics", sessions[0].Subject.Label())
	require.NotNil(t, sessions[0].Teacher)
	assert.Equal(t, "usr-9", sessions[0].Teacher.ID)
	assert.Nil(t, sessions[1].Subject)
}

func TestListHolidaysQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public-holidays", r.URL.Path)
		assert.Equal(t, "2024-08-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-08-31", r.URL.Query().Get("endDate"))

		io.WriteString(w, `{"data":{"holidays":[
			{"_id":"h1","name":"Independence Day","date":"2024-08-15T00:00:00Z","isActive":true}
		]}}`)
	})

	holidays, err := client.ListHolidays(context.Background(), "token", "2024-08-01", "2024-08-31")
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "Independence Day", holidays[0].Name)
	assert.Equal(t, 15, holidays[0].Date.Day())
}

func TestCreateHolidaySendsNullDescription(t *testing.T) {
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"data":{"holiday":{"_id":"h-new","name":"Independence Day","date":"2024-08-15T00:00:00Z","isActive":true}}}`)
	})

	created, err := client.CreateHoliday(context.Background(), "token", HolidayPayload{
		Name:     "Independence Day",
		Date:     "2024-08-15",
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "h-new", created.ID)

	assert.JSONEq(t, `"2024-08-15"`, string(body["date"]))
	assert.JSONEq(t, `null`, string(body["description"]))
}

func TestUpdateHolidayDropsDate(t *testing.T) {
	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/public-holidays/h-7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// Bare holiday object, no {holiday: ...} wrapper.
		io.WriteString(w, `{"data":{"_id":"h-7","name":"Renamed Day","date":"2024-08-15T00:00:00Z","isActive":false}}`)
	})

	updated, err := client.UpdateHoliday(context.Background(), "token", "h-7", HolidayPayload{
		Name: "Renamed Day",
		Date: "2024-09-01",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "h-7", updated.ID)
	assert.False(t, updated.IsActive)

	_, dateSent := body["date"]
	assert.False(t, dateSent, "update payload must not carry a date")
}

func TestDeleteHoliday(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/public-holidays/h-7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteHoliday(context.Background(), "token", "h-7"))
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		status   int
		body     string
		wantCode string
		wantMsg  string
	}{
		{http.StatusUnauthorized, `{"error":{"message":"token expired"}}`, appErrors.ErrUnauthorized.Code, "token expired"},
		{http.StatusForbidden, `{"message":"admins only"}`, appErrors.ErrForbidden.Code, "admins only"},
		{http.StatusNotFound, `{}`, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Message},
		{http.StatusConflict, `{"error":{"message":"holiday already exists"}}`, appErrors.ErrConflict.Code, "holiday already exists"},
		{http.StatusUnprocessableEntity, `{"error":{"message":"date is required"}}`, appErrors.ErrValidation.Code, "date is required"},
		{http.StatusInternalServerError, ``, appErrors.ErrUpstream.Code, "upstream responded with status 500"},
	}

	for _, tc := range cases {
		status, body := tc.status, tc.body
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			io.WriteString(w, body)
		})

		_, err := client.ListSessions(context.Background(), "token", 1, 10)
		require.Error(t, err, "status %d", tc.status)
		appErr := appErrors.FromError(err)
		assert.Equal(t, tc.wantCode, appErr.Code, "status %d", tc.status)
		assert.Equal(t, tc.wantMsg, appErr.Message, "status %d", tc.status)
	}
}

func TestTransportFailureMapsToUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(config.UpstreamConfig{BaseURL: server.URL, Timeout: time.Second}, nil)
	server.Close()

	_, err := client.ListSessions(context.Background(), "token", 1, 10)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, appErrors.FromError(err).Code)
}
