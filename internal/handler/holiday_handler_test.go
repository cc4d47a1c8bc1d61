package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhive/admin-gateway/internal/dto"
	"github.com/tutorhive/admin-gateway/internal/middleware"
	"github.com/tutorhive/admin-gateway/internal/models"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

type holidayServiceStub struct {
	createReq *dto.CreateHolidayRequest
	updateReq *dto.UpdateHolidayRequest
	gotID     string
	err       error
}

func (s *holidayServiceStub) Create(ctx context.Context, token string, req dto.CreateHolidayRequest) (*dto.HolidayInfo, error) {
	s.createReq = &req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.HolidayInfo{ID: "h-1", Name: req.Name, Date: req.Date, IsActive: true}, nil
}

func (s *holidayServiceStub) Update(ctx context.Context, token, id string, req dto.UpdateHolidayRequest) (*dto.HolidayInfo, error) {
	s.gotID = id
	s.updateReq = &req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.HolidayInfo{ID: id, Name: req.Name, IsActive: true}, nil
}

func (s *holidayServiceStub) Delete(ctx context.Context, token, id string) error {
	s.gotID = id
	return s.err
}

func jsonContext(t *testing.T, method, target, body string, authed bool) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if authed {
		c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u-1", Role: models.RoleAdmin})
		c.Set(middleware.ContextTokenKey, "raw-token")
	}
	return c, w
}

func TestHolidayHandlerCreate(t *testing.T) {
	stub := &holidayServiceStub{}
	h := NewHolidayHandler(stub)
	c, w := jsonContext(t, http.MethodPost, "/api/v1/public-holidays",
		`{"name":"Independence Day","date":"2024-08-15","description":""}`, true)

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stub.createReq)
	assert.Equal(t, "Independence Day", stub.createReq.Name)
	assert.Equal(t, "2024-08-15", stub.createReq.Date)
}

func TestHolidayHandlerCreateRequiresAuth(t *testing.T) {
	h := NewHolidayHandler(&holidayServiceStub{})
	c, w := jsonContext(t, http.MethodPost, "/api/v1/public-holidays", `{}`, false)

	h.Create(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHolidayHandlerCreateRejectsMalformedBody(t *testing.T) {
	stub := &holidayServiceStub{}
	h := NewHolidayHandler(stub)
	c, w := jsonContext(t, http.MethodPost, "/api/v1/public-holidays", `{"name":`, true)

	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, stub.createReq)
}

func TestHolidayHandlerCreateSurfacesServiceError(t *testing.T) {
	stub := &holidayServiceStub{err: appErrors.Clone(appErrors.ErrConflict, "holiday already exists on this date")}
	h := NewHolidayHandler(stub)
	c, w := jsonContext(t, http.MethodPost, "/api/v1/public-holidays",
		`{"name":"Independence Day","date":"2024-08-15"}`, true)

	h.Create(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "holiday already exists on this date")
}

func TestHolidayHandlerUpdate(t *testing.T) {
	stub := &holidayServiceStub{}
	h := NewHolidayHandler(stub)
	c, w := jsonContext(t, http.MethodPatch, "/api/v1/public-holidays/h-7",
		`{"name":"Renamed Day","isActive":false}`, true)
	c.Params = gin.Params{{Key: "id", Value: "h-7"}}

	h.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "h-7", stub.gotID)
	require.NotNil(t, stub.updateReq)
	assert.Equal(t, "Renamed Day", stub.updateReq.Name)
	require.NotNil(t, stub.updateReq.IsActive)
	assert.False(t, *stub.updateReq.IsActive)
}

func TestHolidayHandlerDelete(t *testing.T) {
	stub := &holidayServiceStub{}
	h := NewHolidayHandler(stub)
	c, w := jsonContext(t, http.MethodDelete, "/api/v1/public-holidays/h-7", "", true)
	c.Params = gin.Params{{Key: "id", Value: "h-7"}}

	h.Delete(c)
	// c.Status defers the write; flush it so the recorder sees the code.
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "h-7", stub.gotID)
}
