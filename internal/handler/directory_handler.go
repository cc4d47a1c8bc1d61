package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/admin-gateway/internal/middleware"
	"github.com/tutorhive/admin-gateway/internal/models"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
	"github.com/tutorhive/admin-gateway/pkg/response"
)

type directoryService interface {
	Subjects(ctx context.Context, token string, page, limit int) ([]models.Subject, error)
	Teachers(ctx context.Context, token string, page, limit int) ([]models.Teacher, error)
}

// DirectoryHandler exposes the subject catalogue and teacher roster.
type DirectoryHandler struct {
	service directoryService
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(service directoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Subjects godoc
// @Summary List subjects
// @Tags Directory
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *DirectoryHandler) Subjects(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	page, limit := pageParams(c)
	subjects, err := h.service.Subjects(c.Request.Context(), middleware.Token(c), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"subjects": subjects}, nil)
}

// Teachers godoc
// @Summary List teachers
// @Tags Directory
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *DirectoryHandler) Teachers(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	page, limit := pageParams(c)
	teachers, err := h.service.Teachers(c.Request.Context(), middleware.Token(c), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"teachers": teachers}, nil)
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 100
	}
	return page, limit
}
