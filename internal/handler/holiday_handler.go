package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/admin-gateway/internal/dto"
	"github.com/tutorhive/admin-gateway/internal/middleware"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
	"github.com/tutorhive/admin-gateway/pkg/response"
)

type holidayService interface {
	Create(ctx context.Context, token string, req dto.CreateHolidayRequest) (*dto.HolidayInfo, error)
	Update(ctx context.Context, token, id string, req dto.UpdateHolidayRequest) (*dto.HolidayInfo, error)
	Delete(ctx context.Context, token, id string) error
}

// HolidayHandler proxies the holiday editor's mutations.
type HolidayHandler struct {
	service holidayService
}

// NewHolidayHandler constructs the handler.
func NewHolidayHandler(service holidayService) *HolidayHandler {
	return &HolidayHandler{service: service}
}

// Create godoc
// @Summary Create a public holiday
// @Tags Holidays
// @Accept json
// @Produce json
// @Param payload body dto.CreateHolidayRequest true "Holiday"
// @Success 201 {object} response.Envelope
// @Router /public-holidays [post]
func (h *HolidayHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid holiday payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.Token(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Update a public holiday (date immutable)
// @Tags Holidays
// @Accept json
// @Produce json
// @Param id path string true "Holiday ID"
// @Param payload body dto.UpdateHolidayRequest true "Holiday"
// @Success 200 {object} response.Envelope
// @Router /public-holidays/{id} [patch]
func (h *HolidayHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid holiday payload"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.Token(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Delete godoc
// @Summary Delete a public holiday
// @Tags Holidays
// @Produce json
// @Param id path string true "Holiday ID"
// @Success 204 "No Content"
// @Router /public-holidays/{id} [delete]
func (h *HolidayHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Token(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
