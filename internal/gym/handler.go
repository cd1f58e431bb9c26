package gym

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anygymuk/anygymAPI/internal/api"
	"github.com/anygymuk/anygymAPI/internal/staff"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List active gyms
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	ctx := c.Request.Context()
	gyms, err := h.service.ListActive(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      List gyms in the staff scope
// @Tags         staff,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Router       /staff/gyms [get]
func (h *Handler) ListGymsForStaff(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	gyms, err := h.service.ListForStaff(ctx, acct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Get a gym in the staff scope
// @Tags         staff,gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /staff/gyms/{gymID} [get]
func (h *Handler) GetGymForStaff(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	ctx := c.Request.Context()
	g, err := h.service.GetForStaff(ctx, acct, gymID)
	if err != nil {
		switch err {
		case ErrGymNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gym"})
		}
		return
	}

	c.JSON(http.StatusOK, g)
}

// @Summary      Create a gym
// @Description  chain_admin only, within its own chain.
// @Tags         staff,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.CreateGymRequest true "Gym payload"
// @Success      201 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /staff/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	g, err := h.service.Create(ctx, acct, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed to create gyms"})
		case ErrInvalidTier:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid required tier"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create gym"})
		}
		return
	}

	c.JSON(http.StatusCreated, g)
}

// @Summary      Update a gym
// @Tags         staff,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Param        request body gym.UpdateGymRequest true "Gym payload"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /staff/gyms/{gymID} [patch]
func (h *Handler) UpdateGym(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	g, err := h.service.Update(ctx, acct, gymID, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed to update this gym"})
		case ErrGymNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case ErrInvalidTier:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid required tier"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update gym"})
		}
		return
	}

	c.JSON(http.StatusOK, g)
}
