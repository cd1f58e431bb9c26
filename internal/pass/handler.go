package pass

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anygymuk/anygymAPI/internal/api"
	"github.com/anygymuk/anygymAPI/internal/auth"
	"github.com/anygymuk/anygymAPI/internal/gym"
	"github.com/anygymuk/anygymAPI/internal/staff"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Issue a gym pass
// @Description  Issues a time-boxed pass for the target gym if the member's
// @Description  subscription, quota, tier and existing passes allow it.
// @Tags         passes
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Success      201 {object} pass.Pass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /gyms/{gymID}/passes [post]
func (h *Handler) IssuePass(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
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
	p, err := h.service.IssuePass(ctx, memberID, gymID)
	if err != nil {
		respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// @Summary      Check pass entitlement
// @Description  Dry-run of the issuance checks for the target gym.
// @Tags         passes
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Success      200 {object} pass.Entitlement
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /gyms/{gymID}/entitlement [get]
func (h *Handler) CheckEntitlement(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
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
	ent, err := h.service.CheckEntitlement(ctx, memberID, gymID)
	if err != nil {
		respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, ent)
}

// @Summary      Get the member's active pass
// @Tags         passes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} pass.Pass
// @Failure      404 {object} api.ErrorResponse
// @Router       /passes/active [get]
func (h *Handler) GetActivePass(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	p, err := h.service.FindActivePass(ctx, memberID)
	if err != nil {
		if errors.Is(err, ErrPassNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active pass"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch pass"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      List the member's pass history
// @Tags         passes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} pass.Pass
// @Router       /passes [get]
func (h *Handler) ListPassHistory(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	passes, err := h.service.FindPassHistory(ctx, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch passes"})
		return
	}

	c.JSON(http.StatusOK, passes)
}

// @Summary      List passes in the staff scope
// @Tags         staff,passes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} pass.PassWithDetails
// @Failure      401 {object} api.ErrorResponse
// @Router       /staff/passes [get]
func (h *Handler) ListPassesForStaff(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	passes, err := h.service.ListForStaff(ctx, acct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch passes"})
		return
	}

	c.JSON(http.StatusOK, passes)
}

// @Summary      Check in a pass
// @Description  Resolves a presented pass code against the staff account's
// @Description  chain for front-desk verification.
// @Tags         staff,passes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body pass.CheckInRequest true "Check-in payload"
// @Success      200 {object} pass.PassView
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /staff/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	view, err := h.service.CheckIn(ctx, acct, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCode):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Pass code is required"})
		case errors.Is(err, ErrPassNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Pass not found"})
		case errors.Is(err, ErrChainMismatch):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Pass belongs to a different chain"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to check in pass"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func respondIssueError(c *gin.Context, err error) {
	var quotaErr *QuotaExceededError
	var tierErr *TierNotAllowedError

	switch {
	case errors.Is(err, ErrNoActiveSubscription):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active subscription"})
	case errors.As(err, &quotaErr):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: quotaErr.Error()})
	case errors.Is(err, ErrDuplicateActivePass):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "An active pass already exists"})
	case errors.Is(err, gym.ErrGymNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
	case errors.Is(err, ErrGymInactive):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Gym is not accepting passes"})
	case errors.As(err, &tierErr):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: tierErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to issue pass"})
	}
}
