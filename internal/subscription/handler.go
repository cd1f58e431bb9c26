package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anygymuk/anygymAPI/internal/api"
	"github.com/anygymuk/anygymAPI/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Purchase a subscription
// @Description  Creates the member's active subscription; a member can hold
// @Description  at most one at a time.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body subscription.PurchaseRequest true "Subscription payload"
// @Success      201 {object} subscription.Subscription
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /subscriptions [post]
func (h *Handler) Purchase(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	sub, err := h.service.Purchase(ctx, memberID, req)
	if err != nil {
		switch err {
		case ErrInvalidTier:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription tier"})
		case ErrActiveSubscriptionExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "An active subscription already exists"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create subscription"})
		}
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// @Summary      Get the member's active subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} subscription.Subscription
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscriptions/active [get]
func (h *Handler) GetActive(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	sub, err := h.service.GetActive(ctx, memberID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active subscription"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// @Summary      Cancel the member's active subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /subscriptions/active [delete]
func (h *Handler) Cancel(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Cancel(ctx, memberID); err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active subscription"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Subscription cancelled"})
}
