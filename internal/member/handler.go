package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anygymuk/anygymAPI/internal/api"
	"github.com/anygymuk/anygymAPI/internal/auth"
	"github.com/anygymuk/anygymAPI/internal/staff"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type authResponse struct {
	Member       *Member `json:"member"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
}

// @Summary      Register a member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body member.RegisterRequest true "Registration payload"
// @Success      201 {object} member.authResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	m, accessToken, refreshToken, err := h.service.Register(ctx, req)
	if err != nil {
		switch err {
		case ErrEmailExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to register"})
		}
		return
	}

	c.JSON(http.StatusCreated, authResponse{Member: m, AccessToken: accessToken, RefreshToken: refreshToken})
}

// @Summary      Log in as a member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body member.LoginRequest true "Login payload"
// @Success      200 {object} member.authResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	m, accessToken, refreshToken, err := h.service.Login(ctx, req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, authResponse{Member: m, AccessToken: accessToken, RefreshToken: refreshToken})
}

// @Summary      Refresh an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body member.RefreshRequest true "Refresh payload"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	accessToken, m, err := h.service.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken, "member": m})
}

// @Summary      Get the authenticated member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} member.Member
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	memberID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	m, err := h.service.GetByID(ctx, memberID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      List members visible to the staff scope
// @Description  A member is visible if it holds a pass at a gym in scope.
// @Tags         staff,members
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} member.Member
// @Failure      401 {object} api.ErrorResponse
// @Router       /staff/members [get]
func (h *Handler) ListMembersForStaff(c *gin.Context) {
	acct, ok := staff.AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	ctx := c.Request.Context()
	members, err := h.service.ListForStaff(ctx, acct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, members)
}
