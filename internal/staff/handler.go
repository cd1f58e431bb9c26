package staff

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anygymuk/anygymAPI/internal/api"
	"github.com/anygymuk/anygymAPI/internal/audit"
)

const defaultEventLimit = 100

type Handler struct {
	service Service
	audits  audit.Repository
}

func NewHandler(service Service, audits audit.Repository) *Handler {
	return &Handler{service: service, audits: audits}
}

type loginResponse struct {
	Account      *Account `json:"account"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// @Summary      Log in as staff
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        request body staff.LoginRequest true "Login payload"
// @Success      200 {object} staff.loginResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /staff/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	acct, accessToken, refreshToken, err := h.service.Login(ctx, req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Account: acct, AccessToken: accessToken, RefreshToken: refreshToken})
}

// @Summary      Get the authenticated staff account
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} staff.Account
// @Failure      401 {object} api.ErrorResponse
// @Router       /staff/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	acct, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, acct)
}

// @Summary      Create a staff account
// @Description  gym_staff may never create accounts; gym_admin may only
// @Description  assign a subset of its own gyms; chain_admin only within its
// @Description  own chain.
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body staff.CreateAccountRequest true "Account payload"
// @Success      201 {object} staff.Account
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /staff/accounts [post]
func (h *Handler) CreateAccount(c *gin.Context) {
	acct, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	created, err := h.service.CreateAccount(ctx, acct, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed to create this account"})
		case ErrInvalidRole, ErrNoGymsAssigned:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case ErrEmailExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create staff account"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List audit events in scope
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum events to return"
// @Success      200 {array} audit.Event
// @Failure      401 {object} api.ErrorResponse
// @Router       /staff/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	acct, ok := AccountFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	limit := defaultEventLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 1000 {
			limit = parsed
		}
	}

	ctx := c.Request.Context()
	scope := ScopeFor(acct)

	var (
		events []audit.Event
		err    error
	)
	switch scope.Kind {
	case ChainScope:
		events, err = h.audits.ListForChain(ctx, scope.ChainID, limit)
	case GymSetScope:
		events, err = h.audits.ListForGyms(ctx, scope.GymIDs, limit)
	default:
		events = []audit.Event{}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
