package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/anygymuk/anygymAPI/internal/audit"
	"github.com/anygymuk/anygymAPI/internal/auth"
	"github.com/anygymuk/anygymAPI/internal/config"
	"github.com/anygymuk/anygymAPI/internal/gym"
	"github.com/anygymuk/anygymAPI/internal/member"
	"github.com/anygymuk/anygymAPI/internal/notify"
	"github.com/anygymuk/anygymAPI/internal/pass"
	"github.com/anygymuk/anygymAPI/internal/staff"
	"github.com/anygymuk/anygymAPI/internal/subscription"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server

	PassService pass.Service
}

func New(db *sqlx.DB, cfg *config.Config, notifier *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	auditRepo := audit.NewRepository(db)

	gymRepo := gym.NewRepository(db)
	gymService := gym.NewService(gymRepo, auditRepo)
	gymHandler := gym.NewHandler(gymService)

	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo, cfg.JWTSecret)
	memberHandler := member.NewHandler(memberService)

	staffRepo := staff.NewRepository(db)
	staffService := staff.NewService(staffRepo, gymRepo, auditRepo, cfg.JWTSecret)
	staffHandler := staff.NewHandler(staffService, auditRepo)

	subRepo := subscription.NewRepository(db)
	subService := subscription.NewService(subRepo)
	subHandler := subscription.NewHandler(subService)

	passRepo := pass.NewRepository(db)
	passService := pass.NewService(passRepo, gymRepo, memberRepo, subRepo, staffService, notifier, auditRepo)
	passHandler := pass.NewHandler(passService)

	public := router.Group("/auth")
	{
		public.POST("/register", memberHandler.Register)
		public.POST("/login", memberHandler.Login)
		public.POST("/refresh", memberHandler.Refresh)
	}

	router.POST("/staff/login", staffHandler.Login)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	protected := router.Group("/")
	protected.Use(authMiddleware, auth.RequireRole("member"))
	{
		protected.GET("/me", memberHandler.GetMe)
		protected.GET("/gyms", gymHandler.ListGyms)
		protected.GET("/gyms/:gymID/entitlement", passHandler.CheckEntitlement)
		protected.POST("/gyms/:gymID/passes", passHandler.IssuePass)
		protected.GET("/passes", passHandler.ListPassHistory)
		protected.GET("/passes/active", passHandler.GetActivePass)
		protected.POST("/subscriptions", subHandler.Purchase)
		protected.GET("/subscriptions/active", subHandler.GetActive)
		protected.DELETE("/subscriptions/active", subHandler.Cancel)
	}

	staffAuth := auth.RequireRole(string(staff.RoleChainAdmin), string(staff.RoleGymAdmin), string(staff.RoleGymStaff))
	staffGroup := router.Group("/staff")
	staffGroup.Use(authMiddleware, staffAuth, staff.AccountMiddleware(staffService))
	{
		staffGroup.GET("/me", staffHandler.GetMe)
		staffGroup.POST("/accounts", staffHandler.CreateAccount)
		staffGroup.GET("/events", staffHandler.ListEvents)
		staffGroup.GET("/gyms", gymHandler.ListGymsForStaff)
		staffGroup.POST("/gyms", gymHandler.CreateGym)
		staffGroup.GET("/gyms/:gymID", gymHandler.GetGymForStaff)
		staffGroup.PATCH("/gyms/:gymID", gymHandler.UpdateGym)
		staffGroup.GET("/members", memberHandler.ListMembersForStaff)
		staffGroup.GET("/passes", passHandler.ListPassesForStaff)
		staffGroup.POST("/checkin", passHandler.CheckIn)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/queue-status", QueueStatus(notifier))
	SetupSwagger(router)

	return &Server{
		router:      router,
		db:          db,
		config:      cfg,
		PassService: passService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
