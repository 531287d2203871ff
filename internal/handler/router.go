package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agora-server/internal/domain/user"
	"agora-server/internal/handler/api"
	"agora-server/internal/handler/middleware"
	"agora-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Venue       *api.VenueHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Event       *api.EventHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.AccessLog(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp, Mw: []gin.HandlerFunc{rateLimiter.Limit("auth")}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateLimiter.Limit("auth")}},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		venues := apiGroup.Group("/venues")
		{
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Venue.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Venue.Get, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByVenue},
				{Method: http.MethodGet, Path: "/:id/events", Handler: h.Event.ListByVenue},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events", Handler: h.Event.ListUpcoming},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{rateLimiter.Limit("reservations")}},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodGet, Path: "/:id/checkin-token", Handler: h.Reservation.CheckinToken},
			})
		}

		business := apiGroup.Group("/business")
		business.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleBusiness))
		{
			addRoutes(business, []route{
				{Method: http.MethodPost, Path: "/venues", Handler: h.Venue.Create},
				{Method: http.MethodGet, Path: "/venues", Handler: h.Venue.ListMine},
				{Method: http.MethodGet, Path: "/venues/:id/reservations", Handler: h.Reservation.ListForVenue},
				{Method: http.MethodPost, Path: "/venues/:id/events", Handler: h.Event.Create},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: h.Reservation.Decide},
				{Method: http.MethodPost, Path: "/checkin", Handler: h.Reservation.Checkin},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/venues", Handler: h.Venue.ListAll},
				{Method: http.MethodPatch, Path: "/venues/:id", Handler: h.Venue.Moderate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
