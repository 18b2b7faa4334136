package handlers

import (
	"errors"
	"net/http"

	"github.com/harshjindal13/brainly-fullStack/internal/apperr"
	"github.com/harshjindal13/brainly-fullStack/internal/config"
	"github.com/harshjindal13/brainly-fullStack/internal/logger"
	"github.com/harshjindal13/brainly-fullStack/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const statusOK = "ok"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      *config.Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg *config.Config) *Handler {
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public endpoints: signup, signin, shared-brain reads
	h.registerPublicRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live shared-brain stream over the same port (HTTP upgrade)
	router.GET("/ws/brain/:shareLink", h.wsBrain)

	return router
}

func (h *Handler) registerPublicRoutes(r *gin.Engine) {
	public := r.Group("/api/v1")
	{
		public.POST("/signup", h.signUp)
		public.POST("/signin", h.signIn)
		// Reading a shared brain requires no account at all.
		public.GET("/brain/:shareLink", h.resolveBrain)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerContentRoutes(api)
		h.registerShareRoutes(api)
	}
}

func (h *Handler) registerContentRoutes(api *gin.RouterGroup) {
	content := api.Group("/content")
	{
		content.POST("", h.createContent)
		content.GET("", h.listContent)
		content.DELETE("", h.deleteContent)
	}
}

func (h *Handler) registerShareRoutes(api *gin.RouterGroup) {
	brain := api.Group("/brain")
	{
		brain.POST("/share", h.shareBrain)
	}
}

// corsConfig builds the browser policy from configuration. With no
// configured origins the API stays open, which suits local tooling.
func (h *Handler) corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if h.cfg != nil && len(h.cfg.CORSAllowOrigins) > 0 {
		c.AllowOrigins = h.cfg.CORSAllowOrigins
	} else {
		c.AllowAllOrigins = true
	}
	return c
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// userIDKey is the context key the auth middleware stores the caller under.
const userIDKey = "userId"

// userID returns the authenticated user attached by userIdMiddleware.
func userID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// respondError translates a service error into the HTTP contract.
// Server faults log the cause and keep the body generic outside dev.
func (h *Handler) respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = &apperr.Error{Kind: apperr.KindStore, Msg: "internal error", Err: err}
	}
	status := ae.Kind.HTTPStatus()
	msg := ae.Msg
	if status >= http.StatusInternalServerError {
		if h.log != nil {
			h.log.Errorw("request_failed", "path", c.FullPath(), "err", err)
		}
		if h.devDetail() {
			msg = err.Error()
		} else {
			msg = "internal error"
		}
	}
	c.JSON(status, gin.H{"message": msg})
}

func (h *Handler) devDetail() bool {
	return h.cfg != nil && h.cfg.Env != logger.EnvProd
}
