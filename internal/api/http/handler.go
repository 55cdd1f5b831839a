package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"

	internalV1 "github.com/compagnon-careme/backend/internal/api/http/internal/v1"
	"github.com/compagnon-careme/backend/internal/config"
	"github.com/compagnon-careme/backend/internal/service"
	"github.com/compagnon-careme/backend/pkg/auth"
	"github.com/compagnon-careme/backend/pkg/logger"
	"github.com/compagnon-careme/backend/pkg/validator"
)

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		// TODO: Get from config
		corsMiddleware([]string{"https://mon-compagnon-du-careme.vercel.app", "http://localhost:5173", "http://127.0.0.1:5173"}),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Compagnon du Carême API fonctionne")
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlers := internalV1.NewHandler(h.services, h.tokenManager, h.config)
	api := router.Group("/api")
	internalHandlers.Init(api)
}
