package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/compagnon-careme/backend/internal/config"
	"github.com/compagnon-careme/backend/internal/service"
	"github.com/compagnon-careme/backend/pkg/auth"
)

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initAuthRoutes(api)
	h.initChallengeRoutes(api)
}
