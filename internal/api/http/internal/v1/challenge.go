package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/compagnon-careme/backend/internal/service"
	"github.com/compagnon-careme/backend/pkg/logger"
)

func (h *Handler) initChallengeRoutes(api *gin.RouterGroup) {
	challenges := api.Group("/challenges", h.userIdentityMiddleware)
	{
		challenges.GET("/today", h.todayChallenge)
		challenges.POST("/complete", h.completeTodayChallenge)
		challenges.GET("/all", h.allChallenges)
	}
}

type challengeResponse struct {
	ID          string `json:"id"`
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Verse       string `json:"verse"`
}

type todayChallengeResponse struct {
	Day         int               `json:"day"`
	Progression string            `json:"progression"`
	Challenge   challengeResponse `json:"challenge"`
	Completed   bool              `json:"completed"`
}

// @Summary Today's challenge
// @Tags Challenges
// @Description Défi du jour avec la progression de l'utilisateur
// @Produce  json
// @Success 200 {object} todayChallengeResponse
// @Failure 400 {object} errResponse
// @Security UserAuth
// @Router /challenges/today [get]
func (h *Handler) todayChallenge(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	today, err := h.services.Challenges.Today(c.Request.Context(), userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOutOfCampaign):
			errorResponse(c, http.StatusBadRequest, "Nous ne sommes pas dans la période du Carême")
		default:
			logger.Error("get today challenge failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, todayChallengeResponse{
		Day:         today.Day,
		Progression: today.Progression,
		Challenge: challengeResponse{
			ID:          today.Challenge.ID.String(),
			DayNumber:   today.Challenge.DayNumber,
			Title:       today.Challenge.Title,
			Description: today.Challenge.Description,
			Verse:       today.Challenge.Verse,
		},
		Completed: today.Completed,
	})
}

// @Summary Complete today's challenge
// @Tags Challenges
// @Description Marquer le défi du jour comme accompli
// @Produce  json
// @Success 200 {object} response
// @Failure 400 {object} errResponse
// @Security UserAuth
// @Router /challenges/complete [post]
func (h *Handler) completeTodayChallenge(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	if err := h.services.Challenges.CompleteToday(c.Request.Context(), userID, time.Now()); err != nil {
		switch {
		case errors.Is(err, service.ErrOutOfCampaign):
			errorResponse(c, http.StatusBadRequest, "Hors période du Carême")
		case errors.Is(err, service.ErrChallengeAlreadyCompleted):
			errorResponse(c, http.StatusBadRequest, "Déjà accompli aujourd'hui")
		default:
			logger.Error("complete today challenge failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, response{Message: "Défi marqué comme accompli"})
}

type challengeStatusResponse struct {
	ID          string `json:"id"`
	DayNumber   int    `json:"dayNumber"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Verse       string `json:"verse"`
	Completed   bool   `json:"completed"`
	IsCurrent   bool   `json:"isCurrent"`
	IsLocked    bool   `json:"isLocked"`
	IsMissed    bool   `json:"isMissed"`
}

// @Summary All challenges
// @Tags Challenges
// @Description Les 40 défis avec leur statut pour l'utilisateur
// @Produce  json
// @Success 200 {array} challengeStatusResponse
// @Failure 500 {object} errResponse
// @Security UserAuth
// @Router /challenges/all [get]
func (h *Handler) allChallenges(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	statuses, err := h.services.Challenges.GetAll(c.Request.Context(), userID, time.Now())
	if err != nil {
		logger.Error("get all challenges failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		return
	}

	out := make([]challengeStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, challengeStatusResponse{
			ID:          status.ID.String(),
			DayNumber:   status.DayNumber,
			Title:       status.Title,
			Description: status.Description,
			Verse:       status.Verse,
			Completed:   status.Completed,
			IsCurrent:   status.IsCurrent,
			IsLocked:    status.IsLocked,
			IsMissed:    status.IsMissed,
		})
	}

	c.JSON(http.StatusOK, out)
}
