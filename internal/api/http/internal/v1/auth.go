package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/compagnon-careme/backend/internal/service"
	"github.com/compagnon-careme/backend/pkg/logger"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/verify-otp", h.verifyOTP)
		auth.PUT("/update-profile", h.userIdentityMiddleware, h.updateProfile)
		auth.PUT("/update-password", h.userIdentityMiddleware, h.updatePassword)
		auth.DELETE("/delete-account", h.userIdentityMiddleware, h.deleteAccount)
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,phonenumber"`
	Password string `json:"password" binding:"required,min=6"`
}

type registerResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// @Summary Register
// @Tags Auth
// @Description Créer un compte et envoyer le code OTP par email
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "account info"
// @Success 201 {object} registerResponse
// @Failure 400 {object} errResponse
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	err := h.services.Users.SignUp(c.Request.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			errorResponse(c, http.StatusBadRequest, "Adresse email invalide ou injoignable")
		case errors.Is(err, service.ErrUserAlreadyExists):
			errorResponse(c, http.StatusBadRequest, "Email déjà utilisé")
		case errors.Is(err, service.ErrEmailDeliveryFailed):
			errorResponse(c, http.StatusBadRequest, "L'envoi de l'email de vérification a échoué, veuillez réessayer")
		default:
			logger.Error("register failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		Message: "Utilisateur créé. Veuillez vérifier votre boîte mail pour le code OTP.",
		Email:   req.Email,
	})
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// @Summary Verify OTP
// @Tags Auth
// @Description Activer le compte avec le code reçu par email
// @Accept  json
// @Produce  json
// @Param input body verifyOTPRequest true "email and code"
// @Success 200 {object} response
// @Failure 400,404 {object} errResponse
// @Router /auth/verify-otp [post]
func (h *Handler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := h.services.Users.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "Utilisateur non trouvé")
		case errors.Is(err, service.ErrUserAlreadyVerified):
			errorResponse(c, http.StatusBadRequest, "Compte déjà vérifié")
		case errors.Is(err, service.ErrInvalidOrExpiredCode):
			errorResponse(c, http.StatusBadRequest, "Code invalide ou expiré")
		default:
			logger.Error("verify otp failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, response{Message: "Compte activé avec succès ! Vous pouvez vous connecter."})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

// @Summary Login
// @Tags Auth
// @Description Connexion avec email et mot de passe
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400,403 {object} errResponse
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	result, err := h.services.Users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			errorResponse(c, http.StatusBadRequest, "Email ou mot de passe incorrect")
		case errors.Is(err, service.ErrUserNotVerified):
			errorResponse(c, http.StatusForbidden, "Votre compte n'est pas encore activé. Vérifiez vos mails.")
		default:
			logger.Error("login failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Message: "Connexion réussie",
		Token:   result.Token,
		User:    newUserResponse(result.User),
	})
}

type updateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,phonenumber"`
}

type updateProfileResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// @Summary Update profile
// @Tags Auth
// @Description Mise à jour partielle du profil, les champs vides sont ignorés
// @Accept  json
// @Produce  json
// @Param input body updateProfileRequest true "profile fields"
// @Success 200 {object} updateProfileResponse
// @Failure 400,404 {object} errResponse
// @Security UserAuth
// @Router /auth/update-profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	user, err := h.services.Users.UpdateProfile(c.Request.Context(), userID, service.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "Utilisateur non trouvé")
		case errors.Is(err, service.ErrUserAlreadyExists):
			errorResponse(c, http.StatusBadRequest, "Cet email est déjà utilisé par un autre compte.")
		default:
			logger.Error("update profile failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, updateProfileResponse{
		Message: "Profil mis à jour avec succès !",
		User:    newUserResponse(user),
	})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// @Summary Update password
// @Tags Auth
// @Description Remplacer le mot de passe après vérification de l'actuel
// @Accept  json
// @Produce  json
// @Param input body updatePasswordRequest true "passwords"
// @Success 200 {object} response
// @Failure 400,404 {object} errResponse
// @Security UserAuth
// @Router /auth/update-password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := h.services.Users.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "Utilisateur non trouvé")
		case errors.Is(err, service.ErrInvalidCredentials):
			errorResponse(c, http.StatusBadRequest, "Le mot de passe actuel est incorrect.")
		default:
			logger.Error("update password failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, response{Message: "Mot de passe mis à jour avec succès !"})
}

// @Summary Delete account
// @Tags Auth
// @Description Supprimer le compte et toutes ses données de progression
// @Produce  json
// @Success 200 {object} response
// @Failure 404 {object} errResponse
// @Security UserAuth
// @Router /auth/delete-account [delete]
func (h *Handler) deleteAccount(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Token invalide")
		return
	}

	if err := h.services.Users.DeleteAccount(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "Utilisateur non trouvé.")
		default:
			logger.Error("delete account failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, "Erreur serveur")
		}
		return
	}

	c.JSON(http.StatusOK, response{Message: "Compte et données associés supprimés avec succès."})
}
