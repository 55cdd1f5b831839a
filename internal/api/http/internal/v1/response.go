package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/compagnon-careme/backend/internal/domain"
)

type response struct {
	Message string `json:"message"`
}

type errResponse struct {
	Error string `json:"error"`
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errResponse{Error: message})
}

// userResponse is the public projection of an account; the password hash and
// the one-time code never leave the service.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
