package middleware

import (
	"net/http"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/auth"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/beacon-dev/beacon/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the dashboard session cookie.
const SessionCookie = "token"

// LoginPath is where unauthenticated dashboard requests are sent.
const LoginPath = "/dashboard/login"

type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthRequired gates dashboard routes behind the session cookie. Requests
// without a valid session are redirected to the login page rather than
// rejected, since the dashboard is a browser surface.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(SessionCookie)

		if err != nil || tokenString == "" {
			redirectToLogin(ctx)
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			redirectToLogin(ctx)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			redirectToLogin(ctx)
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			redirectToLogin(ctx)
			return
		}

		userID := uint(userIDFloat)

		var user models.User

		if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			redirectToLogin(ctx)
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, LoginPath)
	ctx.Abort()
}
