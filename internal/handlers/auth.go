package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/beacon-dev/beacon/db"
	"github.com/beacon-dev/beacon/internal/auth"
	"github.com/beacon-dev/beacon/internal/middleware"
	"github.com/beacon-dev/beacon/internal/models"
	"github.com/beacon-dev/beacon/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type RegisterRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=8"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

// LoginPage returns the branding payload the login form renders with.
func LoginPage(ctx *gin.Context) {
	settings, err := models.GetSiteSettings(db.DB)

	if err != nil {
		log.Printf("Failed to load site settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"settings": newSettingsView(settings)})
}

// Login checks credentials, establishes the session cookie, and redirects to
// the dashboard. Bad credentials re-render the form with an inline error.
func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusOK, gin.H{"error": "Email and password are required."})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusOK, gin.H{"error": "Email and password are required."})
		return
	}

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"error": "Invalid email or password."})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusOK, gin.H{"error": "Invalid email or password."})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, 60*60*24*7)

	ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout destroys the session and returns the operator to the login page.
func Logout(ctx *gin.Context) {
	setSessionCookie(ctx, "", -1)

	ctx.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// Register bootstraps the first operator account. Once any user exists the
// endpoint refuses; additional operators are seeded out of band.
func Register(ctx *gin.Context) {
	var count int64

	if err := db.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Database error when counting users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if count > 0 {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Registration is closed"})
		return
	}

	var req RegisterRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
