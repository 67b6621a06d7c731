package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskturkey/taskturkey-api/internal/dto"
	apierrors "github.com/taskturkey/taskturkey-api/internal/errors"
	"github.com/taskturkey/taskturkey-api/internal/middleware"
	"github.com/taskturkey/taskturkey-api/internal/services"
	"github.com/taskturkey/taskturkey-api/internal/token"
	"github.com/taskturkey/taskturkey-api/internal/validation"
)

var registerSchema = validation.Schema{
	"email":    {Required: true, Email: true},
	"password": {Required: true, MinLength: 6},
	"name":     {Required: true, MinLength: 2, MaxLength: 50},
}

var loginSchema = validation.Schema{
	"email":    {Required: true, Email: true},
	"password": {Required: true},
}

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *token.Codec
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *token.Codec) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

// Register creates a new user and issues a credential.
func (h *AuthHandler) Register(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeValidation, "Invalid request body")
		return
	}

	if details := validation.Validate(body, registerSchema); len(details) > 0 {
		apierrors.ValidationFailed(c, details)
		return
	}

	email, _ := body["email"].(string)
	password, _ := body["password"].(string)
	name, _ := body["name"].(string)

	user, err := h.authService.Register(services.RegisterInput{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	credential, err := h.tokens.Issue(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Registration failed")
		return
	}

	respondData(c, http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserDTO(*user),
		Token: credential,
	})
}

// Login authenticates a user and issues a credential.
func (h *AuthHandler) Login(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeValidation, "Invalid request body")
		return
	}

	if details := validation.Validate(body, loginSchema); len(details) > 0 {
		apierrors.ValidationFailed(c, details)
		return
	}

	email, _ := body["email"].(string)
	password, _ := body["password"].(string)

	user, err := h.authService.Login(services.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	credential, err := h.tokens.Issue(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Login failed")
		return
	}

	respondData(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserDTO(*user),
		Token: credential,
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, exists := middleware.GetUser(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeAuthRequired, "Authentication required")
		return
	}

	respondData(c, http.StatusOK, gin.H{"user": dto.ToUserDTO(user)})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserExists):
		apierrors.Conflict(c, apierrors.ErrCodeUserExists, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, apierrors.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, apierrors.ErrCodeNotFound, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
