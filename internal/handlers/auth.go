package handlers

import (
	"errors"
	"net/http"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService     *services.AuthService
	progressTracker *services.ProgressTracker
}

func NewAuthHandler(authService *services.AuthService, progressTracker *services.ProgressTracker) *AuthHandler {
	return &AuthHandler{authService: authService, progressTracker: progressTracker}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Dr. David"`
	Email    string `json:"email" binding:"required,email" example:"david@medflash.ai"`
	Username string `json:"username" binding:"required,min=3,max=100" example:"drdavid"`
	Password string `json:"password" binding:"required,min=4" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"drdavid"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// Register godoc
// @Summary      Register a new student
// @Description  Create a new student account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Username, req.Password)
	if errors.Is(err, services.ErrUserExists) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "that username already exists, try another one"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "registration successful, you can now log in"})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate a student and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "login is temporarily unavailable"})
		return
	}

	switch status {
	case services.AuthAuthenticated:
		user, err := h.authService.GetUser(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "login is temporarily unavailable"})
			return
		}
		c.SetCookie(SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
		c.JSON(http.StatusOK, LoginResponse{Username: user.Username, Name: user.Name, Token: token})
	case services.AuthRejected:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "incorrect username or password"})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
	}
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

type ProfileResponse struct {
	Username string            `json:"username"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Progress []SubjectProgress `json:"progress"`
}

// Me godoc
// @Summary      Current profile
// @Description  Return the logged-in student's profile and per-subject progress
// @Tags         auth
// @Produce      json
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString("username")

	user, err := h.authService.GetUser(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		return
	}

	overview := h.progressTracker.Overview(c.Request.Context(), username)
	progress := make([]SubjectProgress, 0, len(overview))
	for _, p := range overview {
		progress = append(progress, p)
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Progress: progress,
	})
}
