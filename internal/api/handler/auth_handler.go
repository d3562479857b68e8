package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miniblog/internal/api/dto"
	"miniblog/internal/api/middleware"
	"miniblog/internal/core/service"
)

type AuthHandler struct {
	users    *service.UserService
	sessions *service.SessionService
	log      *zap.Logger
}

func NewAuthHandler(users *service.UserService, sessions *service.SessionService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// ShowSignup handles GET /signup
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", nil)
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "error", "Username and password are required.")
		c.Redirect(http.StatusSeeOther, "/signup")
		return
	}

	user, err := h.users.Register(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, service.ErrEmptyField):
		setFlash(c, "error", "Username and password are required.")
		c.Redirect(http.StatusSeeOther, "/signup")
	case errors.Is(err, service.ErrUsernameTaken):
		setFlash(c, "error", "Username already taken.")
		c.Redirect(http.StatusSeeOther, "/signup")
	case err != nil:
		h.log.Error("signup failed", zap.Error(err))
		setFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/signup")
	default:
		h.log.Info("user registered", zap.Int64("user_id", user.ID))
		setFlash(c, "success", "Account created! You can now log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "error", "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error("login failed", zap.Error(err))
		}
		setFlash(c, "error", "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		h.log.Error("failed to issue session", zap.Error(err))
		setFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	middleware.SetSessionCookie(c, token)
	setFlash(c, "success", "Logged in successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	setFlash(c, "success", "Logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}
