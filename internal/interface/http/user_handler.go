package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/taskhub/taskhub-api/internal/application"
	"github.com/taskhub/taskhub-api/internal/interface/middleware"
	"github.com/taskhub/taskhub-api/pkg/response"
	"github.com/taskhub/taskhub-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// The register/login bodies nest the fields under a "user" key.
type userRequest struct {
	User credentials `json:"user" binding:"required"`
}

type updateDetailsRequest struct {
	UserDetails map[string]any `json:"userDetails" binding:"required"`
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Register(c.Request.Context(), req.User.Username, req.User.Email, req.User.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			response.Message(c, http.StatusConflict, "Email address already exists")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("register failed")
		response.Message(c, http.StatusInternalServerError, "Error registering user")
		return
	}
	response.Token(c, http.StatusCreated, "User registered successfully", sess.Token)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), req.User.Email, req.User.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			h.Logger.WithFields(logrus.Fields{
				"email": req.User.Email,
				"ip":    middleware.ClientIP(c),
			}).Warn("failed login attempt")
			response.Message(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("login failed")
		response.Message(c, http.StatusInternalServerError, "Error logging in")
		return
	}
	response.Token(c, http.StatusOK, "Login successful", sess.Token)
}

// GetUser handles GET /api/users?email=
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Message(c, http.StatusBadRequest, "email query parameter is required")
		return
	}
	u, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("get user failed")
		response.Message(c, http.StatusInternalServerError, "Error getting user details")
		return
	}
	// Password is stripped by the entity's json tags.
	c.JSON(http.StatusOK, u)
}

// UpdateDetails handles PUT /api/users-update/:id
func (h *UserHandler) UpdateDetails(c *gin.Context) {
	var req updateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	callerID := c.GetString(middleware.CtxUserIDKey)
	err := h.Svc.UpdateDetails(c.Request.Context(), callerID, c.Param("id"), req.UserDetails)
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, userapp.ErrForbidden):
		response.Message(c, http.StatusForbidden, "Cannot update another user")
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found")
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("update user details failed")
		response.Message(c, http.StatusInternalServerError, "Error updating user details")
	}
}
