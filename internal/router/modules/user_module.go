package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/taskhub/taskhub-api/internal/interface/http"
	"github.com/taskhub/taskhub-api/internal/interface/middleware"
	"github.com/taskhub/taskhub-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and the auth gate into routes.
// Public: POST /api/users/register, POST /api/users/login
// Protected: GET /api/users, PUT /api/users-update/:id
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/register", m.Handler.Register)
	rg.POST("/users/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/users", m.Handler.GetUser)
		auth.PUT("/users-update/:id", m.Handler.UpdateDetails)
	}
}
