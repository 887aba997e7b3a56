package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/taskhub/taskhub-api/internal/interface/http"
	"github.com/taskhub/taskhub-api/internal/interface/middleware"
	"github.com/taskhub/taskhub-api/pkg/helpers"
)

// TaskModule wires task HTTP handlers behind the auth gate.
// All task routes require a session token, listing included.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/create-tasks/", m.Handler.Create)
		auth.PUT("/update-task/", m.Handler.Update)
		auth.PUT("/delete/", m.Handler.Delete)
		auth.PUT("/finish/", m.Handler.Finish)
		auth.GET("/tasks", m.Handler.List)
	}
}
