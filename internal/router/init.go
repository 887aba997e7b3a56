package router

import (
	"github.com/taskhub/taskhub-api/internal/application"
	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/infrastructure/mongodb"
	handlers "github.com/taskhub/taskhub-api/internal/interface/http"
	"github.com/taskhub/taskhub-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container
// singletons are in place.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	jwt := container.GetJWT()
	db := container.GetMongoDB()

	userSvc := application.NewUserService(mongodb.NewUserRepository(db), jwt, logger)
	taskSvc := application.NewTaskService(mongodb.NewTaskRepository(db), logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt))
}
