package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/taskhub-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	logger     *logrus.Logger
	mongoDB    *mongo.Database
	jwtManager *helpers.JWTManager
)

func SetLogger(l *logrus.Logger)    { logger = l }
func GetLogger() *logrus.Logger     { return logger }
func SetMongoDB(db *mongo.Database) { mongoDB = db }
func GetMongoDB() *mongo.Database   { return mongoDB }
func SetJWT(m *helpers.JWTManager)  { jwtManager = m }
func GetJWT() *helpers.JWTManager   { return jwtManager }
