package main

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/config"
	"github.com/freelancenexus/nexus-go/src/db"
	"github.com/freelancenexus/nexus-go/src/handlers"
	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/middleware"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/routes"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/storage"
)

func main() {
	config.LoadConfig()
	logger.Init()
	middleware.Init()

	db.Init()
	if err := db.Migrate(db.DB); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	repos := repositories.New(db.DB)

	var store storage.ObjectStore
	if s, err := storage.NewMinioStore(); err != nil {
		logger.WithError(err).Warn("Object store unavailable, attachments disabled")
	} else {
		store = s
	}

	svc := services.New(services.Deps{
		Repos: repos,
		Store: store,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	routes.RegisterFreelancerRoutes(r, handlers.New(svc, nil))

	logger.WithField("port", config.ServerPort).Info("Starting freelancer service")
	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.WithError(err).Fatal("Failed to start freelancer service")
	}
}
