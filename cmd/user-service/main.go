package main

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/config"
	"github.com/freelancenexus/nexus-go/src/db"
	"github.com/freelancenexus/nexus-go/src/handlers"
	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/middleware"
	"github.com/freelancenexus/nexus-go/src/mq"
	"github.com/freelancenexus/nexus-go/src/repositories"
	"github.com/freelancenexus/nexus-go/src/routes"
	"github.com/freelancenexus/nexus-go/src/services"
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

	var events services.EventPublisher
	if publisher, err := mq.NewPublisher(config.MQURL); err != nil {
		logger.WithError(err).Warn("Broker unavailable, events disabled")
	} else {
		events = publisher
		defer publisher.Close()
	}

	svc := services.New(services.Deps{
		Repos:  repos,
		Events: events,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	routes.RegisterUserRoutes(r, handlers.New(svc, nil))

	logger.WithField("port", config.ServerPort).Info("Starting user service")
	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.WithError(err).Fatal("Failed to start user service")
	}
}
