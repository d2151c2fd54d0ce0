package main

import (
	"context"

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
	"github.com/freelancenexus/nexus-go/src/ws"
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
	hub := ws.NewHub()

	svc := services.New(services.Deps{
		Repos: repos,
		Hub:   hub,
		Email: services.NewLogEmailSender(),
	})

	consumer, err := mq.NewConsumer(config.MQURL, "nexus.notifications",
		mq.RoutingKeyProjectCreated,
		mq.RoutingKeyProposalSubmitted,
		mq.RoutingKeyProposalAccepted,
		mq.RoutingKeyProposalRejected,
		mq.RoutingKeyPaymentCompleted,
		mq.RoutingKeyUserRegistered,
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to broker")
	}
	defer consumer.Close()

	consumer.Handle(mq.RoutingKeyProjectCreated, svc.Notification.HandleProjectCreated)
	consumer.Handle(mq.RoutingKeyProposalSubmitted, svc.Notification.HandleProposalSubmitted)
	consumer.Handle(mq.RoutingKeyProposalAccepted, svc.Notification.HandleProposalAccepted)
	consumer.Handle(mq.RoutingKeyProposalRejected, svc.Notification.HandleProposalRejected)
	consumer.Handle(mq.RoutingKeyPaymentCompleted, svc.Notification.HandlePaymentCompleted)
	consumer.Handle(mq.RoutingKeyUserRegistered, svc.Notification.HandleUserRegistered)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.WithError(err).Fatal("Consumer stopped")
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	routes.RegisterNotificationRoutes(r, handlers.New(svc, hub))

	logger.WithField("port", config.ServerPort).Info("Starting notification service")
	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.WithError(err).Fatal("Failed to start notification service")
	}
}
