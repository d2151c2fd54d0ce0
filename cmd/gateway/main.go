package main

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/config"
	"github.com/freelancenexus/nexus-go/src/gateway"
	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/middleware"
)

func main() {
	config.LoadConfig()
	logger.Init()
	middleware.Init()

	gin.SetMode(gin.ReleaseMode)
	r, err := gateway.NewRouter([]gateway.Route{
		{Prefix: "/register", Backend: config.UserServiceURL},
		{Prefix: "/login", Backend: config.UserServiceURL},
		{Prefix: "/logout", Backend: config.UserServiceURL},
		{Prefix: "/users", Backend: config.UserServiceURL},
		{Prefix: "/freelancers", Backend: config.FreelancerServiceURL},
		{Prefix: "/portfolio", Backend: config.FreelancerServiceURL},
		{Prefix: "/projects", Backend: config.ProjectServiceURL},
		{Prefix: "/proposals", Backend: config.ProjectServiceURL},
		{Prefix: "/recommendations", Backend: config.ProjectServiceURL},
		{Prefix: "/payments", Backend: config.PaymentServiceURL},
		{Prefix: "/notifications", Backend: config.NotificationServiceURL},
		{Prefix: "/ws", Backend: config.NotificationServiceURL},
	})
	if err != nil {
		logger.WithError(err).Fatal("Invalid gateway configuration")
	}

	logger.WithField("port", config.ServerPort).Info("Starting gateway")
	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.WithError(err).Fatal("Failed to start gateway")
	}
}
