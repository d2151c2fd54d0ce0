package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/handlers"
	"github.com/freelancenexus/nexus-go/src/metrics"
	"github.com/freelancenexus/nexus-go/src/middleware"
	"github.com/freelancenexus/nexus-go/src/models"
)

// Common wires the middleware every service carries plus the probes.
func Common(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.GinMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", metrics.Handler())
}

// RegisterProjectRoutes serves the project and proposal lifecycle plus
// the AI endpoints that derive from them.
func RegisterProjectRoutes(r *gin.Engine, h *handlers.Handlers) {
	Common(r)

	r.GET("/projects", h.Project.GetProjects)
	r.GET("/projects/open", h.Project.GetOpenProjects)
	r.GET("/projects/:id", h.Project.GetProjectByID)
	r.GET("/recommendations/:id", h.AI.RecommendProjects)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		projects := auth.Group("/projects")
		{
			projects.POST("", middleware.RequireRole(models.RoleClient), h.Project.CreateProject)
			projects.GET("/mine", h.Project.GetMyProjects)
			projects.PUT("/:id", middleware.RequireRole(models.RoleClient), h.Project.UpdateProject)
			projects.DELETE("/:id", middleware.RequireRole(models.RoleClient), h.Project.DeleteProject)
			projects.PUT("/:id/assign", middleware.RequireRole(models.RoleClient), h.Project.AssignFreelancer)
			projects.PUT("/:id/complete", middleware.RequireRole(models.RoleClient), h.Project.CompleteProject)
			projects.PUT("/:id/cancel", middleware.RequireRole(models.RoleClient), h.Project.CancelProject)

			projects.POST("/:id/proposals", middleware.RequireRole(models.RoleFreelancer), h.Proposal.SubmitProposal)
			projects.GET("/:id/proposals", h.Proposal.GetProposalsByProject)
			projects.GET("/:id/proposals/ranked", middleware.RequireRole(models.RoleClient), h.Proposal.GetRankedProposals)
			projects.GET("/:id/summary", h.AI.SummarizeProject)
		}
		proposals := auth.Group("/proposals")
		{
			proposals.GET("/mine", middleware.RequireRole(models.RoleFreelancer), h.Proposal.GetMyProposals)
			proposals.GET("/:id", h.Proposal.GetProposalByID)
			proposals.PUT("/:id/accept", middleware.RequireRole(models.RoleClient), h.Proposal.AcceptProposal)
			proposals.PUT("/:id/reject", middleware.RequireRole(models.RoleClient), h.Proposal.RejectProposal)
		}
	}
}

func RegisterUserRoutes(r *gin.Engine, h *handlers.Handlers) {
	Common(r)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", middleware.RequireRole(models.RoleAdmin), h.User.GetUsers)
			users.GET("/:id", h.User.GetUserByID)
			users.PUT("/:id", middleware.SelfOrAdmin(), h.User.UpdateUser)
			users.DELETE("/:id", middleware.SelfOrAdmin(), h.User.DeleteUser)
		}
	}
}

func RegisterFreelancerRoutes(r *gin.Engine, h *handlers.Handlers) {
	Common(r)

	r.GET("/freelancers", h.Freelancer.GetProfiles)
	r.GET("/freelancers/:id", h.Freelancer.GetProfileByID)
	r.GET("/freelancers/:id/ratings", h.Freelancer.GetRatings)
	r.GET("/freelancers/:id/portfolio", h.Portfolio.GetItems)
	r.GET("/portfolio/:id", h.Portfolio.GetItem)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		freelancers := auth.Group("/freelancers")
		{
			freelancers.POST("", middleware.RequireRole(models.RoleFreelancer), h.Freelancer.CreateProfile)
			freelancers.GET("/me", middleware.RequireRole(models.RoleFreelancer), h.Freelancer.GetMyProfile)
			freelancers.PUT("/:id", middleware.RequireRole(models.RoleFreelancer), h.Freelancer.UpdateProfile)
			freelancers.DELETE("/:id", middleware.RequireRole(models.RoleFreelancer), h.Freelancer.DeleteProfile)
			freelancers.POST("/:id/ratings", middleware.RequireRole(models.RoleClient), h.Freelancer.AddRating)
			freelancers.POST("/:id/portfolio", middleware.RequireRole(models.RoleFreelancer), h.Portfolio.CreateItem)
		}
		portfolio := auth.Group("/portfolio")
		{
			portfolio.GET("/:id/download", h.Portfolio.GetAttachmentURL)
			portfolio.PUT("/:id", middleware.RequireRole(models.RoleFreelancer), h.Portfolio.UpdateItem)
			portfolio.DELETE("/:id", middleware.RequireRole(models.RoleFreelancer), h.Portfolio.DeleteItem)
		}
	}
}

func RegisterPaymentRoutes(r *gin.Engine, h *handlers.Handlers) {
	Common(r)

	// The gateway posts callbacks unauthenticated.
	r.POST("/payments/callback", h.Payment.PaymentCallback)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		payments := auth.Group("/payments")
		{
			payments.POST("", middleware.RequireRole(models.RoleClient), h.Payment.InitiatePayment)
			payments.POST("/verify/:txn", h.Payment.VerifyPayment)
			payments.GET("/txn/:txn", h.Payment.GetPaymentByTransaction)
			payments.POST("/:id/refund", middleware.RequireRole(models.RoleClient), h.Payment.RefundPayment)
			payments.GET("/mine", h.Payment.GetMyPayments)
			payments.GET("/history/mine", h.Payment.GetMyTransactionHistory)
			payments.GET("/by-project/:id", h.Payment.GetPaymentsByProject)
			payments.GET("/:id", h.Payment.GetPaymentByID)
			payments.GET("/:id/history", h.Payment.GetTransactionHistory)
		}
	}
}

func RegisterNotificationRoutes(r *gin.Engine, h *handlers.Handlers) {
	Common(r)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/notifications", h.WS.NotificationFeed)
		notifications := auth.Group("/notifications")
		{
			notifications.GET("", h.Notification.GetMyNotifications)
			notifications.GET("/unread-count", h.Notification.GetUnreadCount)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
			notifications.PUT("/read-all", h.Notification.MarkAllRead)
		}
	}
}
