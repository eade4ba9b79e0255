package server

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"labqueue/internal/auth"
	"labqueue/internal/handlers"
)

// SetupRoutes registers every endpoint. Reads are public, writes need X-Telegram-ID.
func (s *Server) SetupRoutes(h *handlers.Handler) {
	r := s.engine
	caller := auth.CallerMiddleware()

	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/users", h.RegisterUserHandler)

	groups := r.Group("/groups")
	{
		groups.GET("/my/:tgId", h.GetMyGroupsHandler)
		groups.POST("", caller, h.CreateGroupHandler)
		groups.POST("/:chatId/members", caller, h.AddMemberHandler)
		groups.PUT("/:chatId/members/:tgId/role", caller, h.SetMemberRoleHandler)
	}

	subjects := r.Group("/subjects")
	{
		subjects.GET("/group/:groupId", h.GetSubjectsHandler)
		subjects.POST("", caller, h.CreateSubjectHandler)
	}

	queues := r.Group("/api/queues")
	{
		queues.GET("/:id", h.GetQueueHandler)
		queues.GET("/current/:subjectId", h.GetCurrentQueueHandler)
		queues.GET("/active/:subjectId", h.GetActiveQueueHandler)
		queues.GET("/history/:subjectId", h.GetQueueHistoryHandler)

		queues.POST("", caller, h.CreateQueueHandler)
		queues.POST("/:id/join", caller, h.JoinQueueHandler)
		queues.POST("/:id/leave", caller, h.LeaveQueueHandler)
		queues.POST("/:id/kick", caller, h.KickHandler)
		queues.POST("/:id/status", caller, h.ChangeStatusHandler)
		queues.POST("/:id/toggle", caller, h.ToggleQueueHandler)
	}

	r.GET("/api/profile/queues", caller, h.GetUserQueuesHandler)
}
