package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pelayanandata/portal-go/config"
	"github.com/pelayanandata/portal-go/handlers"
	"github.com/pelayanandata/portal-go/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	r.GET("/skm/questions", h.Request.GetSkmQuestions)
	r.GET("/contents", h.Content.ListPublished)
	r.GET("/contents/:id", h.Content.GetContent)

	r.GET("/ws/requests", h.Ws.StreamRequests)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		requests := auth.Group("/requests")
		{
			requests.POST("", h.Request.CreateRequest)
			requests.GET("", h.Request.ListRequests)
			requests.GET("/stats", middleware.RequireRole(config.DataOfficerRoles...), h.Request.GetStats)
			requests.GET("/:id", h.Request.GetRequest)
			requests.POST("/:id/review", middleware.RequireRole(config.DataOfficerRoles...), h.Request.Review)
			requests.POST("/:id/payment", h.Request.UploadPayment)
			requests.POST("/:id/confirm-payment", middleware.RequireRole(config.DataOfficerRoles...), h.Request.ConfirmPayment)
			requests.POST("/:id/data", middleware.RequireRole(config.DataOfficerRoles...), h.Request.UploadData)
			requests.POST("/:id/skm", h.Request.SubmitSkm)
		}

		contents := auth.Group("/contents")
		{
			contents.POST("", h.Content.CreateContent)
			contents.GET("/mine", h.Content.ListMine)
			contents.PUT("/:id", h.Content.UpdateContent)
			contents.POST("/:id/submit", h.Content.Submit)
			contents.POST("/:id/approve", middleware.RequireRole(config.EditorialAdminRoles...), h.Content.Approve)
			contents.POST("/:id/reject", middleware.RequireRole(config.EditorialAdminRoles...), h.Content.Reject)
			contents.POST("/:id/archive", middleware.RequireRole(config.EditorialAdminRoles...), h.Content.Archive)
		}

		auth.POST("/uploads", handlers.Upload)

		audit := auth.Group("/audit/logs")
		audit.Use(middleware.RequireRole(config.DataOfficerRoles...))
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}
	}
}
