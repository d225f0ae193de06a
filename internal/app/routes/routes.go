package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/controllers"
	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// --- Student routes: reads need a valid token, mutations need admin ---
	students := api.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		students.GET("", studentController.ListStudents)
		students.GET("/search", studentController.SearchStudents)

		adminOnly := students.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminOnly.POST("/add", studentController.AddStudent)
			adminOnly.PUT("/update/:studentId", studentController.UpdateStudent)
			adminOnly.DELETE("/delete/:studentId", studentController.DeleteStudent)
		}
	}
}
