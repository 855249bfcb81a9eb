package controllers

import (
	"eventhub/config"
	"eventhub/middlewares"
	"eventhub/utils/email"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RegisterRoutes wires all controllers onto the router.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer email.Mailer, logger *logrus.Logger) {
	authCtrl := NewAuthController(db, cfg)
	eventCtrl := NewEventController(db, mailer, logger)
	regCtrl := NewRegistrationController(db)
	emailCtrl := NewEmailController(mailer)

	// Public routes
	r.POST("/signup", authCtrl.Signup)
	r.POST("/login", authCtrl.Login)
	r.GET("/events", eventCtrl.GetEvents)
	r.GET("/event/:id", eventCtrl.GetEvent)
	r.POST("/send-confirmation", emailCtrl.SendConfirmation)
	r.POST("/send-cancellation", emailCtrl.SendCancellation)

	// Protected routes using auth middleware
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	auth.POST("/logout", authCtrl.Logout)
	auth.GET("/test-protected", authCtrl.TestProtected)
	auth.POST("/events/:id/register", regCtrl.Register)
	auth.DELETE("/registrations/:id", regCtrl.DeleteRegistration)
	auth.GET("/my-registrations", regCtrl.GetMyRegistrations)

	// Admin routes additionally re-check the stored admin flag
	admin := auth.Group("/")
	admin.Use(middlewares.AdminMiddleware(db))
	admin.GET("/users", authCtrl.GetUsers)
	admin.POST("/events", eventCtrl.CreateEvent)
	admin.PUT("/events/:id", eventCtrl.UpdateEvent)
	admin.DELETE("/events/:id", eventCtrl.DeleteEvent)
	admin.GET("/registrations", regCtrl.GetAllRegistrations)
	admin.GET("/registrations/export", regCtrl.ExportCSV)
}
