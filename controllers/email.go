package controllers

import (
	"net/http"

	"eventhub/utils/email"

	"github.com/gin-gonic/gin"
)

// EmailController exposes the direct notification endpoints.
type EmailController struct {
	Mailer email.Mailer
}

func NewEmailController(mailer email.Mailer) *EmailController {
	return &EmailController{Mailer: mailer}
}

type confirmationRequest struct {
	UserName      string  `json:"user_name" binding:"required"`
	UserEmail     string  `json:"user_email" binding:"required"`
	EventName     string  `json:"event_name" binding:"required"`
	EventDate     string  `json:"event_date"`
	EventVenue    string  `json:"event_venue"`
	EventCategory string  `json:"event_category"`
	EventPrice    float64 `json:"event_price"`
}

type cancellationRequest struct {
	Users      []email.Recipient `json:"users" binding:"required"`
	EventName  string            `json:"event_name" binding:"required"`
	EventDate  string            `json:"event_date"`
	EventVenue string            `json:"event_venue"`
}

// SendConfirmation sends a registration confirmation email.
func (e *EmailController) SendConfirmation(c *gin.Context) {
	var req confirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	err := e.Mailer.SendConfirmation(req.UserName, req.UserEmail, req.EventName, req.EventDate, req.EventVenue, req.EventCategory, req.EventPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

// SendCancellation sends one cancellation email per listed user.
func (e *EmailController) SendCancellation(c *gin.Context) {
	var req cancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := e.Mailer.SendCancellation(req.Users, req.EventName, req.EventDate, req.EventVenue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send cancellation emails"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cancellation emails sent successfully"})
}
