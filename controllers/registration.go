package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"eventhub/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegistrationController handles event registrations.
type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// Register signs the authenticated user up for an event.
func (r *RegistrationController) Register(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
		return
	}

	var user models.User
	if err := r.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}

	var event models.Event
	if err := r.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}

	var count int64
	if err := r.DB.Model(&models.Registration{}).Where("event_id = ?", event.ID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to count registrations"})
		return
	}
	if count >= int64(event.Capacity) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Event is full"})
		return
	}

	var existing models.Registration
	if err := r.DB.Where("user_id = ? AND event_id = ?", user.ID, event.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User already registered for this event"})
		return
	}

	registration := models.Registration{UserID: user.ID, EventID: event.ID}
	if err := r.DB.Create(&registration).Error; err != nil {
		// Unique (user_id, event_id) index rejects racing duplicates.
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User already registered for this event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": fmt.Sprintf("User %s registered for event %s", user.Username, event.Title)})
}

// DeleteRegistration removes one of the caller's registrations by id.
func (r *RegistrationController) DeleteRegistration(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
		return
	}

	var registration models.Registration
	if err := r.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&registration).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Registration not found"})
		return
	}

	if err := r.DB.Delete(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to delete registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Registration cancelled"})
}

// GetMyRegistrations lists the caller's registrations with event details.
func (r *RegistrationController) GetMyRegistrations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
		return
	}

	var user models.User
	if err := r.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}

	var regs []models.Registration
	if err := r.DB.Preload("Event").Where("user_id = ?", user.ID).Find(&regs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch registrations"})
		return
	}

	out := make([]gin.H, 0, len(regs))
	for _, reg := range regs {
		out = append(out, gin.H{
			"id":          reg.ID,
			"event_id":    reg.Event.ID,
			"title":       reg.Event.Title,
			"description": reg.Event.Description,
			"venue":       reg.Event.Venue,
			"price":       reg.Event.Price,
			"date":        reg.Event.Date.Format(models.DateFormat),
			"category":    reg.Event.Category,
			"image_url":   reg.Event.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetAllRegistrations lists every registration with user and event names.
// Admin only.
func (r *RegistrationController) GetAllRegistrations(c *gin.Context) {
	var regs []models.Registration
	if err := r.DB.Preload("User").Preload("Event").Find(&regs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch registrations"})
		return
	}

	out := make([]gin.H, 0, len(regs))
	for _, reg := range regs {
		out = append(out, gin.H{
			"id":          reg.ID,
			"user_id":     reg.UserID,
			"username":    reg.User.Username,
			"event_id":    reg.EventID,
			"event_title": reg.Event.Title,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ExportCSV sends every registration as a CSV file. Admin only.
func (r *RegistrationController) ExportCSV(c *gin.Context) {
	var regs []models.Registration
	if err := r.DB.Preload("User").Preload("Event").Order("id").Find(&regs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch registrations"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=registrations.csv")
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"id", "username", "email", "event_title", "event_date"})
	for _, reg := range regs {
		writer.Write([]string{
			fmt.Sprintf("%d", reg.ID),
			reg.User.Username,
			reg.User.Email,
			reg.Event.Title,
			reg.Event.Date.Format(models.DateFormat),
		})
	}
}
