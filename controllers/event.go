package controllers

import (
	"net/http"
	"time"

	"eventhub/models"
	"eventhub/utils/email"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventController handles event CRUD and the cascading delete.
type EventController struct {
	DB     *gorm.DB
	Mailer email.Mailer
	Logger *logrus.Logger
}

func NewEventController(db *gorm.DB, mailer email.Mailer, logger *logrus.Logger) *EventController {
	return &EventController{DB: db, Mailer: mailer, Logger: logger}
}

type createEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Venue       string  `json:"venue" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category"`
}

type updateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Venue       *string  `json:"venue"`
	Capacity    *int     `json:"capacity"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
}

func eventJSON(e models.Event) gin.H {
	return gin.H{
		"id":            e.ID,
		"title":         e.Title,
		"description":   e.Description,
		"capacity":      e.Capacity,
		"venue":         e.Venue,
		"price":         e.Price,
		"image_url":     e.ImageURL,
		"date":          e.Date.Format(models.DateFormat),
		"category":      e.Category,
		"registrations": len(e.Registrations),
	}
}

// CreateEvent persists a new event. Admin only.
func (e *EventController) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input"})
		return
	}

	date, err := time.Parse(models.DateFormat, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Capacity:    req.Capacity,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Date:        date,
		Category:    req.Category,
	}
	if event.Category == "" {
		event.Category = "General"
	}

	if err := e.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Event created", "event_id": event.ID})
}

// GetEvents lists all events with their registration counts.
func (e *EventController) GetEvents(c *gin.Context) {
	var events []models.Event
	if err := e.DB.Preload("Registrations").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch events"})
		return
	}

	out := make([]gin.H, 0, len(events))
	for _, event := range events {
		out = append(out, eventJSON(event))
	}
	c.JSON(http.StatusOK, out)
}

// GetEvent returns a single event with its registration count.
func (e *EventController) GetEvent(c *gin.Context) {
	var event models.Event
	if err := e.DB.Preload("Registrations").First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, eventJSON(event))
}

// UpdateEvent overwrites any fields present in the request. Admin only.
func (e *EventController) UpdateEvent(c *gin.Context) {
	var event models.Event
	if err := e.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input"})
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Date != nil {
		date, err := time.Parse(models.DateFormat, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		event.Date = date
	}

	if err := e.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Event updated", "event_id": event.ID})
}

// DeleteEvent removes an event, cancels its registrations and emails the
// affected users. Admin only.
//
// An event with no registrations is reported as not found and left in
// place; this mirrors the platform's established delete flow, which only
// operates on events that have registrations to cancel.
func (e *EventController) DeleteEvent(c *gin.Context) {
	var regs []models.Registration
	if err := e.DB.Preload("User").Where("event_id = ?", c.Param("id")).Find(&regs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch registrations"})
		return
	}
	if len(regs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "No registrations found for this event"})
		return
	}

	var event models.Event
	if err := e.DB.First(&event, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}

	recipients := make([]email.Recipient, 0, len(regs))
	for _, reg := range regs {
		recipients = append(recipients, email.Recipient{
			Name:  reg.User.Username,
			Email: reg.User.Email,
		})
	}

	// Mail failure is non-fatal: the deletion still goes through.
	if err := e.Mailer.SendCancellation(recipients, event.Title, event.Date.Format(models.DateFormat), event.Venue); err != nil {
		e.Logger.Errorf("Failed to send cancellation emails for event %d: %v", event.ID, err)
	}

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.Registration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Event deleted"})
}
