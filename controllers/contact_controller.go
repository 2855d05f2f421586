package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/middleware"
	"github.com/akwaflow/website/models"
	"github.com/akwaflow/website/utils"
)

// ContactController handles public contact-form submissions. Persistence is
// the authoritative success signal; the notification email is best-effort.
type ContactController struct {
	db  *gorm.DB
	cfg config.AppConfig
}

// NewContactController creates a new ContactController instance.
func NewContactController(db *gorm.DB, cfg config.AppConfig) *ContactController {
	return &ContactController{db: db, cfg: cfg}
}

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Subject string `form:"subject"`
	Message string `form:"message" binding:"required"`
	Phone   string `form:"phone"`
	Company string `form:"company"`
	Service string `form:"service"`
	Urgency string `form:"urgency"`
}

// Submit validates and persists an inquiry, then sends the admin
// notification. An email failure is logged and swallowed; the client still
// sees success as long as the row was written.
func (c *ContactController) Submit(ctx *gin.Context) {
	var form contactForm
	if err := ctx.ShouldBind(&form); err != nil {
		// A chunked body over the global ceiling surfaces here as a bind
		// failure; report the size error, not a validation one.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.Error(ctx, http.StatusRequestEntityTooLarge, 41300, middleware.FileTooLargeMessage)
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Name, email and message are required.",
		})
		return
	}

	contact := models.Contact{
		Name:    form.Name,
		Email:   form.Email,
		Subject: composeSubject(form.Service, form.Urgency, form.Subject),
		Message: composeMessage(form.Message, form.Phone, form.Company),
	}

	if err := c.db.Create(&contact).Error; err != nil {
		utils.Sugar.Errorf("failed to store contact: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Something went wrong. Please try again later.",
		})
		return
	}

	if err := utils.SendContactNotification(c.cfg, contact, form.Phone, form.Company, form.Service, form.Urgency); err != nil {
		utils.Sugar.Warnf("contact notification email failed: %v", err)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your inquiry! We will get back to you soon.",
	})
}

// composeSubject joins "Service: {service}", "Timeline: {urgency}" and the
// user subject with " | ", omitting absent parts entirely. When service and
// urgency are both absent the user subject passes through unchanged.
func composeSubject(service, urgency, subject string) string {
	if service == "" && urgency == "" {
		return subject
	}
	parts := make([]string, 0, 3)
	if service != "" {
		parts = append(parts, "Service: "+service)
	}
	if urgency != "" {
		parts = append(parts, "Timeline: "+urgency)
	}
	if subject != "" {
		parts = append(parts, subject)
	}
	return strings.Join(parts, " | ")
}

// composeMessage appends phone and company lines to the message, each only
// when present.
func composeMessage(message, phone, company string) string {
	if phone != "" {
		message += "\n\nPhone: " + phone
	}
	if company != "" {
		message += "\nCompany: " + company
	}
	return message
}
