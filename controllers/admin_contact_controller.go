package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akwaflow/website/models"
	"github.com/akwaflow/website/utils"
)

// AdminContactController exposes the inbox side of the admin panel: list,
// mark-read and delete for contact inquiries.
type AdminContactController struct {
	db *gorm.DB
}

// NewAdminContactController creates a new AdminContactController instance.
func NewAdminContactController(db *gorm.DB) *AdminContactController {
	return &AdminContactController{db: db}
}

// List returns every contact, newest first.
func (a *AdminContactController) List(ctx *gin.Context) {
	var contacts []models.Contact
	if err := a.db.Order("date_created DESC").Find(&contacts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to list contacts")
		return
	}
	utils.Success(ctx, gin.H{"contacts": contacts})
}

// MarkRead flips the read flag to true. Marking an already-read contact is a
// no-op success.
func (a *AdminContactController) MarkRead(ctx *gin.Context) {
	if err := a.db.Model(&models.Contact{}).
		Where("id = ?", ctx.Param("id")).
		Update("read", true).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to mark contact read")
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/contacts")
}

// Delete hard-deletes a contact by id.
func (a *AdminContactController) Delete(ctx *gin.Context) {
	if err := a.db.Where("id = ?", ctx.Param("id")).Delete(&models.Contact{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to delete contact")
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/contacts")
}
