package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akwaflow/website/middleware"
	"github.com/akwaflow/website/models"
	"github.com/akwaflow/website/utils"
)

// loginFailedMessage is deliberately identical for unknown usernames and
// wrong passwords so the endpoint cannot be used for username enumeration.
const loginFailedMessage = "Invalid credentials"

// AdminAuthController manages the admin session lifecycle.
type AdminAuthController struct {
	db *gorm.DB
}

// NewAdminAuthController creates a new AdminAuthController instance.
func NewAdminAuthController(db *gorm.DB) *AdminAuthController {
	return &AdminAuthController{db: db}
}

// LoginForm reports the current session state for the login page.
func (a *AdminAuthController) LoginForm(ctx *gin.Context) {
	session := sessions.Default(ctx)
	admin, _ := session.Get(middleware.SessionAdminKey).(bool)
	utils.Success(ctx, gin.H{"authenticated": admin})
}

// Login checks the submitted credentials against the seeded admin row and
// sets the session flag on success.
func (a *AdminAuthController) Login(ctx *gin.Context) {
	var form struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "username and password are required")
		return
	}

	var user models.AdminUser
	if err := a.db.Where("username = ?", form.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusUnauthorized, 40110, loginFailedMessage)
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to check credentials")
		return
	}

	if !utils.CheckPassword(user.Password, form.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40110, loginFailedMessage)
		return
	}

	session := sessions.Default(ctx)
	session.Set(middleware.SessionAdminKey, true)
	if err := session.Save(); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to save session")
		return
	}

	ctx.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session flag and returns to the login form.
func (a *AdminAuthController) Logout(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Delete(middleware.SessionAdminKey)
	if err := session.Save(); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to save session")
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/login")
}

// Dashboard returns the admin landing counters.
func (a *AdminAuthController) Dashboard(ctx *gin.Context) {
	var postCount, unreadCount int64
	if err := a.db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to count posts")
		return
	}
	if err := a.db.Model(&models.Contact{}).Where("read = ?", false).Count(&unreadCount).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to count contacts")
		return
	}
	utils.Success(ctx, gin.H{
		"post_count":   postCount,
		"unread_count": unreadCount,
	})
}
