package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/middleware"
	"github.com/akwaflow/website/models"
	"github.com/akwaflow/website/utils"
)

const invalidImageMessage = "Invalid file type. Please upload PNG, JPG, JPEG, GIF, or WEBP files only."

// AdminPostController manages authenticated CRUD for posts, including the
// optional image upload on create and edit.
type AdminPostController struct {
	db  *gorm.DB
	cfg config.AppConfig
}

// NewAdminPostController creates a new AdminPostController instance.
func NewAdminPostController(db *gorm.DB, cfg config.AppConfig) *AdminPostController {
	return &AdminPostController{db: db, cfg: cfg}
}

// List returns every post, published or not, newest first.
func (a *AdminPostController) List(ctx *gin.Context) {
	var posts []models.Post
	if err := a.db.Order("date_created DESC").Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to list posts")
		return
	}
	utils.Success(ctx, gin.H{"posts": posts})
}

// NewForm returns the empty create form.
func (a *AdminPostController) NewForm(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"post": nil})
}

// Create stores a new post from the multipart form. A supplied image that
// fails the extension check aborts the whole operation with no DB write.
func (a *AdminPostController) Create(ctx *gin.Context) {
	title := ctx.PostForm("title")
	content := ctx.PostForm("content")
	if title == "" || content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40050, "title and content are required")
		return
	}
	_, published := ctx.GetPostForm("published")

	image, ok := a.storeUploadedImage(ctx, "")
	if !ok {
		return
	}

	post := models.Post{
		Title:     title,
		Content:   content,
		Category:  ctx.PostForm("category"),
		Image:     image,
		Published: published,
	}
	if err := a.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to create post")
		return
	}

	ctx.Redirect(http.StatusFound, "/admin/posts")
}

// EditForm returns the post to edit, or redirects to the listing when the id
// is unknown.
func (a *AdminPostController) EditForm(ctx *gin.Context) {
	var post models.Post
	if err := a.db.First(&post, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Redirect(http.StatusFound, "/admin/posts")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load post")
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// Update rewrites a post from the multipart form. When no new image is
// supplied the filename from the hidden current_image field is retained;
// date_created is never touched.
func (a *AdminPostController) Update(ctx *gin.Context) {
	title := ctx.PostForm("title")
	content := ctx.PostForm("content")
	if title == "" || content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40051, "title and content are required")
		return
	}
	_, published := ctx.GetPostForm("published")

	image, ok := a.storeUploadedImage(ctx, ctx.PostForm("current_image"))
	if !ok {
		return
	}

	updates := map[string]interface{}{
		"title":     title,
		"content":   content,
		"category":  ctx.PostForm("category"),
		"image":     image,
		"published": published,
	}
	if err := a.db.Model(&models.Post{}).
		Where("id = ?", ctx.Param("id")).
		Updates(updates).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50053, "failed to update post")
		return
	}

	ctx.Redirect(http.StatusFound, "/admin/posts")
}

// Delete hard-deletes a post by id.
func (a *AdminPostController) Delete(ctx *gin.Context) {
	if err := a.db.Where("id = ?", ctx.Param("id")).Delete(&models.Post{}).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50054, "failed to delete post")
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/posts")
}

// storeUploadedImage handles the optional multipart image field. It returns
// the filename to store and true, or writes the error response and returns
// false. fallback is used when no file was supplied.
func (a *AdminPostController) storeUploadedImage(ctx *gin.Context, fallback string) (string, bool) {
	fh, err := ctx.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.Error(ctx, http.StatusRequestEntityTooLarge, 41300, middleware.FileTooLargeMessage)
			return "", false
		}
		// No file field in the form: keep the fallback.
		return fallback, true
	}
	if fh.Filename == "" {
		return fallback, true
	}
	if !utils.AllowedImageName(fh.Filename) {
		utils.Error(ctx, http.StatusBadRequest, 40052, invalidImageMessage)
		return "", false
	}
	name, err := utils.SaveImage(fh, a.cfg.UploadDir)
	if err != nil {
		utils.Sugar.Errorf("failed to save upload: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50055, "failed to save uploaded file")
		return "", false
	}
	return name, true
}
