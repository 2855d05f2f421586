package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akwaflow/website/models"
	"github.com/akwaflow/website/utils"
)

// BlogController serves the public, read-only blog endpoints. Unpublished
// posts are never visible here, including by direct id lookup.
type BlogController struct {
	db *gorm.DB
}

// NewBlogController creates a new BlogController instance.
func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{db: db}
}

// Home returns the 3 most recently created published posts for the landing
// page.
func (b *BlogController) Home(ctx *gin.Context) {
	var posts []models.Post
	if err := b.db.Where("published = ?", true).
		Order("date_created DESC").
		Limit(3).
		Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to load posts")
		return
	}
	utils.Success(ctx, gin.H{"posts": posts})
}

// GetPost returns a published post by id, or redirects to the landing page
// when the id is absent or the post is unpublished.
func (b *BlogController) GetPost(ctx *gin.Context) {
	var post models.Post
	err := b.db.Where("id = ? AND published = ?", ctx.Param("id"), true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Redirect(http.StatusFound, "/")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load post")
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// Feed returns every published post, newest first, as a JSON object keyed by
// derived slug. Posts with colliding slugs overwrite earlier entries.
func (b *BlogController) Feed(ctx *gin.Context) {
	var posts []models.Post
	if err := b.db.Where("published = ?", true).
		Order("date_created DESC").
		Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load posts")
		return
	}

	feed := make(map[string]gin.H, len(posts))
	for _, post := range posts {
		category := post.Category
		if category == "" {
			category = "General"
		}
		image := post.Image
		if image == "" {
			image = "flows.jpg"
		}
		feed[utils.SlugFromTitle(post.Title)] = gin.H{
			"id":          post.ID,
			"title":       post.Title,
			"description": utils.PreviewFromContent(post.Content),
			"category":    category,
			"image":       image,
			"date":        post.DateCreated.Format("2006-01-02"),
			"read_time":   utils.ReadTime(post.Content),
		}
	}

	ctx.JSON(http.StatusOK, feed)
}
