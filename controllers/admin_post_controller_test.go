package controllers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwaflow/website/config"
	"github.com/akwaflow/website/models"
)

func TestCreatePostWithImage(t *testing.T) {
	r, db, cfg := newTestServer(t)
	cookies := loginAdmin(t, r)

	req := multipartRequest(t, "/admin/posts/new", map[string]string{
		"title":     "Launch",
		"content":   "<p>Body</p>",
		"category":  "News",
		"published": "on",
	}, "cover photo.PNG", []byte("fake image bytes"), cookies)

	w := doRequest(r, req)
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	assert.Equal(t, "/admin/posts", w.Result().Header.Get("Location"))

	var post models.Post
	require.NoError(t, db.First(&post, "title = ?", "Launch").Error)
	assert.True(t, post.Published)
	assert.Regexp(t, `^[0-9a-f]{8}_cover_photo\.PNG$`, post.Image)

	_, err := os.Stat(filepath.Join(cfg.UploadDir, post.Image))
	assert.NoError(t, err, "uploaded file must exist on disk")
}

func TestCreatePostWithoutPublishedFlag(t *testing.T) {
	r, db, _ := newTestServer(t)
	cookies := loginAdmin(t, r)

	req := multipartRequest(t, "/admin/posts/new", map[string]string{
		"title":   "Draft",
		"content": "<p>Body</p>",
	}, "", nil, cookies)
	w := doRequest(r, req)
	require.Equal(t, http.StatusFound, w.Code)

	var post models.Post
	require.NoError(t, db.First(&post, "title = ?", "Draft").Error)
	assert.False(t, post.Published)

	// Unpublished immediately invisible to the public surface.
	pub := doRequest(r, getRequest("/blog/1", nil))
	assert.Equal(t, http.StatusFound, pub.Code)
}

func TestCreatePostRejectsBadExtension(t *testing.T) {
	r, db, cfg := newTestServer(t)
	cookies := loginAdmin(t, r)

	req := multipartRequest(t, "/admin/posts/new", map[string]string{
		"title":   "Nope",
		"content": "<p>Body</p>",
	}, "my photo.EXE", []byte("mz"), cookies)

	w := doRequest(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")

	// Aborted entirely: no DB write, nothing on disk.
	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpdateRetainsImageWithoutNewFile(t *testing.T) {
	r, db, _ := newTestServer(t)
	original := seedPost(t, db, models.Post{
		Title: "Old", Content: "old", Category: "Tech",
		Image: "abcd1234_keep.png", Published: true, DateCreated: at(1),
	})
	cookies := loginAdmin(t, r)

	req := multipartRequest(t, "/admin/posts/edit/1", map[string]string{
		"title":         "New Title",
		"content":       "new body",
		"category":      "Tech",
		"current_image": "abcd1234_keep.png",
		// no published field: unpublishes the post
	}, "", nil, cookies)

	w := doRequest(r, req)
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	var post models.Post
	require.NoError(t, db.First(&post, original.ID).Error)
	assert.Equal(t, "New Title", post.Title)
	assert.Equal(t, "abcd1234_keep.png", post.Image)
	assert.False(t, post.Published)
	assert.Equal(t, at(1), post.DateCreated.UTC(), "date_created is immutable")
}

func TestUpdateRejectsBadExtensionWithoutWrite(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedPost(t, db, models.Post{
		Title: "Old", Content: "old", Image: "keep.png", Published: true, DateCreated: at(1),
	})
	cookies := loginAdmin(t, r)

	req := multipartRequest(t, "/admin/posts/edit/1", map[string]string{
		"title":         "Changed",
		"content":       "changed",
		"current_image": "keep.png",
	}, "virus.exe", []byte("mz"), cookies)

	w := doRequest(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var post models.Post
	require.NoError(t, db.First(&post, "id = ?", 1).Error)
	assert.Equal(t, "Old", post.Title, "aborted update must not touch the row")
	assert.Equal(t, "keep.png", post.Image)
}

func TestDeletePost(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedPost(t, db, models.Post{Title: "Doomed", Content: "body", Published: true, DateCreated: at(1)})
	cookies := loginAdmin(t, r)

	w := doRequest(r, getRequest("/admin/posts/delete/1", cookies))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/posts", w.Result().Header.Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestOversizedBodyRejectedBeforeHandler(t *testing.T) {
	r, db, _ := newTestServer(t)
	cookies := loginAdmin(t, r)

	req := multipartRequest(t, "/admin/posts/new", map[string]string{
		"title":   "Big",
		"content": "body",
	}, "a.png", []byte("small"), cookies)
	// Declare a body above the global ceiling; the limiter must reject it
	// without reading anything.
	req.ContentLength = config.MaxContentLength + 1

	w := doRequest(r, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
