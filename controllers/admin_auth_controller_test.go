package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwaflow/website/models"
)

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _, _ := newTestServer(t)

	wrongPassword := doRequest(r, formRequest("/admin/login", url.Values{
		"username": {"admin"}, "password": {"nope"},
	}, nil))
	unknownUser := doRequest(r, formRequest("/admin/login", url.Values{
		"username": {"mallory"}, "password": {"nope"},
	}, nil))

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// Identical bodies: no username enumeration.
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
}

func TestLoginSuccessGrantsAdminAccess(t *testing.T) {
	r, _, _ := newTestServer(t)
	cookies := loginAdmin(t, r)

	w := doRequest(r, getRequest("/admin", cookies))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	r, _, _ := newTestServer(t)
	cookies := loginAdmin(t, r)

	w := doRequest(r, getRequest("/admin/logout", cookies))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Result().Header.Get("Location"))

	// The refreshed cookie no longer authenticates.
	w = doRequest(r, getRequest("/admin", w.Result().Cookies()))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Result().Header.Get("Location"))
}

func TestAnonymousAdminRoutesRedirectToLogin(t *testing.T) {
	r, _, _ := newTestServer(t)

	paths := []string{
		"/admin",
		"/admin/posts",
		"/admin/posts/new",
		"/admin/posts/edit/1",
		"/admin/contacts",
	}
	for _, path := range paths {
		w := doRequest(r, getRequest(path, nil))
		assert.Equal(t, http.StatusFound, w.Code, "path %s", path)
		assert.Equal(t, "/admin/login", w.Result().Header.Get("Location"), "path %s", path)
	}
}

func TestAnonymousDeletePerformsNoMutation(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedPost(t, db, models.Post{Title: "Keep", Content: "body", Published: true, DateCreated: at(1)})

	w := doRequest(r, getRequest("/admin/posts/delete/1", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Result().Header.Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "redirect must not delete anything")
}

func TestDashboardCounters(t *testing.T) {
	r, db, _ := newTestServer(t)
	seedPost(t, db, models.Post{Title: "A", Content: "body", Published: true, DateCreated: at(1)})
	seedPost(t, db, models.Post{Title: "B", Content: "body", Published: false, DateCreated: at(2)})
	require.NoError(t, db.Create(&models.Contact{Name: "n", Email: "e", Message: "m", Read: false}).Error)
	require.NoError(t, db.Create(&models.Contact{Name: "n", Email: "e", Message: "m", Read: true}).Error)

	cookies := loginAdmin(t, r)
	w := doRequest(r, getRequest("/admin", cookies))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			PostCount   int64 `json:"post_count"`
			UnreadCount int64 `json:"unread_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp.Data.PostCount)
	assert.EqualValues(t, 1, resp.Data.UnreadCount)
}
