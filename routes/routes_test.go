package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yatube/yatube-be/config"
	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/db/upperdb"
	"github.com/yatube/yatube-be/model"
	"github.com/yatube/yatube-be/services"
)

// testApp runs the whole router against a throwaway SQLite database, the
// same way production traffic hits it.
type testApp struct {
	router *gin.Engine
	store  *upperdb.Store
	cache  *services.MemoryPageCache
	cfg    *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(dir, "test.db"),
		MediaDir:      filepath.Join(dir, "media"),
		SessionCookie: "session_id",
		SessionTTL:    time.Hour,
		FeedCacheTTL:  config.DefaultFeedCacheTTL,
	}

	store, err := upperdb.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	require.NoError(t, store.Migrate(context.Background()))

	media, err := services.NewMediaStore(cfg.MediaDir)
	require.NoError(t, err)

	cache := services.NewMemoryPageCache()
	return &testApp{
		router: NewRouter(cfg, store, cache, media),
		store:  store,
		cache:  cache,
		cfg:    cfg,
	}
}

func (app *testApp) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func (app *testApp) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

// createUser inserts a user whose password is always "secret".
func (app *testApp) createUser(t *testing.T, username string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	id, err := app.store.CreateUser(context.Background(), &db.CreateUser{
		Username:     username,
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	return &model.User{Id: id, Username: username}
}

// login runs the real login flow and returns the session cookie it sets.
func (app *testApp) login(t *testing.T, username string) *http.Cookie {
	t.Helper()
	w := app.postForm(t, "/auth/login/", url.Values{
		"username": {username},
		"password": {"secret"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect")
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == app.cfg.SessionCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func (app *testApp) createGroup(t *testing.T, slug string) int64 {
	t.Helper()
	id, err := app.store.CreateGroup(context.Background(), &db.CreateGroup{
		Title:       "Тестовая группа",
		Slug:        slug,
		Description: "Тестовое описание",
	})
	require.NoError(t, err)
	return id
}

func (app *testApp) createPost(t *testing.T, authorId, groupId int64, text string) int64 {
	t.Helper()
	id, err := app.store.CreatePost(context.Background(), &db.CreatePost{
		Text:     text,
		AuthorId: authorId,
		GroupId:  groupId,
	})
	require.NoError(t, err)
	return id
}

// countPreviews counts rendered post previews in a listing page.
func countPreviews(body string) int {
	return strings.Count(body, `<article class="post">`)
}
