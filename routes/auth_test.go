package routes

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupThenLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm(t, "/auth/signup/", url.Values{
		"username":   {"newuser"},
		"first_name": {"Иван"},
		"last_name":  {"Петров"},
		"email":      {"newuser@example.com"},
		"password":   {"secret"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/", w.Header().Get("Location"))

	user, err := app.store.GetUserByUsername(context.Background(), "newuser")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "secret", user.PasswordHash, "the password must be stored hashed")

	cookie := app.login(t, "newuser")
	created := app.get(t, "/create/", cookie)
	assert.Equal(t, http.StatusOK, created.Code)
}

func TestSignupDuplicateUsernameRerenders(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "taken")

	w := app.postForm(t, "/auth/signup/", url.Values{
		"username": {"taken"},
		"password": {"secret"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "имя пользователя занято")
}

func TestSignupValidation(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm(t, "/auth/signup/", url.Values{
		"username": {""},
		"password": {"ab"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "обязательное поле")
	assert.Contains(t, body, "слишком короткий пароль")
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "auth")

	w := app.postForm(t, "/auth/login/", url.Values{
		"username": {"auth"},
		"password": {"wrong"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "неверное имя пользователя или пароль")
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginHonorsNext(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "auth")

	w := app.postForm(t, "/auth/login/", url.Values{
		"username": {"auth"},
		"password": {"secret"},
		"next":     {"/profile/auth/follow/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/auth/follow/", w.Header().Get("Location"))
}

func TestLoginRejectsOffsiteNext(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "auth")

	for _, next := range []string{"https://evil.example", "//evil.example", "evil"} {
		w := app.postForm(t, "/auth/login/", url.Values{
			"username": {"auth"},
			"password": {"secret"},
			"next":     {next},
		}, nil)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"), "next=%q should fall back home", next)
	}
}

func TestLoginFormCarriesNext(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/auth/login/?next=/follow/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="/follow/"`)
}

func TestLogoutRevokesSession(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "auth")
	cookie := app.login(t, "auth")

	require.Equal(t, http.StatusOK, app.get(t, "/create/", cookie).Code)

	w := app.postForm(t, "/auth/logout/", nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// the server-side session is gone, so the old cookie is worthless
	after := app.get(t, "/create/", cookie)
	require.Equal(t, http.StatusFound, after.Code)
	assert.Equal(t, "/auth/login/?next=/create/", after.Header().Get("Location"))
}

func TestExpiredSessionIsAnonymous(t *testing.T) {
	app := newTestApp(t)
	app.createUser(t, "auth")
	app.cfg.SessionTTL = -time.Hour // sessions are born expired

	cookie := app.login(t, "auth")
	w := app.get(t, "/create/", cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/create/", w.Header().Get("Location"))
}
