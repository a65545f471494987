package routes

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexShowsPost(t *testing.T) {
	app := newTestApp(t)
	author := app.createUser(t, "auth")
	groupId := app.createGroup(t, "test_slug")
	app.createPost(t, author.Id, groupId, "Тестовый текст")

	w := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Тестовый текст")
	assert.Contains(t, body, "Последние обновления на сайте")
	assert.Contains(t, body, `/group/test_slug/`)
}

func TestIndexOrdersNewestFirst(t *testing.T) {
	app := newTestApp(t)
	author := app.createUser(t, "auth")
	app.createPost(t, author.Id, 0, "старый пост")
	app.createPost(t, author.Id, 0, "новый пост")

	body := app.get(t, "/", nil).Body.String()
	newest := strings.Index(body, "новый пост")
	oldest := strings.Index(body, "старый пост")
	require.NotEqual(t, -1, newest)
	require.NotEqual(t, -1, oldest)
	assert.Less(t, newest, oldest, "the newer post should render first")
}

func TestIndexIsCachedUntilCleared(t *testing.T) {
	app := newTestApp(t)
	author := app.createUser(t, "auth")
	app.createPost(t, author.Id, 0, "первый пост")

	first := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, first.Code)

	// a write inside the cache window stays invisible
	app.createPost(t, author.Id, 0, "свежий пост")
	second := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.NotContains(t, second.Body.String(), "свежий пост")

	app.cache.Clear()
	third := app.get(t, "/", nil)
	require.Equal(t, http.StatusOK, third.Code)
	assert.Contains(t, third.Body.String(), "свежий пост")
}

func TestFollowFeed(t *testing.T) {
	app := newTestApp(t)
	author := app.createUser(t, "author")
	app.createUser(t, "follower")
	app.createUser(t, "outsider")
	app.createPost(t, author.Id, 0, "пост для подписчиков")

	followerCookie := app.login(t, "follower")
	w := app.postForm(t, "/profile/author/follow/", nil, followerCookie)
	require.Equal(t, http.StatusFound, w.Code)

	feed := app.get(t, "/follow/", followerCookie)
	require.Equal(t, http.StatusOK, feed.Code)
	assert.Contains(t, feed.Body.String(), "пост для подписчиков")
	assert.Contains(t, feed.Body.String(), "Записи избранных авторов")

	outsiderCookie := app.login(t, "outsider")
	empty := app.get(t, "/follow/", outsiderCookie)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.NotContains(t, empty.Body.String(), "пост для подписчиков")
	assert.Contains(t, empty.Body.String(), "Здесь пока нет записей")
}

func TestFollowFeedRequiresLogin(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/follow/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/follow/", w.Header().Get("Location"))
}

func TestGroupPagination(t *testing.T) {
	app := newTestApp(t)
	author := app.createUser(t, "auth")
	groupId := app.createGroup(t, "test_slug")
	for i := 0; i < 29; i++ {
		app.createPost(t, author.Id, groupId, fmt.Sprintf("Пост %d", i))
	}

	pageOne := app.get(t, "/group/test_slug/", nil)
	require.Equal(t, http.StatusOK, pageOne.Code)
	assert.Equal(t, 10, countPreviews(pageOne.Body.String()))

	pageTwo := app.get(t, "/group/test_slug/?page=2", nil)
	require.Equal(t, http.StatusOK, pageTwo.Code)
	assert.Equal(t, 10, countPreviews(pageTwo.Body.String()))

	pageThree := app.get(t, "/group/test_slug/?page=3", nil)
	require.Equal(t, http.StatusOK, pageThree.Code)
	assert.Equal(t, 9, countPreviews(pageThree.Body.String()))

	// out-of-range page numbers clamp to the last page
	beyond := app.get(t, "/group/test_slug/?page=99", nil)
	require.Equal(t, http.StatusOK, beyond.Code)
	assert.Equal(t, 9, countPreviews(beyond.Body.String()))
}

func TestGroupFiltersOtherGroups(t *testing.T) {
	app := newTestApp(t)
	author := app.createUser(t, "auth")
	groupId := app.createGroup(t, "test_slug")
	otherId := app.createGroup(t, "other_slug")
	app.createPost(t, author.Id, groupId, "пост группы")
	app.createPost(t, author.Id, otherId, "чужой пост")
	app.createPost(t, author.Id, 0, "пост без группы")

	body := app.get(t, "/group/test_slug/", nil).Body.String()
	assert.Contains(t, body, "пост группы")
	assert.NotContains(t, body, "чужой пост")
	assert.NotContains(t, body, "пост без группы")
}

func TestUnknownGroupIs404(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/group/unknown_slug/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownPageIs404(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/unexisting_page/", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Страница не найдена")
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}
