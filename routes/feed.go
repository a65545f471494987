package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/app"
	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/middleware"
	"github.com/yatube/yatube-be/services"
)

type feedRoutes struct {
	db db.Database
}

func AddFeedRoutes(group *gin.RouterGroup, database db.Database, pageCache services.PageCache, cacheTTL time.Duration) {
	routes := feedRoutes{db: database}
	group.GET("/",
		middleware.CachePage(pageCache, cacheTTL, middleware.IndexCachePrefix),
		routes.index)
	group.GET("/follow/", middleware.RequireLogin(), routes.followIndex)
}

func (fr *feedRoutes) index(c *gin.Context) {
	page, err := app.Paginate(c, app.AllPosts(fr.db), c.Query("page"))
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Последние обновления на сайте",
		"Page":  page,
		"User":  middleware.GetUser(c),
	})
}

func (fr *feedRoutes) followIndex(c *gin.Context) {
	user := middleware.MustGetUser(c)
	page, err := app.Paginate(c, app.FollowedPosts(fr.db, user.Id), c.Query("page"))
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Записи избранных авторов",
		"Page":  page,
		"User":  user,
	})
}
