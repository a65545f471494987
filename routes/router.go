package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/config"
	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/middleware"
	"github.com/yatube/yatube-be/services"
	"github.com/yatube/yatube-be/web"
)

// NewRouter wires every surface of the application onto one engine.
func NewRouter(cfg *config.Config, database db.Database, pageCache services.PageCache, media *services.MediaStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	if len(cfg.FrontendOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.FrontendOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.LoadUser(database, cfg.SessionCookie))

	AddFeedRoutes(&r.RouterGroup, database, pageCache, cfg.FeedCacheTTL)
	AddGroupRoutes(&r.RouterGroup, database)
	AddProfileRoutes(&r.RouterGroup, database)
	AddPostRoutes(&r.RouterGroup, database, media)
	AddAuthRoutes(&r.RouterGroup, database, cfg)
	AddHealthCheckRoutes(&r.RouterGroup)

	r.Static("/media", media.Dir())
	r.NoRoute(renderNotFound)
	return r
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"User": middleware.GetUser(c),
	})
	c.Abort()
}

func renderServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "server error")
	c.Abort()
}
