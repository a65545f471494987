package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/app"
	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/middleware"
	"github.com/yatube/yatube-be/model"
)

type profileRoutes struct {
	db db.Database
}

func AddProfileRoutes(group *gin.RouterGroup, database db.Database) {
	routes := profileRoutes{db: database}
	profiles := group.Group("/profile")
	profiles.GET("/:username/", routes.profile)
	profiles.POST("/:username/follow/", middleware.RequireLogin(), routes.follow)
	profiles.POST("/:username/unfollow/", middleware.RequireLogin(), routes.unfollow)
}

func (pr *profileRoutes) profile(c *gin.Context) {
	author, ok := pr.lookupAuthor(c)
	if !ok {
		return
	}

	page, err := app.Paginate(c, app.AuthorPosts(pr.db, author.Id), c.Query("page"))
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	postCount, err := pr.db.CountPosts(c, &db.PostsQuery{AuthorId: author.Id})
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	following, err := app.IsFollowing(c, pr.db, middleware.GetUser(c), author)
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Author":    author,
		"Page":      page,
		"PostCount": postCount,
		"Following": following,
		"User":      middleware.GetUser(c),
	})
}

func (pr *profileRoutes) follow(c *gin.Context) {
	author, ok := pr.lookupAuthor(c)
	if !ok {
		return
	}
	if err := app.Follow(c, pr.db, middleware.MustGetUser(c), author); err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func (pr *profileRoutes) unfollow(c *gin.Context) {
	author, ok := pr.lookupAuthor(c)
	if !ok {
		return
	}
	if err := app.Unfollow(c, pr.db, middleware.MustGetUser(c), author); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderNotFound(c)
			return
		}
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func (pr *profileRoutes) lookupAuthor(c *gin.Context) (*model.User, bool) {
	author, err := pr.db.GetUserByUsername(c, c.Param("username"))
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return nil, false
	}
	if author == nil {
		renderNotFound(c)
		return nil, false
	}
	return author, true
}
