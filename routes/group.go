package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/app"
	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/middleware"
)

type groupRoutes struct {
	db db.Database
}

func AddGroupRoutes(group *gin.RouterGroup, database db.Database) {
	routes := groupRoutes{db: database}
	group.GET("/group/:slug/", routes.groupPosts)
}

func (gr *groupRoutes) groupPosts(c *gin.Context) {
	blogGroup, err := gr.db.GetGroupBySlug(c, c.Param("slug"))
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	if blogGroup == nil {
		renderNotFound(c)
		return
	}

	page, err := app.Paginate(c, app.GroupPosts(gr.db, blogGroup.Id), c.Query("page"))
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "group_list.html", gin.H{
		"Group": blogGroup,
		"Page":  page,
		"User":  middleware.GetUser(c),
	})
}
