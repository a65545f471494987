package routes

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/middleware"
	"github.com/yatube/yatube-be/model"
	"github.com/yatube/yatube-be/services"
	"github.com/yatube/yatube-be/util"
)

type postRoutes struct {
	db    db.Database
	media *services.MediaStore
}

func AddPostRoutes(group *gin.RouterGroup, database db.Database, media *services.MediaStore) {
	routes := postRoutes{db: database, media: media}

	group.GET("/create/", middleware.RequireLogin(), routes.createForm)
	group.POST("/create/", middleware.RequireLogin(), routes.create)

	posts := group.Group("/posts")
	posts.GET("/:id/", routes.detail)
	posts.GET("/:id/edit/", middleware.RequireLogin(), routes.editForm)
	posts.POST("/:id/edit/", middleware.RequireLogin(), routes.edit)
	posts.POST("/:id/comment/", middleware.RequireLogin(), routes.addComment)
}

func (pr *postRoutes) detail(c *gin.Context) {
	post, ok := pr.lookupPost(c)
	if !ok {
		return
	}
	comments, err := pr.db.GetCommentsForPost(c, post.Id)
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	postCount, err := pr.db.CountPosts(c, &db.PostsQuery{AuthorId: post.Author.Id})
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"Post":      post,
		"Comments":  comments,
		"PostCount": postCount,
		"User":      middleware.GetUser(c),
	})
}

func (pr *postRoutes) createForm(c *gin.Context) {
	pr.renderPostForm(c, &postForm{Errors: map[string]string{}}, false)
}

func (pr *postRoutes) create(c *gin.Context) {
	user := middleware.MustGetUser(c)
	form := bindPostForm(c, pr.db, pr.media, nil)
	if !form.valid() {
		pr.renderPostForm(c, form, false)
		return
	}
	if _, err := pr.db.CreatePost(c, &db.CreatePost{
		Text:     form.Text,
		AuthorId: user.Id,
		GroupId:  form.GroupId,
		Image:    form.Image,
	}); err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func (pr *postRoutes) editForm(c *gin.Context) {
	post, ok := pr.lookupPost(c)
	if !ok {
		return
	}
	if !pr.requireOwnership(c, post) {
		return
	}
	form := &postForm{
		Text:   post.Text,
		Image:  post.Image,
		Errors: map[string]string{},
	}
	if post.Group != nil {
		form.GroupId = post.Group.Id
	}
	pr.renderPostForm(c, form, true)
}

func (pr *postRoutes) edit(c *gin.Context) {
	post, ok := pr.lookupPost(c)
	if !ok {
		return
	}
	if !pr.requireOwnership(c, post) {
		return
	}
	form := bindPostForm(c, pr.db, pr.media, post)
	if !form.valid() {
		pr.renderPostForm(c, form, true)
		return
	}
	if err := pr.db.UpdatePost(c, post.Id, &db.UpdatePost{
		Text:    form.Text,
		GroupId: form.GroupId,
		Image:   form.Image,
	}); err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, detailPath(post.Id))
}

// addComment validates the text, attaches the acting user and the post, and
// redirects to the detail view either way; empty text is a silent no-op.
func (pr *postRoutes) addComment(c *gin.Context) {
	post, ok := pr.lookupPost(c)
	if !ok {
		return
	}
	text := strings.TrimSpace(c.PostForm("text"))
	if text != "" {
		if _, err := pr.db.CreateComment(c, &db.CreateComment{
			PostId:   post.Id,
			AuthorId: middleware.MustGetUser(c).Id,
			Text:     util.XSSSanitize(text),
		}); err != nil {
			log.Println("database error occurred", err)
			renderServerError(c)
			return
		}
	}
	c.Redirect(http.StatusFound, detailPath(post.Id))
}

func (pr *postRoutes) renderPostForm(c *gin.Context, form *postForm, isEdit bool) {
	groups, err := pr.db.GetGroups(c)
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"Form":   form,
		"Groups": groups,
		"IsEdit": isEdit,
		"User":   middleware.GetUser(c),
	})
}

// requireOwnership redirects non-authors to the read-only detail view instead
// of failing; tests assert on the redirect target.
func (pr *postRoutes) requireOwnership(c *gin.Context, post *model.Post) bool {
	if middleware.MustGetUser(c).Id != post.Author.Id {
		c.Redirect(http.StatusFound, detailPath(post.Id))
		c.Abort()
		return false
	}
	return true
}

func (pr *postRoutes) lookupPost(c *gin.Context) (*model.Post, bool) {
	id, err := util.ParseId(c.Param("id"))
	if err != nil {
		renderNotFound(c)
		return nil, false
	}
	post, err := pr.db.GetPostById(c, id)
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return nil, false
	}
	if post == nil {
		renderNotFound(c)
		return nil, false
	}
	return post, true
}

func detailPath(postId int64) string {
	return "/posts/" + util.FormatId(postId) + "/"
}
