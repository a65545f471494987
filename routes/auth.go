package routes

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yatube/yatube-be/config"
	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/middleware"
	"github.com/yatube/yatube-be/model"
)

type authRoutes struct {
	db  db.Database
	cfg *config.Config
}

func AddAuthRoutes(group *gin.RouterGroup, database db.Database, cfg *config.Config) {
	routes := authRoutes{db: database, cfg: cfg}
	auth := group.Group("/auth")
	auth.GET("/signup/", routes.signupForm)
	auth.POST("/signup/", routes.signup)
	auth.GET("/login/", routes.loginForm)
	auth.POST("/login/", routes.login)
	auth.POST("/logout/", routes.logout)
}

func (ar *authRoutes) signupForm(c *gin.Context) {
	ar.renderSignup(c, &signupForm{Errors: map[string]string{}})
}

func (ar *authRoutes) signup(c *gin.Context) {
	form, password := bindSignupForm(c)
	if !form.valid() {
		ar.renderSignup(c, form)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("hashing error occurred", err)
		renderServerError(c)
		return
	}
	if _, err := ar.db.CreateUser(c, &db.CreateUser{
		Username:     form.Username,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PasswordHash: string(hash),
	}); err != nil {
		if db.IsDupKeyErr(err) {
			form.Errors["username"] = "имя пользователя занято"
			ar.renderSignup(c, form)
			return
		}
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (ar *authRoutes) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
		"User": middleware.GetUser(c),
	})
}

func (ar *authRoutes) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	next := c.PostForm("next")

	user, err := ar.db.GetUserByUsername(c, username)
	if err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    "неверное имя пользователя или пароль",
			"Username": username,
			"Next":     next,
			"User":     middleware.GetUser(c),
		})
		return
	}

	session := &model.Session{
		Id:        uuid.NewString(),
		UserId:    user.Id,
		ExpiresAt: time.Now().Add(ar.cfg.SessionTTL).UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := ar.db.CreateSession(c, session); err != nil {
		log.Println("database error occurred", err)
		renderServerError(c)
		return
	}
	c.SetCookie(ar.cfg.SessionCookie, session.Id, int(ar.cfg.SessionTTL.Seconds()), "/", "", false, true)

	// only same-site return paths; anything else goes home
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (ar *authRoutes) logout(c *gin.Context) {
	if sessionId, err := c.Cookie(ar.cfg.SessionCookie); err == nil && sessionId != "" {
		if err := ar.db.DeleteSession(c, sessionId); err != nil {
			log.Println("database error occurred", err)
		}
		c.SetCookie(ar.cfg.SessionCookie, "", -1, "/", "", false, true)
	}
	c.Redirect(http.StatusFound, "/")
}

func (ar *authRoutes) renderSignup(c *gin.Context, form *signupForm) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Form": form,
		"User": middleware.GetUser(c),
	})
}
