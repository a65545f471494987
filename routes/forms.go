package routes

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
	"github.com/yatube/yatube-be/services"
	"github.com/yatube/yatube-be/util"
)

// postForm carries the create/edit post fields plus per-field errors for
// re-rendering. An invalid form renders again with status 200.
type postForm struct {
	Text    string
	GroupId int64
	Image   string
	Errors  map[string]string
}

func (pf *postForm) valid() bool {
	return len(pf.Errors) == 0
}

// bindPostForm validates the submitted fields. current is the post being
// edited (nil on create); its image is kept unless a new upload replaces it.
func bindPostForm(c *gin.Context, database db.GroupDatabase, media *services.MediaStore, current *model.Post) *postForm {
	form := &postForm{Errors: map[string]string{}}
	if current != nil {
		form.Image = current.Image
	}

	form.Text = strings.TrimSpace(c.PostForm("text"))
	if form.Text == "" {
		form.Errors["text"] = "обязательное поле"
	} else {
		form.Text = util.XSSSanitize(form.Text)
	}

	if rawGroup := c.PostForm("group"); rawGroup != "" {
		groupId, err := util.ParseId(rawGroup)
		if err != nil {
			form.Errors["group"] = "неизвестная группа"
		} else if group, err := database.GetGroupById(c, groupId); err != nil || group == nil {
			form.Errors["group"] = "неизвестная группа"
		} else {
			form.GroupId = groupId
		}
	}

	// the image is optional; requests without a multipart body skip it
	if header, err := c.FormFile("image"); err == nil && header != nil {
		stored, err := media.Save(header)
		if err != nil {
			form.Errors["image"] = "не удалось сохранить файл"
		} else {
			form.Image = stored
		}
	}
	return form
}

type signupForm struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Errors    map[string]string
}

func (sf *signupForm) valid() bool {
	return len(sf.Errors) == 0
}

func bindSignupForm(c *gin.Context) (*signupForm, string) {
	form := &signupForm{
		Username:  strings.TrimSpace(c.PostForm("username")),
		FirstName: strings.TrimSpace(c.PostForm("first_name")),
		LastName:  strings.TrimSpace(c.PostForm("last_name")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Errors:    map[string]string{},
	}
	if form.Username == "" {
		form.Errors["username"] = "обязательное поле"
	}
	password := c.PostForm("password")
	if len(password) < 3 {
		form.Errors["password"] = "слишком короткий пароль"
	}
	return form, password
}
