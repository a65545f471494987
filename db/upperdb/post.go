package upperdb

import (
	"context"
	"database/sql"
	"time"

	"github.com/upper/db/v4"

	db2 "github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("posts").
		Columns("text", "author_id", "group_id", "image", "created_at").
		Values(req.Text, req.AuthorId, nullableId(req.GroupId), req.Image, time.Now().UTC()).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdatePost leaves author_id and created_at untouched; the author of a post
// never changes.
func (pdb *PostDB) UpdatePost(ctx context.Context, id int64, req *db2.UpdatePost) error {
	_, err := pdb.sess.SQL().
		Update("posts").
		Set("text = ?, group_id = ?, image = ?", req.Text, nullableId(req.GroupId), req.Image).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

type flattenedPost struct {
	Id               int64          `db:"id"`
	Text             string         `db:"text"`
	Image            string         `db:"image"`
	CreatedAt        time.Time      `db:"created_at"`
	AuthorId         int64          `db:"author_id"`
	AuthorUsername   string         `db:"author_username"`
	AuthorFirstName  string         `db:"author_first_name"`
	AuthorLastName   string         `db:"author_last_name"`
	GroupId          sql.NullInt64  `db:"group_id"`
	GroupTitle       sql.NullString `db:"group_title"`
	GroupSlug        sql.NullString `db:"group_slug"`
	GroupDescription sql.NullString `db:"group_description"`
}

var postColumns = []interface{}{
	"p.id",
	"p.text",
	"p.image",
	"p.created_at",
	"u.id AS author_id",
	"u.username AS author_username",
	"u.first_name AS author_first_name",
	"u.last_name AS author_last_name",
	"g.id AS group_id",
	"g.title AS group_title",
	"g.slug AS group_slug",
	"g.description AS group_description",
}

// GetPostById returns nil, nil when no such post exists.
func (pdb *PostDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	var post flattenedPost
	if err := pdb.postsSelector(nil).
		Where("p.id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildPostFromFlattened(&post), nil
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *db2.PostsQuery) ([]*model.Post, error) {
	sel := pdb.postsSelector(query).
		OrderBy("p.created_at DESC", "p.id DESC")
	if query.Limit > 0 {
		sel = sel.Limit(query.Limit).Offset(query.Offset)
	}

	var flattenedPosts []flattenedPost
	if err := sel.IteratorContext(ctx).All(&flattenedPosts); err != nil {
		return nil, err
	}
	posts := make([]*model.Post, len(flattenedPosts))
	for i := range flattenedPosts {
		posts[i] = buildPostFromFlattened(&flattenedPosts[i])
	}
	return posts, nil
}

func (pdb *PostDB) CountPosts(ctx context.Context, query *db2.PostsQuery) (int, error) {
	sel := pdb.sess.SQL().
		Select(db.Raw("COUNT(*) AS total")).
		From("posts AS p")
	sel = applyPostFilters(sel, query)

	var out struct {
		Total int `db:"total"`
	}
	if err := sel.IteratorContext(ctx).One(&out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

func (pdb *PostDB) postsSelector(query *db2.PostsQuery) db.Selector {
	sel := pdb.sess.SQL().
		Select(postColumns...).
		From("posts AS p").
		Join("users AS u").On("p.author_id = u.id").
		LeftJoin("post_groups AS g").On("p.group_id = g.id")
	return applyPostFilters(sel, query)
}

func applyPostFilters(sel db.Selector, query *db2.PostsQuery) db.Selector {
	if query == nil {
		return sel
	}
	if query.FollowedBy != 0 {
		sel = sel.Join("follows AS f").On("f.author_id = p.author_id AND f.user_id = ?", query.FollowedBy)
	}
	cond := db.Cond{}
	if query.GroupId != 0 {
		cond["p.group_id"] = query.GroupId
	}
	if query.AuthorId != 0 {
		cond["p.author_id"] = query.AuthorId
	}
	if len(cond) > 0 {
		sel = sel.Where(cond)
	}
	return sel
}

func buildPostFromFlattened(post *flattenedPost) *model.Post {
	built := &model.Post{
		Id:   post.Id,
		Text: post.Text,
		Author: &model.User{
			Id:        post.AuthorId,
			Username:  post.AuthorUsername,
			FirstName: post.AuthorFirstName,
			LastName:  post.AuthorLastName,
		},
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
	}
	if post.GroupId.Valid {
		built.Group = &model.Group{
			Id:          post.GroupId.Int64,
			Title:       post.GroupTitle.String,
			Slug:        post.GroupSlug.String,
			Description: post.GroupDescription.String,
		}
	}
	return built
}

func nullableId(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
