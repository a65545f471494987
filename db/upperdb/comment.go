package upperdb

import (
	"context"
	"time"

	"github.com/upper/db/v4"

	db2 "github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

func (cdb *CommentDB) CreateComment(ctx context.Context, req *db2.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comments").
		Columns("post_id", "author_id", "text", "created_at").
		Values(req.PostId, req.AuthorId, req.Text, time.Now().UTC()).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type flattenedComment struct {
	Id              int64     `db:"id"`
	PostId          int64     `db:"post_id"`
	Text            string    `db:"text"`
	CreatedAt       time.Time `db:"created_at"`
	AuthorId        int64     `db:"author_id"`
	AuthorUsername  string    `db:"author_username"`
	AuthorFirstName string    `db:"author_first_name"`
	AuthorLastName  string    `db:"author_last_name"`
}

func (cdb *CommentDB) GetCommentsForPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	var flattenedComments []flattenedComment
	if err := cdb.sess.SQL().
		Select(
			"c.id",
			"c.post_id",
			"c.text",
			"c.created_at",
			"u.id AS author_id",
			"u.username AS author_username",
			"u.first_name AS author_first_name",
			"u.last_name AS author_last_name",
		).
		From("comments AS c").
		Join("users AS u").On("c.author_id = u.id").
		Where("c.post_id = ?", postId).
		OrderBy("c.created_at DESC", "c.id DESC").
		IteratorContext(ctx).
		All(&flattenedComments); err != nil {
		return nil, err
	}

	comments := make([]*model.Comment, len(flattenedComments))
	for i, flattened := range flattenedComments {
		comments[i] = &model.Comment{
			Id:     flattened.Id,
			PostId: flattened.PostId,
			Author: &model.User{
				Id:        flattened.AuthorId,
				Username:  flattened.AuthorUsername,
				FirstName: flattened.AuthorFirstName,
				LastName:  flattened.AuthorLastName,
			},
			Text:      flattened.Text,
			CreatedAt: flattened.CreatedAt,
		}
	}
	return comments, nil
}
