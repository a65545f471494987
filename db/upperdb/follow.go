package upperdb

import (
	"context"

	"github.com/upper/db/v4"

	db2 "github.com/yatube/yatube-be/db"
)

type FollowDB struct {
	sess db.Session
}

func getFollowDB(sess db.Session) *FollowDB {
	return &FollowDB{sess}
}

func (fdb *FollowDB) CreateFollow(ctx context.Context, userId, authorId int64) error {
	// the unique (user_id, author_id) index rejects duplicates; concurrent
	// identical requests converge on one edge
	_, err := fdb.sess.SQL().
		InsertInto("follows").
		Columns("user_id", "author_id").
		Values(userId, authorId).
		ExecContext(ctx)
	return err
}

func (fdb *FollowDB) DeleteFollow(ctx context.Context, userId, authorId int64) error {
	res := fdb.sess.WithContext(ctx).
		Collection("follows").
		Find("user_id = ? AND author_id = ?", userId, authorId)
	exists, err := res.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return db2.ErrNotFound
	}
	return res.Delete()
}

func (fdb *FollowDB) HasFollow(ctx context.Context, userId, authorId int64) (bool, error) {
	return fdb.sess.WithContext(ctx).
		Collection("follows").
		Find("user_id = ? AND author_id = ?", userId, authorId).
		Exists()
}

func (fdb *FollowDB) CountFollows(ctx context.Context) (int, error) {
	total, err := fdb.sess.WithContext(ctx).
		Collection("follows").
		Find().
		Count()
	return int(total), err
}
