package upperdb

import (
	"context"

	"github.com/upper/db/v4"

	db2 "github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

type GroupDB struct {
	sess db.Session
}

func getGroupDB(sess db.Session) *GroupDB {
	return &GroupDB{sess}
}

func (gdb *GroupDB) CreateGroup(ctx context.Context, req *db2.CreateGroup) (int64, error) {
	res, err := gdb.sess.SQL().
		InsertInto("post_groups").
		Columns("title", "slug", "description").
		Values(req.Title, req.Slug, req.Description).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetGroupById returns nil, nil when no such group exists.
func (gdb *GroupDB) GetGroupById(ctx context.Context, id int64) (*model.Group, error) {
	return gdb.getGroup(ctx, "id = ?", id)
}

// GetGroupBySlug returns nil, nil when the slug is unknown.
func (gdb *GroupDB) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	return gdb.getGroup(ctx, "slug = ?", slug)
}

func (gdb *GroupDB) getGroup(ctx context.Context, cond string, arg interface{}) (*model.Group, error) {
	var group model.Group
	if err := gdb.sess.SQL().
		Select("*").
		From("post_groups").
		Where(cond, arg).
		IteratorContext(ctx).
		One(&group); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (gdb *GroupDB) GetGroups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	return groups, gdb.sess.SQL().
		Select("*").
		From("post_groups").
		OrderBy("title").
		IteratorContext(ctx).
		All(&groups)
}
