package upperdb

import (
	"context"
	"time"

	"github.com/upper/db/v4"

	db2 "github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, req *db2.CreateUser) (int64, error) {
	res, err := udb.sess.SQL().
		InsertInto("users").
		Columns("username", "first_name", "last_name", "email", "password_hash", "created_at").
		Values(req.Username, req.FirstName, req.LastName, req.Email, req.PasswordHash, time.Now().UTC()).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetUserById returns nil, nil when no such user exists.
func (udb *UserDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	return udb.getUser(ctx, "id = ?", id)
}

// GetUserByUsername returns nil, nil when no such user exists.
func (udb *UserDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return udb.getUser(ctx, "username = ?", username)
}

func (udb *UserDB) getUser(ctx context.Context, cond string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("users").
		Where(cond, arg).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
