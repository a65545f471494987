package upperdb

import (
	"context"

	"github.com/upper/db/v4"

	"github.com/yatube/yatube-be/model"
)

type SessionDB struct {
	sess db.Session
}

func getSessionDB(sess db.Session) *SessionDB {
	return &SessionDB{sess}
}

func (sdb *SessionDB) CreateSession(ctx context.Context, session *model.Session) error {
	_, err := sdb.sess.WithContext(ctx).
		Collection("sessions").
		Insert(session)
	return err
}

// GetSession returns nil, nil when the id is unknown. Expiry is the caller's
// concern.
func (sdb *SessionDB) GetSession(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := sdb.sess.SQL().
		Select("*").
		From("sessions").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&session); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (sdb *SessionDB) DeleteSession(ctx context.Context, id string) error {
	return sdb.sess.WithContext(ctx).
		Collection("sessions").
		Find("id = ?", id).
		Delete()
}
