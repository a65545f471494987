package app

import (
	"context"

	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

// Follow creates the follower -> author edge. Self-follows and already-present
// edges are silent no-ops, so the call is idempotent for the caller.
func Follow(ctx context.Context, fdb db.FollowDatabase, follower, author *model.User) error {
	if follower.Id == author.Id {
		return nil
	}
	if err := fdb.CreateFollow(ctx, follower.Id, author.Id); err != nil && !db.IsDupKeyErr(err) {
		return err
	}
	return nil
}

// Unfollow removes the edge; db.ErrNotFound when there is nothing to remove.
func Unfollow(ctx context.Context, fdb db.FollowDatabase, follower, author *model.User) error {
	return fdb.DeleteFollow(ctx, follower.Id, author.Id)
}

// IsFollowing is false for anonymous visitors (nil follower).
func IsFollowing(ctx context.Context, fdb db.FollowDatabase, follower, author *model.User) (bool, error) {
	if follower == nil {
		return false, nil
	}
	return fdb.HasFollow(ctx, follower.Id, author.Id)
}
