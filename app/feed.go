package app

import (
	"context"

	"github.com/yatube/yatube-be/db"
	"github.com/yatube/yatube-be/model"
)

// AllPosts is the home feed: every post, newest first.
func AllPosts(pdb db.PostDatabase) PostSource {
	return &postSource{pdb: pdb, query: db.PostsQuery{}}
}

// GroupPosts is the feed of one group.
func GroupPosts(pdb db.PostDatabase, groupId int64) PostSource {
	return &postSource{pdb: pdb, query: db.PostsQuery{GroupId: groupId}}
}

// AuthorPosts is the feed of one author's profile page.
func AuthorPosts(pdb db.PostDatabase, authorId int64) PostSource {
	return &postSource{pdb: pdb, query: db.PostsQuery{AuthorId: authorId}}
}

// FollowedPosts is the personalized feed: posts by every author the user
// follows. Following no one yields an empty source, not an error.
func FollowedPosts(pdb db.PostDatabase, userId int64) PostSource {
	return &postSource{pdb: pdb, query: db.PostsQuery{FollowedBy: userId}}
}

type postSource struct {
	pdb   db.PostDatabase
	query db.PostsQuery
}

func (ps *postSource) Count(ctx context.Context) (int, error) {
	query := ps.query
	return ps.pdb.CountPosts(ctx, &query)
}

func (ps *postSource) Page(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	query := ps.query
	query.Limit = limit
	query.Offset = offset
	return ps.pdb.GetPosts(ctx, &query)
}
