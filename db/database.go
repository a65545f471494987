package db

import (
	"context"
	"database/sql"

	"github.com/yatube/yatube-be/model"
)

type Database interface {
	UserDatabase
	GroupDatabase
	PostDatabase
	CommentDatabase
	FollowDatabase
	SessionDatabase
	GetSQLDB() *sql.DB
	Close() error
}

type CreateUser struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

type CreateGroup struct {
	Title       string
	Slug        string
	Description string
}

type CreatePost struct {
	Text     string
	AuthorId int64
	GroupId  int64 // 0 means no group
	Image    string
}

type UpdatePost struct {
	Text    string
	GroupId int64 // 0 clears the group
	Image   string
}

type CreateComment struct {
	PostId   int64
	AuthorId int64
	Text     string
}

// PostsQuery filters the post listing. Zero-valued filters are ignored;
// results are always ordered newest-first (created_at DESC, id DESC).
type PostsQuery struct {
	GroupId    int64
	AuthorId   int64
	FollowedBy int64
	Limit      int
	Offset     int
}

type UserDatabase interface {
	CreateUser(ctx context.Context, req *CreateUser) (userId int64, err error)
	GetUserById(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type GroupDatabase interface {
	CreateGroup(ctx context.Context, req *CreateGroup) (groupId int64, err error)
	GetGroupById(ctx context.Context, id int64) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	GetGroups(ctx context.Context) ([]*model.Group, error)
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	UpdatePost(ctx context.Context, id int64, req *UpdatePost) error
	GetPostById(ctx context.Context, id int64) (*model.Post, error)
	GetPosts(ctx context.Context, query *PostsQuery) ([]*model.Post, error)
	CountPosts(ctx context.Context, query *PostsQuery) (int, error)
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	GetCommentsForPost(ctx context.Context, postId int64) ([]*model.Comment, error)
}

type FollowDatabase interface {
	// CreateFollow returns the raw driver error on a duplicate edge; callers
	// that want idempotence filter it with IsDupKeyErr.
	CreateFollow(ctx context.Context, userId, authorId int64) error
	// DeleteFollow returns ErrNotFound when no such edge exists.
	DeleteFollow(ctx context.Context, userId, authorId int64) error
	HasFollow(ctx context.Context, userId, authorId int64) (bool, error)
	CountFollows(ctx context.Context) (int, error)
}

type SessionDatabase interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
