package model

// Follow is a directed edge: UserId follows AuthorId. The storage layer keeps
// at most one edge per pair.
type Follow struct {
	Id       int64 `db:"id" json:"id"`
	UserId   int64 `db:"user_id" json:"userId"`
	AuthorId int64 `db:"author_id" json:"authorId"`
}
