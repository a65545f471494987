package model

// Group is a named community posts may optionally belong to.
type Group struct {
	Id          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}
