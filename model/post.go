package model

import "time"

// Post is authored text content. Author is immutable after creation; Group and
// Image are optional (nil/empty when absent).
type Post struct {
	Id        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    *User     `json:"author"`
	Group     *Group    `json:"group,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	Id        int64     `json:"id"`
	PostId    int64     `json:"postId"`
	Author    *User     `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
