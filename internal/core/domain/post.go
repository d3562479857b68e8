package domain

import "time"

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
	AuthorID  int64     `db:"author_id"`

	// AuthorName is joined in on listing queries; it is not a column of the
	// posts table.
	AuthorName string `db:"author_name"`
}

func NewPost(authorID int64, title, body string) *Post {
	return &Post{
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
		AuthorID:  authorID,
	}
}
