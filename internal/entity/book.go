package entity

import "time"

// Book is a single library copy. BookID is the caller-facing identifier;
// ID is the surrogate key owned by the store.
type Book struct {
	ID        int64     `json:"-"`
	BookID    int64     `json:"book_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
