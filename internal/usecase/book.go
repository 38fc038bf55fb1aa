package usecase

import (
	"context"

	"librarysvc/internal/entity"
)

// BookInput is one entry of an add_book batch.
type BookInput struct {
	BookID    int64
	Title     string
	Author    string
	Available bool
}

// BookPatch carries a partial update; nil fields keep their stored value.
type BookPatch struct {
	BookID    *int64
	Title     *string
	Author    *string
	Available *bool
}

// Repository interface
// Defines the contract for book persistence.
type BookRepository interface {
	List(ctx context.Context) ([]entity.Book, error)
	// First available book whose author contains substr (case-insensitive).
	FindAvailableByAuthor(ctx context.Context, substr string) (entity.Book, error)
	// First available book whose title contains substr (case-insensitive).
	FindAvailableByTitle(ctx context.Context, substr string) (entity.Book, error)
	// AddMany inserts the whole batch atomically and reports how many rows
	// were added. A duplicate book_id fails the entire batch.
	AddMany(ctx context.Context, inputs []BookInput) (int, error)
	Update(ctx context.Context, bookID int64, patch BookPatch) (entity.Book, error)
	Delete(ctx context.Context, bookID int64) error
}
