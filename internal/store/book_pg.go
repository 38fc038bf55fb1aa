package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"librarysvc/internal/entity"
	"librarysvc/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = "id, book_id, title, author, available, created_at, updated_at"

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(&b.ID, &b.BookID, &b.Title, &b.Author, &b.Available, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.BookID, &b.Title, &b.Author, &b.Available, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) FindAvailableByAuthor(ctx context.Context, substr string) (entity.Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE available AND author ILIKE '%' || $1 || '%'
	ORDER BY id
	LIMIT 1
	`
	return scanBook(r.db.QueryRow(ctx, query, substr))
}

func (r *BookPG) FindAvailableByTitle(ctx context.Context, substr string) (entity.Book, error) {
	const query = `
	SELECT ` + bookColumns + `
	FROM books
	WHERE available AND title ILIKE '%' || $1 || '%'
	ORDER BY id
	LIMIT 1
	`
	return scanBook(r.db.QueryRow(ctx, query, substr))
}

// AddMany runs the whole batch in one transaction; the first failed insert
// rolls back everything already added.
func (r *BookPG) AddMany(ctx context.Context, inputs []usecase.BookInput) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const query = `
	INSERT INTO books (book_id, title, author, available)
	VALUES ($1, $2, $3, $4)
	`
	for _, in := range inputs {
		if _, err := tx.Exec(ctx, query, in.BookID, in.Title, in.Author, in.Available); err != nil {
			return 0, translateConstraint(err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(inputs), nil
}

func (r *BookPG) Update(ctx context.Context, bookID int64, patch usecase.BookPatch) (entity.Book, error) {
	const query = `
	UPDATE books
	SET book_id   = COALESCE($2, book_id),
	    title     = COALESCE($3, title),
	    author    = COALESCE($4, author),
	    available = COALESCE($5, available),
	    updated_at = now()
	WHERE book_id = $1
	RETURNING ` + bookColumns + `
	`
	b, err := scanBook(r.db.QueryRow(ctx, query, bookID, patch.BookID, patch.Title, patch.Author, patch.Available))
	if err != nil {
		return entity.Book{}, translateConstraint(err)
	}
	return b, nil
}

func (r *BookPG) Delete(ctx context.Context, bookID int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM books WHERE book_id = $1`, bookID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
