package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"librarysvc/internal/entity"
	"librarysvc/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// List returns every book in the library.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

// GetByAuthor returns the first available book whose author contains the
// path segment, case-insensitively.
func (h *BookHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	h.findOne(w, r, h.repo.FindAvailableByAuthor)
}

// GetByTitle is the title-substring counterpart of GetByAuthor.
func (h *BookHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	h.findOne(w, r, h.repo.FindAvailableByTitle)
}

func (h *BookHandler) findOne(w http.ResponseWriter, r *http.Request, find func(ctx context.Context, substr string) (entity.Book, error)) {
	book, err := find(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "Book not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, book)
}

type addBookItem struct {
	ID        int64     `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Author    string    `json:"author" validate:"required"`
	Available looseBool `json:"available"`
}

type addBooksReq struct {
	Books []addBookItem `json:"books" validate:"required,min=1,dive"`
}

// AddBooks inserts a batch of books in one transaction.
func (h *BookHandler) AddBooks(w http.ResponseWriter, r *http.Request) {
	var req addBooksReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONValidationError(w, details)
		return
	}

	inputs := make([]usecase.BookInput, 0, len(req.Books))
	for _, b := range req.Books {
		inputs = append(inputs, usecase.BookInput{
			BookID:    b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Available: b.Available.trueOnly(),
		})
	}

	if _, err := h.repo.AddMany(r.Context(), inputs); err != nil {
		if errors.Is(err, usecase.ErrDuplicateID) {
			JSONError(w, http.StatusConflict, "Book ID already in use")
			return
		}
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"result": "all books added"})
}

type updateBookReq struct {
	ID        *int64    `json:"id"`
	Title     *string   `json:"title"`
	Author    *string   `json:"author"`
	Available looseBool `json:"available"`
}

// Update merges the supplied fields into an existing book; omitted fields
// keep their stored values.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(r.PathValue("book_id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusNotFound, "Book not found")
		return
	}

	var req updateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := usecase.BookPatch{
		BookID: req.ID,
		Title:  req.Title,
		Author: req.Author,
	}
	if req.Available.set {
		available := req.Available.notFalse()
		patch.Available = &available
	}

	book, err := h.repo.Update(r.Context(), bookID, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Book not found")
		case errors.Is(err, usecase.ErrDuplicateID):
			JSONError(w, http.StatusConflict, "Book ID already in use")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Delete removes a book by its caller-facing ID.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(r.PathValue("book_id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusNotFound, "Book not found")
		return
	}

	if err := h.repo.Delete(r.Context(), bookID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "Book not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	JSONMessage(w, http.StatusOK, "Book deleted")
}
