package http

import (
	"net/http"

	"librarysvc/internal/auth"
	"librarysvc/internal/httpx"
	"librarysvc/internal/usecase"
)

// NewRouter wires every route of the service. All routes except /login sit
// behind the token middleware.
func NewRouter(tokens *auth.Service, books usecase.BookRepository, members usecase.MemberRepository) http.Handler {
	authHandler := NewAuthHandler(tokens)
	bookHandler := NewBookHandler(books)
	memberHandler := NewMemberHandler(members)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /get_books", bookHandler.List)
	protected.HandleFunc("GET /get_book_author/{name}", bookHandler.GetByAuthor)
	protected.HandleFunc("GET /get_book_title/{name}", bookHandler.GetByTitle)
	protected.HandleFunc("POST /add_book", bookHandler.AddBooks)
	protected.HandleFunc("PUT /update_book/{book_id}", bookHandler.Update)
	// The original API deleted books over PUT; keep that alongside the
	// conventional verb.
	protected.HandleFunc("PUT /delete_book/{book_id}", bookHandler.Delete)
	protected.HandleFunc("DELETE /delete_book/{book_id}", bookHandler.Delete)

	protected.HandleFunc("GET /get_members", memberHandler.List)
	protected.HandleFunc("GET /get_member/{id}", memberHandler.Get)
	protected.HandleFunc("POST /add_member", memberHandler.Add)
	protected.HandleFunc("PUT /update_member/{id}", memberHandler.Update)
	protected.HandleFunc("DELETE /delete_member/{id}", memberHandler.Delete)

	router := http.NewServeMux()
	router.HandleFunc("POST /login", authHandler.Login)
	router.Handle("/", httpx.AuthMiddleware(tokens)(protected))
	return router
}
