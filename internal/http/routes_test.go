package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"librarysvc/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	return NewRouter(testutil.NewTokenService(), newFakeBookRepo(), newFakeMemberRepo())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	do := func(r *http.Request) testutil.RecordResponse {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return testutil.RecordHTTPResponse(w)
	}

	t.Run("missing token", func(t *testing.T) {
		resp := do(testutil.NewRequest(http.MethodGet, "/get_books", nil))
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "Token is missing!", resp.Body["message"])
	})

	t.Run("tampered token", func(t *testing.T) {
		resp := do(testutil.NewRequestWithToken(http.MethodGet, "/get_books", nil, testutil.FreshToken()+"x"))
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "Invalid token!", resp.Body["message"])
	})

	t.Run("expired token", func(t *testing.T) {
		resp := do(testutil.NewRequestWithToken(http.MethodGet, "/get_books", nil, testutil.ExpiredToken()))
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "Token has expired!", resp.Body["message"])
	})

	t.Run("every protected route rejects missing tokens", func(t *testing.T) {
		routes := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/get_books"},
			{http.MethodGet, "/get_book_author/leguin"},
			{http.MethodGet, "/get_book_title/dune"},
			{http.MethodPost, "/add_book"},
			{http.MethodPut, "/update_book/1"},
			{http.MethodPut, "/delete_book/1"},
			{http.MethodDelete, "/delete_book/1"},
			{http.MethodGet, "/get_members"},
			{http.MethodGet, "/get_member/1"},
			{http.MethodPost, "/add_member"},
			{http.MethodPut, "/update_member/1"},
			{http.MethodDelete, "/delete_member/1"},
		}
		for _, route := range routes {
			resp := do(testutil.NewRequest(route.method, route.path, nil))
			assert.Equalf(t, http.StatusUnauthorized, resp.Code, "%s %s", route.method, route.path)
		}
	})

	t.Run("login needs no token", func(t *testing.T) {
		resp := do(testutil.NewRequest(http.MethodPost, "/login", map[string]string{
			"username": "rosansen",
			"password": "rosansen7",
		}))
		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

// Full walk through the service: login, add three books, list, update one,
// delete one, list again.
func TestRouter_EndToEndFlow(t *testing.T) {
	router := newTestRouter()

	do := func(r *http.Request) testutil.RecordResponse {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return testutil.RecordHTTPResponse(w)
	}

	login := do(testutil.NewRequest(http.MethodPost, "/login", map[string]string{
		"username": "rosansen",
		"password": "rosansen7",
	}))
	require.Equal(t, http.StatusOK, login.Code)
	token, _ := login.Body["token"].(string)
	require.NotEmpty(t, token)

	added := do(testutil.NewRequestWithToken(http.MethodPost, "/add_book", map[string]any{
		"books": []map[string]any{
			{"id": 1, "title": "Dune", "author": "Frank Herbert", "available": "True"},
			{"id": 2, "title": "Solaris", "author": "Stanislaw Lem", "available": "True"},
			{"id": 3, "title": "Ubik", "author": "Philip K. Dick", "available": "True"},
		},
	}, token))
	require.Equal(t, http.StatusCreated, added.Code)
	assert.Equal(t, "all books added", added.Body["result"])

	list := do(testutil.NewRequestWithToken(http.MethodGet, "/get_books", nil, token))
	require.Equal(t, http.StatusOK, list.Code)
	require.Len(t, list.List, 3)

	updated := do(testutil.NewRequestWithToken(http.MethodPut, "/update_book/2", map[string]any{
		"title":     "Solaris (reissue)",
		"available": "False",
	}, token))
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "Solaris (reissue)", updated.Body["title"])
	assert.Equal(t, false, updated.Body["available"])

	deleted := do(testutil.NewRequestWithToken(http.MethodPut, "/delete_book/3", nil, token))
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.Equal(t, "Book deleted", deleted.Body["message"])

	final := do(testutil.NewRequestWithToken(http.MethodGet, "/get_books", nil, token))
	require.Equal(t, http.StatusOK, final.Code)
	require.Len(t, final.List, 2)

	var reissue map[string]interface{}
	for _, b := range final.List {
		if b["book_id"] == float64(2) {
			reissue = b
		}
	}
	require.NotNil(t, reissue)
	assert.Equal(t, "Solaris (reissue)", reissue["title"])
	assert.Equal(t, false, reissue["available"])
}
