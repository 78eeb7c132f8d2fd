package openlibrary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "book-explorer-test/1.0", 100)
}

func TestClient_Search(t *testing.T) {
	t.Run("decodes search response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search.json", r.URL.Path)
			assert.Equal(t, "golang", r.URL.Query().Get("q"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.NotEmpty(t, r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"numFound": 42,
				"docs": [
					{"key": "/works/OL1W", "cover_edition_key": "OL1M", "title": "Go", "author_name": ["Alan"], "first_publish_year": 2009},
					{"key": "/works/OL2W", "edition_key": ["OL2M", "OL3M"]}
				]
			}`))
		}))
		defer srv.Close()

		res, err := newTestClient(srv.URL).Search(context.Background(), "golang", 2)
		require.NoError(t, err)
		assert.Equal(t, 42, res.NumFound)
		require.Len(t, res.Docs, 2)
		assert.Equal(t, "OL1M", res.Docs[0].CoverEditionKey)
		assert.Equal(t, []string{"OL2M", "OL3M"}, res.Docs[1].EditionKeys)
		assert.Nil(t, res.Docs[1].Title)
	})

	t.Run("non-200 becomes StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Search(context.Background(), "golang", 1)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
	})

	t.Run("transport failure becomes ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newTestClient(srv.URL).Search(context.Background(), "golang", 1)
		assert.True(t, errors.Is(err, ErrUnavailable))
	})
}

func TestClient_GetBook(t *testing.T) {
	t.Run("decodes book data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/books/OL123M.json", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"title": "The Go Programming Language",
				"description": {"type": "/type/text", "value": "A book about Go."},
				"authors": [{"key": "/authors/OL1A"}, {"key": "/authors/OL2A"}],
				"subjects": ["Computers"],
				"publish_date": "2015"
			}`))
		}))
		defer srv.Close()

		book, err := newTestClient(srv.URL).GetBook(context.Background(), "OL123M")
		require.NoError(t, err)
		require.NotNil(t, book.Title)
		assert.Equal(t, "The Go Programming Language", *book.Title)
		require.Len(t, book.Authors, 2)
		assert.Equal(t, "/authors/OL1A", book.Authors[0].Key)
	})

	t.Run("404 becomes ErrNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetBook(context.Background(), "OLNOPE")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("500 becomes StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).GetBook(context.Background(), "OL123M")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	})
}
