package readwise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"readerscout/internal/core/domain/models"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL+"/api/v2/auth/", server.URL+"/api/v3/list/", "test-key", 5*time.Second, zerolog.Nop())
}

func TestClient_VerifyToken(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusNoContent, true},
		{http.StatusOK, false},
		{http.StatusUnauthorized, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/auth/", r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			ok, err := newTestClient(server).VerifyToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestClient_VerifyToken_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(server)
	server.Close()

	_, err := client.VerifyToken(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNetwork))
}

func TestClient_ListPage_OmitsUnsetFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/list/", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"count":1,"nextPageCursor":null,"results":[{"id":"a"}]}`)
	}))
	defer server.Close()

	page, err := newTestClient(server).ListPage(context.Background(), models.ListFilter{}, "")
	require.NoError(t, err)
	assert.Empty(t, page.NextPageCursor)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "a", page.Results[0].StringOr("id", ""))
}

func TestClient_ListPage_AllFilters(t *testing.T) {
	after := time.Date(2026, 10, 7, 9, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "cursor-2", q.Get("pageCursor"))
		assert.Equal(t, "video", q.Get("category"))
		assert.Equal(t, "later", q.Get("location"))
		assert.Equal(t, "2026-10-07T07:30:00Z", q.Get("updatedAfter"))
		assert.Equal(t, "true", q.Get("withHtmlContent"))
		fmt.Fprint(w, `{"nextPageCursor":"cursor-3","results":[]}`)
	}))
	defer server.Close()

	filter := models.ListFilter{
		Category:     models.CategoryVideo,
		Location:     models.LocationLater,
		UpdatedAfter: after,
		WithContent:  true,
	}
	page, err := newTestClient(server).ListPage(context.Background(), filter, "cursor-2")
	require.NoError(t, err)
	assert.Equal(t, "cursor-3", page.NextPageCursor)
	assert.Empty(t, page.Results)
}

func TestClient_ListPage_NonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"detail":"Request was throttled."}`)
	}))
	defer server.Close()

	_, err := newTestClient(server).ListPage(context.Background(), models.ListFilter{}, "")

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, `{"detail":"Request was throttled."}`, apiErr.Body)
}

func TestClient_ListPage_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	_, err := newTestClient(server).ListPage(context.Background(), models.ListFilter{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_ListPage_TruncatedBodyAtDebug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		fmt.Fprint(w, `{"results":[{"id":"1"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/v2/auth/", server.URL+"/api/v3/list/", "test-key", 5*time.Second,
		zerolog.New(io.Discard).Level(zerolog.DebugLevel))

	page, err := client.ListPage(context.Background(), models.ListFilter{}, "")
	assert.Nil(t, page)
	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
