package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-sync/core/feed"
	"catalog-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type doc struct {
	Items []struct {
		ID int `json:"id"`
	} `json:"items"`
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	t.Run("Decodes", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"items":[{"id":1},{"id":2}]}`)
		c := feed.NewClient(feed.Config{}, zap.NewNop())

		var out doc
		require.NoError(t, c.Fetch(context.Background(), "primary", srv.URL, &out))
		assert.Len(t, out.Items, 2)
	})

	t.Run("Non200IsFetchError", func(t *testing.T) {
		srv := serve(t, http.StatusBadGateway, "oops")
		c := feed.NewClient(feed.Config{}, zap.NewNop())

		var out doc
		err := c.Fetch(context.Background(), "primary", srv.URL, &out)
		var fe *feed.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, http.StatusBadGateway, fe.StatusCode)
		assert.Equal(t, "primary", fe.Feed)
	})

	t.Run("MalformedIsDecodeError", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"items":[`)
		c := feed.NewClient(feed.Config{}, zap.NewNop())

		var out doc
		err := c.Fetch(context.Background(), "secondary", srv.URL, &out)
		var de *feed.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "secondary", de.Feed)
	})

	t.Run("Unreachable", func(t *testing.T) {
		c := feed.NewClient(feed.Config{}, zap.NewNop())
		err := c.Fetch(context.Background(), "primary", "http://127.0.0.1:1/", &doc{})
		var fe *feed.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Zero(t, fe.StatusCode)
	})

	t.Run("Timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()

		c := feed.NewClient(feed.Config{}, zap.NewNop(), feed.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
		err := c.Fetch(context.Background(), "primary", srv.URL, &doc{})
		var fe *feed.FetchError
		assert.ErrorAs(t, err, &fe)
	})

	t.Run("Cancelled", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{}`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := feed.NewClient(feed.Config{}, zap.NewNop())
		err := c.Fetch(ctx, "primary", srv.URL, &doc{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestFetchArchives(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"items":[]}`)
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "feeds-bucket", mock.MatchedBy(func(key string) bool {
		return len(key) > len("raw/primary/") && key[:len("raw/primary/")] == "raw/primary/"
	}), mock.Anything, int64(len(`{"items":[]}`)), mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	c := feed.NewClient(feed.Config{}, zap.NewNop(), feed.WithArchive(feed.NewArchive(store, "feeds-bucket", "raw", 0)))
	require.NoError(t, c.Fetch(context.Background(), "primary", srv.URL, &doc{}))
	store.AssertExpectations(t)
}

func TestFetchArchiveFailureIsNotFatal(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"items":[]}`)
	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("s3 down"))

	c := feed.NewClient(feed.Config{}, zap.NewNop(), feed.WithArchive(feed.NewArchive(store, "b", "raw", 0)))
	assert.NoError(t, c.Fetch(context.Background(), "primary", srv.URL, &doc{}))
}
