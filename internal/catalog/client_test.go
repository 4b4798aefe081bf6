package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {"id": 1, "title": "Classic Tee", "price": 19.5, "description": "Cotton",
   "category": {"id": 3, "name": "Clothes"}, "images": ["https://i.imgur.com/a.jpeg"]},
  {"id": 2, "title": "Desk Lamp", "price": "42"},
  {"id": "oops", "title": "broken id"},
  {"id": 4, "title": "Sneakers", "price": 60, "images": ["[\"https://i.imgur.com/b.jpeg\"", 7]}
]`

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_FetchAll(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, sampleCatalog)
	client := NewClient(server.URL, WithHTTPClient(server.Client()))

	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3, "record with non-integer id is skipped")

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Classic Tee", products[0].Title)
	assert.InDelta(t, 19.5, products[0].Price, 1e-9)
	assert.Equal(t, "Clothes", products[0].CategoryName())
	assert.Equal(t, []string{"https://i.imgur.com/a.jpeg"}, products[0].Images)

	assert.Equal(t, 2, products[1].ID)
	assert.InDelta(t, 42.0, products[1].Price, 1e-9, "numeric string price is coerced")
	assert.Empty(t, products[1].Description)
	assert.Nil(t, products[1].Category)
	assert.Empty(t, products[1].CategoryName())

	assert.Equal(t, 4, products[2].ID)
	assert.Equal(t, []string{`["https://i.imgur.com/b.jpeg"`}, products[2].Images,
		"non-string entries are dropped, malformed strings are kept as-is")
}

func TestClient_FetchAll_SendsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithHTTPClient(server.Client()), WithUserAgent("shelfview-test/1.0"))
	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, "shelfview-test/1.0", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_FetchAll_HTTPError(t *testing.T) {
	server := newCatalogServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	client := NewClient(server.URL, WithHTTPClient(server.Client()))

	products, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, products)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	assert.Equal(t, server.URL, fetchErr.Endpoint)
	assert.Contains(t, err.Error(), "HTTP 500 Internal Server Error")
}

func TestClient_FetchAll_NotAnArray(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, `{"products": []}`)
	client := NewClient(server.URL, WithHTTPClient(server.Client()))

	_, err := client.FetchAll(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "decoding product list")
}

func TestClient_FetchAll_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url)
	_, err := client.FetchAll(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(fetchErr))
}

func TestClient_FetchAll_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	_, err := client.FetchAll(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestClient_FetchAll_RefreshThrottle(t *testing.T) {
	server := newCatalogServer(t, http.StatusOK, "[]")
	client := NewClient(server.URL, WithHTTPClient(server.Client()), WithMinInterval(time.Hour))

	_, err := client.FetchAll(context.Background())
	require.NoError(t, err, "first fetch consumes the burst token")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.FetchAll(ctx)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "waiting for refresh window")
}

func TestClient_FetchAll_SharesInflightRequest(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(sampleCatalog))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL)

	const callers = 4
	results := make([][]Product, callers)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = client.FetchAll(context.Background())
	}()
	<-arrived

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = client.FetchAll(context.Background())
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for i := range callers {
		require.Len(t, results[i], 3)
	}

	results[1][0].Title = "changed"
	assert.Equal(t, "Classic Tee", results[0][0].Title)
}

func TestClient_Endpoint(t *testing.T) {
	assert.Equal(t, "https://example.com/p", NewClient("https://example.com/p").Endpoint())
}
