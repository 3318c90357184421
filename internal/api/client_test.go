package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/api")
}

func TestClient_CSRFOnlyOnMutatingRequests(t *testing.T) {
	seen := map[string]string{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen[r.Method] = r.Header.Get(csrfHeader)
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Subscription{})
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}).WithCSRFToken("tok")

	_, err := client.Subscriptions(context.Background())
	require.NoError(t, err)
	require.NoError(t, client.Subscribe(context.Background(), "alice"))
	require.NoError(t, client.Unsubscribe(context.Background(), "alice"))

	assert.Equal(t, "", seen[http.MethodGet])
	assert.Equal(t, "tok", seen[http.MethodPost])
	assert.Equal(t, "tok", seen[http.MethodDelete])
}

func TestClient_NoCSRFBeforeAuth(t *testing.T) {
	var header string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get(csrfHeader)
		_ = json.NewEncoder(w).Encode(AuthResponse{User: User{ID: 1}, CSRFToken: "fresh"})
	})

	resp, err := client.AuthTelegram(context.Background(), "query_id=1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.CSRFToken)
	assert.Empty(t, header)
}

func TestClient_PathsAndBodies(t *testing.T) {
	var gotPath string
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}).WithCSRFToken("tok")

	require.NoError(t, client.ReorderWishes(context.Background(), []ReorderItem{{ID: 3, Position: 0}, {ID: 1, Position: 1}}))
	assert.Equal(t, "POST /api/wishes/reorder", gotPath)
	assert.JSONEq(t, `[{"id":3,"position":0},{"id":1,"position":1}]`, string(gotBody))

	title := "New"
	tags := []string{"a"}
	_, err := client.UpdateWish(context.Background(), 7, WishPatch{Title: &title, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "PATCH /api/wishes/7", gotPath)
	assert.JSONEq(t, `{"title":"New","tags":["a"]}`, string(gotBody))

	_, err = client.CreateWish(context.Background(), WishCreate{WishlistID: 2, Title: "Bike", Priority: PriorityHigh, Status: StatusPlanned})
	require.NoError(t, err)
	assert.JSONEq(t, `{"wishlist_id":2,"title":"Bike","priority":"high","status":"planned","tags":[]}`, string(gotBody))
}

func TestClient_ErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"User not found"}`))
	})

	_, err := client.UserWishlist(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "User not found", apiErr.Detail)
	assert.Equal(t, "/users/ghost/wishlist", apiErr.Path)
}

func TestClient_UploadMedia(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "gift.png")
	require.NoError(t, os.WriteFile(imgPath, []byte("png-bytes"), 0o644))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get(csrfHeader))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "gift.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))
		_, _ = w.Write([]byte(`{"url":"https://cdn.example/gift.png"}`))
	}).WithCSRFToken("tok")

	url, err := client.UploadMedia(context.Background(), imgPath)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/gift.png", url)
}

func TestClient_LinkPreviewCancelled(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://a.com", r.URL.Query().Get("url"))
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.LinkPreview(ctx, "https://a.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"display_name":"A","username":"a"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithMetrics(metrics))
	_, err := client.PublicUser(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("GET", "/users/:handle", "2xx")))
}

func TestRouteTemplate(t *testing.T) {
	assert.Equal(t, "/wishes/:id", routeTemplate("/wishes/42"))
	assert.Equal(t, "/users/:handle/wishlist", routeTemplate("/users/bob/wishlist"))
	assert.Equal(t, "/subscriptions/:handle", routeTemplate("/subscriptions/bob"))
	assert.Equal(t, "/feed", routeTemplate("/feed"))
}
