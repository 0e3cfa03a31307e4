package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/board-service/internal/handler"
	"github.com/maxviazov/board-service/internal/repository/memory"
	"github.com/maxviazov/board-service/internal/route"
	"github.com/maxviazov/board-service/internal/service"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func newRouter(t *testing.T, p handler.Pinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo, err := memory.NewSeededPostRepository("")
	require.NoError(t, err)
	svc := service.NewBoardService(repo, 4, 100, zerolog.New(io.Discard))

	r := gin.New()
	r.Use(handler.RequestID(), handler.Recovery(zerolog.New(io.Discard)), handler.AccessLog(zerolog.New(io.Discard)))
	handler.Register(r, p, svc, route.DefaultTable())
	return r
}

func do(r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	r.ServeHTTP(w, httptest.NewRequest(method, target, rd))
	return w
}

func TestHealth(t *testing.T) {
	ok := newRouter(t, stubPinger{})
	down := newRouter(t, stubPinger{err: errors.New("db down")})
	cases := []struct {
		name string
		r    *gin.Engine
		path string
		want int
	}{
		{"live root", ok, "/live", http.StatusOK},
		{"ready root", ok, "/ready", http.StatusOK},
		{"ready api", ok, handler.APIV1Prefix + "/health/ready", http.StatusOK},
		{"ready root down", down, "/ready", http.StatusServiceUnavailable},
		{"ready api down", down, handler.APIV1Prefix + "/health/ready", http.StatusServiceUnavailable},
		{"live while down", down, handler.APIV1Prefix + "/health/live", http.StatusOK},
		{"unknown path", ok, "/no-such", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(tc.r, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestReadiness_NilPinger(t *testing.T) {
	w := do(newRouter(t, nil), http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPaginationWindow(t *testing.T) {
	r := newRouter(t, stubPinger{})

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/window?total=9&current=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"total":9,"current":2,"items":[
		{"type":"page","page":1},{"type":"page","page":2},{"type":"page","page":3},
		{"type":"ellipsis"},{"type":"page","page":9}]}`, w.Body.String())

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/window?total=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current":1`)

	// explicit values are echoed as sent; clamping only shapes the items
	w = do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/window?total=10&current=0", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"total":10,"current":0,"items":[
		{"type":"page","page":1},{"type":"page","page":2},
		{"type":"ellipsis"},{"type":"page","page":10}]}`, w.Body.String())

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/window?total=9223372036854775807&current=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"total":9223372036854775807,"current":9223372036854775807,"items":[
		{"type":"page","page":1},{"type":"ellipsis"},
		{"type":"page","page":9223372036854775806},{"type":"page","page":9223372036854775807}]}`, w.Body.String())

	for _, q := range []string{"", "?total=0", "?total=abc", "?total=5&current=x"} {
		w = do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/window"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
		assert.Contains(t, w.Body.String(), "invalid_input")
	}
}

func TestPaginationNavigate(t *testing.T) {
	r := newRouter(t, stubPinger{})
	cases := []struct {
		query string
		want  string
	}{
		{"target=0&total=10&current=5", `{"accepted":false}`},
		{"target=11&total=10&current=5", `{"accepted":false}`},
		{"target=5&total=10&current=5", `{"accepted":false}`},
		{"target=7&total=10&current=5", `{"accepted":true,"page":7}`},
	}
	for _, tc := range cases {
		w := do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/navigate?"+tc.query, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, tc.want, w.Body.String(), tc.query)
	}

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/pagination/navigate?target=1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPosts_List(t *testing.T) {
	r := newRouter(t, stubPinger{})
	w := do(r, http.MethodGet, handler.APIV1Prefix+"/posts?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page service.BoardPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 4)
	assert.Len(t, page.Window, 3)
	assert.True(t, page.HasPrev)
	assert.True(t, page.HasNext)
	assert.NotEmpty(t, w.Header().Get(handler.RequestIDHeader))

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/posts?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"status"`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/posts?page=two", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPosts_Navigate(t *testing.T) {
	r := newRouter(t, stubPinger{})

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/posts/navigate?page=1&target=3", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"page":3`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/posts/navigate?page=1&target=1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "page_change_rejected")

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/posts/navigate?page=1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPosts_GetAndCreate(t *testing.T) {
	r := newRouter(t, stubPinger{})

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/posts/310", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payments integration guide")

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/posts/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/posts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, _ := json.Marshal(map[string]string{"title": "Sprint review", "author": "Lee", "status": "progress"})
	w = do(r, http.MethodPost, handler.APIV1Prefix+"/posts", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"id":319`)

	w = do(r, http.MethodPost, handler.APIV1Prefix+"/posts", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, handler.APIV1Prefix+"/posts", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, _ = json.Marshal(map[string]string{"title": "", "author": "Lee"})
	w = do(r, http.MethodPost, handler.APIV1Prefix+"/posts", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"title"`)
}

func TestRoutes(t *testing.T) {
	r := newRouter(t, stubPinger{})

	w := do(r, http.MethodGet, handler.APIV1Prefix+"/routes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"default":{"id":"home"`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/routes/resolve?fragment=%23board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fragment":"#board"`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/routes/resolve?fragment=%23admin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_route")

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/routes/initial?fragment=%23admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fragment":"#home"`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/routes/initial?fragment=%23docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fragment":"#docs"`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/routes/navigate?current=home&target=board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fragment":"#board"`)

	w = do(r, http.MethodGet, handler.APIV1Prefix+"/routes/navigate?current=board&target=admin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown_route")
}

func TestDocs(t *testing.T) {
	r := newRouter(t, stubPinger{})
	w := do(r, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/pagination/window")

	w = do(r, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func TestRequestID_Propagates(t *testing.T) {
	r := newRouter(t, stubPinger{})
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(handler.RequestIDHeader))
}
