package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"like-service/internal/application"
	"like-service/internal/infrastructure/logx"
	redisstore "like-service/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupRedis(t *testing.T) (*httptest.Server, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := redisstore.New(client)

	srv := NewServer(application.NewLikeService(store))
	srv.SetReadyCheck(store.Ping)
	ts := httptest.NewServer(NewRouter(srv))
	t.Cleanup(ts.Close)
	return ts, mr
}

func TestRedis_ConcurrentPostsOverHTTP(t *testing.T) {
	restore := logx.Replace(zap.NewNop())
	defer restore()
	ts, mr := setupRedis(t)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(ts.URL+"/api/like", "application/json", nil)
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}()
	}
	wg.Wait()

	v, err := mr.Get("footer-likes")
	require.NoError(t, err)
	require.Equal(t, "10", v)

	resp, err := http.Get(ts.URL + "/api/like")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRedis_StoreDown(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	restore := logx.Replace(zap.New(core))
	defer restore()
	ts, mr := setupRedis(t)
	require.NoError(t, mr.Set("footer-likes", "5"))
	mr.SetError("LOADING Redis is loading the dataset in memory")

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req, err := http.NewRequest(method, ts.URL+"/api/like", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, method)
		require.JSONEq(t, `{"message":"Internal Server Error"}`, string(body), method)
		require.NotContains(t, string(body), "LOADING", method)
	}

	resp, err := http.Get(ts.URL + "/readyz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.JSONEq(t, `{"message":"store not ready"}`, string(body))

	entries := logs.FilterMessage("like request failed").All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, true, e.ContextMap()["store_unavailable"])
	}

	// the failed POST did not touch the stored value
	mr.SetError("")
	v, err := mr.Get("footer-likes")
	require.NoError(t, err)
	require.Equal(t, "5", v)
}
