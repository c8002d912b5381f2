package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafatsq/ShuttleBook/internal/config"
)

func cacheCfg() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		Prefix:       "test:cache",
		MaxBodyBytes: 1 << 20,
	}
}

func TestRedisCacheServesSecondRequestFromCache(t *testing.T) {
	rdb := newTestRedis(t)

	var hits int32
	e := echo.New()
	e.GET("/api/courts", func(c echo.Context) error {
		atomic.AddInt32(&hits, 1)
		return c.JSON(http.StatusOK, echo.Map{"courts": []string{"court-a"}})
	}, NewRedisCache(cacheCfg(), rdb))

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/courts", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/courts", nil))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))

	// The handler ran once; the replayed body is byte-identical.
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRedisCacheSkipsUnconfiguredMethods(t *testing.T) {
	rdb := newTestRedis(t)

	var hits int32
	e := echo.New()
	e.POST("/api/bookings", func(c echo.Context) error {
		atomic.AddInt32(&hits, 1)
		return c.JSON(http.StatusCreated, echo.Map{"id": "x"})
	}, NewRedisCache(cacheCfg(), rdb))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestRedisCacheWithoutRedisIsPassThrough(t *testing.T) {
	var hits int32
	e := echo.New()
	e.GET("/api/courts", func(c echo.Context) error {
		atomic.AddInt32(&hits, 1)
		return c.String(http.StatusOK, "ok")
	}, NewRedisCache(cacheCfg(), nil))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courts", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestEncodeDecodePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(body))

	_, _, _, ok = decodePayload([]byte("short"))
	assert.False(t, ok)
}
