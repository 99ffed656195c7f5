package app

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/config"
)

func testConfig(storage config.StorageType, sqlitePath string) config.Config {
	return config.Config{
		ServerAddress:   "127.0.0.1:0",
		StorageType:     storage,
		SQLitePath:      sqlitePath,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
		LogLevel:        "error",
		MaxSlugAttempts: 10,
	}
}

func TestNew_Storages(t *testing.T) {
	tests := []struct {
		name string
		conf config.Config
	}{
		{name: "in memory", conf: testConfig(config.StorageTypeInMemory, "")},
		{name: "sqlite", conf: testConfig(config.StorageTypeSQLite, filepath.Join(t.TempDir(), "links.db"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(t.Context(), tt.conf)
			require.NoError(t, err)
			t.Cleanup(func() { _ = a.closeDB() })

			h := a.Handler()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/links", strings.NewReader(`{"link":{"url":"https://example.com"}}`))
			req.Header.Set("Content-Type", "application/json")
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusCreated, rec.Code)

			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestNew_BadStorage(t *testing.T) {
	_, err := New(t.Context(), testConfig(config.StorageTypeSQLite, ""))
	require.Error(t, err)

	assert.Panics(t, func() { Must(nil, err) })
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	conf := testConfig(config.StorageTypeInMemory, "")
	conf.ServerAddress = addr
	a, err := New(t.Context(), conf)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, getErr := http.Get("http://" + addr + "/ping") //nolint:noctx
		if getErr != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case runErr := <-done:
		require.NoError(t, runErr)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
