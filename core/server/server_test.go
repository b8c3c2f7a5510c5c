package server_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/server"
)

func TestServer_RunAndShutdown(t *testing.T) {
	t.Parallel()

	srv, err := server.New(server.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.ErrorIs(t, srv.Run(context.Background(), http.NotFoundHandler()), server.ErrAlreadyStarted)
}

func TestServer_ListenError(t *testing.T) {
	t.Parallel()

	srv, err := server.New(server.Config{Addr: "256.0.0.1:99999"})
	require.NoError(t, err)
	assert.Error(t, srv.Run(context.Background(), http.NotFoundHandler()))
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := server.New(server.Config{})
	assert.ErrorIs(t, err, server.ErrMissingAddress)

	srv, err := server.New(server.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
}
