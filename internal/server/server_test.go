package server

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStopsWhenStdinCloses(t *testing.T) {
	srv, _, _ := newTestServer(t)
	srv.stdin = strings.NewReader("")
	srv.stdout = io.Discard

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, Config{Transport: "stdio"}) }()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.NoError(t, ctx.Err(), "Serve must return before the outer deadline")
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after stdin closed")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	srv, _, _ := newTestServer(t)
	pr, pw := io.Pipe()
	defer pw.Close()
	srv.stdin = pr
	srv.stdout = io.Discard

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, Config{Transport: "stdio"}) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after cancel")
	}
}

func TestServeUnknownTransport(t *testing.T) {
	srv, _, _ := newTestServer(t)

	err := srv.Serve(context.Background(), Config{Transport: "carrier-pigeon"})
	assert.ErrorContains(t, err, "unsupported transport")
}
