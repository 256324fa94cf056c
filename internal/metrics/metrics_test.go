package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorGameHooks(t *testing.T) {
	c := New(prometheus.NewRegistry())
	ctx := context.Background()

	c.SetHighScore(4)
	c.OnPlace(ctx, 1, 9, "x")
	c.OnPlace(ctx, 2, 8, "z")
	c.OnPlace(ctx, 3, 7.5, "x")
	c.OnMiss(ctx, 3, -1)

	if got := testutil.ToFloat64(c.placements.WithLabelValues("x")); got != 2 {
		t.Errorf("placements{axis=x} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.misses); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.score); got != 3 {
		t.Errorf("score = %v, want 3", got)
	}

	snap := c.Snapshot()
	if snap.Score != 3 || snap.HighScore != 4 || snap.Games != 1 || !snap.GameOver {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if snap.UpdatedAt.IsZero() {
		t.Error("Snapshot().UpdatedAt should be set")
	}

	c.OnRestart(ctx)
	c.OnRecord(ctx, 5)
	if got := testutil.ToFloat64(c.restarts); got != 1 {
		t.Errorf("restarts = %v, want 1", got)
	}
	snap = c.Snapshot()
	if snap.Score != 0 || snap.HighScore != 5 || snap.GameOver {
		t.Errorf("Snapshot() after restart = %+v", snap)
	}
}

func TestCollectorStoreHooks(t *testing.T) {
	c := New(prometheus.NewRegistry())
	ctx := context.Background()

	c.OnLoad(ctx, "redis", time.Millisecond, nil)
	c.OnSave(ctx, "redis", 2*time.Millisecond, errors.New("boom"))
	c.OnSave(ctx, "redis", 2*time.Millisecond, nil)

	tests := []struct {
		op, result string
		want       float64
	}{
		{"load", "ok", 1},
		{"save", "ok", 1},
		{"save", "error", 1},
		{"load", "error", 0},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(c.storeOps.WithLabelValues("redis", tt.op, tt.result))
		if got != tt.want {
			t.Errorf("store_operations_total{op=%s,result=%s} = %v, want %v", tt.op, tt.result, got, tt.want)
		}
	}
}

func TestDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	defer func() {
		if recover() == nil {
			t.Error("registering twice should panic")
		}
	}()
	New(reg)
}

func newTestServer(t *testing.T) (*Collector, *httptest.Server) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := New(reg)
	srv := httptest.NewServer(NewServer(c, reg, nil).Handler())
	t.Cleanup(srv.Close)
	return c, srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestServerRoutes(t *testing.T) {
	c, srv := newTestServer(t)
	c.OnPlace(context.Background(), 2, 6, "z")

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/healthz", http.StatusOK, "ok"},
		{"/metrics", http.StatusOK, `stacker_placements_total{axis="z"} 1`},
		{"/score", http.StatusOK, `"score":2`},
		{"/nope", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := get(t, srv.URL+tt.path)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body = %q, want it to contain %q", body, tt.contains)
			}
		})
	}
}

func TestServerScoreJSON(t *testing.T) {
	c, srv := newTestServer(t)
	c.SetHighScore(9)

	_, body := get(t, srv.URL+"/score")
	var snap Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		t.Fatalf("decode /score: %v", err)
	}
	if snap.HighScore != 9 {
		t.Errorf("high_score = %d, want 9", snap.HighScore)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewServer(New(reg), reg, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	status, _ := get(t, "http://"+ln.Addr().String()+"/healthz")
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
