// Package metrics exports game and store events as Prometheus metrics.
//
// A [Collector] implements both observability.GameHooks and
// observability.StoreHooks. [Server] serves its registry over HTTP together
// with a JSON view of the current score.
package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/stacker/pkg/observability"
)

const namespace = "stacker"

// Collector turns hook calls into Prometheus metrics.
type Collector struct {
	placements *prometheus.CounterVec
	misses     prometheus.Counter
	restarts   prometheus.Counter
	records    prometheus.Counter
	overlap    prometheus.Histogram
	score      prometheus.Gauge
	highScore  prometheus.Gauge
	storeOps   *prometheus.CounterVec
	storeTime  *prometheus.HistogramVec

	// read by the HTTP server goroutine
	curScore  atomic.Int64
	curHigh   atomic.Int64
	games     atomic.Int64
	gameOver  atomic.Bool
	updatedAt atomic.Int64
}

var (
	_ observability.GameHooks  = (*Collector)(nil)
	_ observability.StoreHooks = (*Collector)(nil)
)

// New creates a collector and registers its metrics with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placements_total",
			Help:      "Successful cuts by axis.",
		}, []string{"axis"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Cuts that missed and ended a game.",
		}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "restarts_total",
			Help:      "Games restarted.",
		}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Times the high score was raised.",
		}),
		overlap: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cut_overlap",
			Help:      "Overlap length of successful cuts.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Score of the current game.",
		}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "high_score",
			Help:      "Best score seen by this process.",
		}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "High-score store operations.",
		}, []string{"backend", "op", "result"}),
		storeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of high-score store operations.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		}, []string{"backend", "op"}),
	}

	reg.MustRegister(
		c.placements, c.misses, c.restarts, c.records, c.overlap,
		c.score, c.highScore, c.storeOps, c.storeTime,
	)
	return c
}

// OnPlace implements observability.GameHooks.
func (c *Collector) OnPlace(_ context.Context, score int, overlap float64, axis string) {
	c.placements.WithLabelValues(axis).Inc()
	c.overlap.Observe(overlap)
	c.setScore(score)
	c.gameOver.Store(false)
}

// OnMiss implements observability.GameHooks.
func (c *Collector) OnMiss(_ context.Context, score int, _ float64) {
	c.misses.Inc()
	c.games.Add(1)
	c.setScore(score)
	c.gameOver.Store(true)
}

// OnRecord implements observability.GameHooks.
func (c *Collector) OnRecord(_ context.Context, highScore int) {
	c.records.Inc()
	c.SetHighScore(highScore)
}

// OnRestart implements observability.GameHooks.
func (c *Collector) OnRestart(context.Context) {
	c.restarts.Inc()
	c.setScore(0)
	c.gameOver.Store(false)
}

// OnLoad implements observability.StoreHooks.
func (c *Collector) OnLoad(_ context.Context, backend string, d time.Duration, err error) {
	c.observeStore(backend, "load", d, err)
}

// OnSave implements observability.StoreHooks.
func (c *Collector) OnSave(_ context.Context, backend string, d time.Duration, err error) {
	c.observeStore(backend, "save", d, err)
}

func (c *Collector) observeStore(backend, op string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.storeOps.WithLabelValues(backend, op, result).Inc()
	c.storeTime.WithLabelValues(backend, op).Observe(d.Seconds())
}

// SetHighScore seeds the high score, typically with the value loaded at startup.
func (c *Collector) SetHighScore(v int) {
	c.curHigh.Store(int64(v))
	c.highScore.Set(float64(v))
	c.touch()
}

func (c *Collector) setScore(v int) {
	c.curScore.Store(int64(v))
	c.score.Set(float64(v))
	c.touch()
}

func (c *Collector) touch() {
	c.updatedAt.Store(time.Now().UnixMilli())
}

// Snapshot is the JSON body of the /score endpoint.
type Snapshot struct {
	Score     int       `json:"score"`
	HighScore int       `json:"high_score"`
	Games     int       `json:"games"`
	GameOver  bool      `json:"game_over"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Snapshot returns the latest values reported through the hooks.
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		Score:     int(c.curScore.Load()),
		HighScore: int(c.curHigh.Load()),
		Games:     int(c.games.Load()),
		GameOver:  c.gameOver.Load(),
	}
	if ms := c.updatedAt.Load(); ms != 0 {
		s.UpdatedAt = time.UnixMilli(ms).UTC()
	}
	return s
}
