package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/matzehuels/stacker/pkg/core/tower"
	"github.com/matzehuels/stacker/pkg/score"
)

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Rounds: 5, Seed: 42, Jitter: 1.5}

	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(a.Rounds) != 5 {
		t.Fatalf("len(Rounds) = %d, want 5", len(a.Rounds))
	}
	for i := range a.Rounds {
		if a.Rounds[i] != b.Rounds[i] {
			t.Errorf("round %d differs: %+v vs %+v", i, a.Rounds[i], b.Rounds[i])
		}
	}
}

func TestSteadyBotScores(t *testing.T) {
	rep, err := Run(context.Background(), Options{Rounds: 1, Jitter: 0})
	if err != nil {
		t.Fatal(err)
	}
	rd := rep.Rounds[0]
	// without aim error each cut loses less than one frame of travel
	if rd.Score < 10 {
		t.Errorf("Score = %d, want >= 10", rd.Score)
	}
	if rd.MeanOverlap <= 0 || rd.MeanOverlap > tower.DefaultBaseSize {
		t.Errorf("MeanOverlap = %v, want in (0, %v]", rd.MeanOverlap, tower.DefaultBaseSize)
	}
	if rd.Seconds <= 0 {
		t.Errorf("Seconds = %v, want > 0", rd.Seconds)
	}
}

func TestMaxScoreCapsRound(t *testing.T) {
	rep, err := Run(context.Background(), Options{Rounds: 2, Jitter: 0, MaxScore: 3})
	if err != nil {
		t.Fatal(err)
	}
	for i, rd := range rep.Rounds {
		if rd.Score != 3 || !rd.Capped {
			t.Errorf("round %d = %+v, want capped at 3", i, rd)
		}
	}
	if !rep.Rounds[0].NewRecord || rep.Rounds[1].NewRecord {
		t.Errorf("only the first round should set a record: %+v", rep.Rounds)
	}
}

func TestRunSavesHighScore(t *testing.T) {
	store := score.NewMemoryStore(0)
	rep, err := Run(context.Background(), Options{Rounds: 3, Seed: 7, Jitter: 1, Store: store})
	if err != nil {
		t.Fatal(err)
	}
	if rep.HighScore != rep.Best() {
		t.Errorf("HighScore = %d, want Best() = %d", rep.HighScore, rep.Best())
	}
	got, _ := store.Load(context.Background())
	if got != rep.Best() {
		t.Errorf("stored high score = %d, want %d", got, rep.Best())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Run(ctx, Options{Rounds: 3})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(rep.Rounds) != 0 {
		t.Errorf("len(Rounds) = %d, want 0", len(rep.Rounds))
	}
}

func TestReportStats(t *testing.T) {
	rep := Report{Rounds: []Round{{Score: 2}, {Score: 6}, {Score: 4}}}
	if rep.Best() != 6 {
		t.Errorf("Best() = %d, want 6", rep.Best())
	}
	if rep.Mean() != 4 {
		t.Errorf("Mean() = %v, want 4", rep.Mean())
	}
	if (Report{}).Mean() != 0 {
		t.Error("Mean() of empty report should be 0")
	}
}

func TestLayerFrameLimit(t *testing.T) {
	p := tower.DefaultPhysics()
	p.Bound = 10
	p.Speed = 5
	// period 4*10/5 = 8s, two periods at 60 fps = 960 frames
	if got := layerFrameLimit(p, 60); got != 961 {
		t.Errorf("layerFrameLimit() = %d, want 961", got)
	}
}
