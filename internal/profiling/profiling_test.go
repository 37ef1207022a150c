package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		stop := Track("test.op")
		time.Sleep(time.Millisecond)
		stop()
	}

	entries := Snapshot()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Calls != 3 {
		t.Errorf("calls = %d, want 3", entries[0].Calls)
	}
	if entries[0].Total < 3*time.Millisecond {
		t.Errorf("total = %v, want at least 3ms", entries[0].Total)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame left entries behind")
	}
}

func TestTopNOrdersSlowestFirst(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["fast"] = time.Millisecond
	frameTotals["slow"] = 4200 * time.Microsecond
	frameTotals["mid"] = 2 * time.Millisecond
	mu.Unlock()

	got := TopN(2)
	if got != "slow:4.2ms, mid:2.0ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if !strings.Contains(TopN(10), "fast:1.0ms") {
		t.Errorf("TopN(10) = %q, missing fast entry", TopN(10))
	}
	ResetFrame()
}
