package obs

import (
	"sync"
	"testing"
)

func TestCounterMeter_Accumulates(t *testing.T) {
	m := NewCounterMeter()
	m.Counter("connections_total", 1)
	m.Counter("connections_total", 1)
	m.Counter("requests_total", 1, Label{Key: "status", Value: "200 OK"})

	snap := m.Snapshot()
	if got := snap["connections_total"]; got != 2 {
		t.Fatalf("connections_total = %g", got)
	}
	if got := snap[`requests_total{status="200 OK"}`]; got != 1 {
		t.Fatalf("labeled series = %g, snapshot %v", got, snap)
	}
}

func TestCounterMeter_Histogram(t *testing.T) {
	m := NewCounterMeter()
	m.Histogram("request_bytes", 100)
	m.Histogram("request_bytes", 50)

	snap := m.Snapshot()
	if snap["request_bytes_count"] != 2 {
		t.Fatalf("count = %g", snap["request_bytes_count"])
	}
	if snap["request_bytes_sum"] != 150 {
		t.Fatalf("sum = %g", snap["request_bytes_sum"])
	}
}

func TestCounterMeter_SnapshotIsACopy(t *testing.T) {
	m := NewCounterMeter()
	m.Counter("a", 1)
	snap := m.Snapshot()
	snap["a"] = 99
	if got := m.Snapshot()["a"]; got != 1 {
		t.Fatalf("snapshot mutation leaked back: %g", got)
	}
}

func TestCounterMeter_ConcurrentUse(t *testing.T) {
	m := NewCounterMeter()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Counter("n", 1)
			}
		}()
	}
	wg.Wait()
	if got := m.Snapshot()["n"]; got != 800 {
		t.Fatalf("n = %g", got)
	}
}
