package obs

import (
    "fmt"
    "sort"
    "strings"
    "sync"
)

// Label is a key/value pair attached to measurements.
type Label struct{
    Key   string
    Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
    Counter(name string, value float64, labels ...Label)
    Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// CounterMeter accumulates measurements in memory, keyed by name plus
// sorted labels in text exposition form. Safe for concurrent use; one
// instance is shared by all connection handlers.
type CounterMeter struct {
    mu     sync.Mutex
    counts map[string]float64
}

func NewCounterMeter() *CounterMeter {
    return &CounterMeter{counts: make(map[string]float64)}
}

func (m *CounterMeter) Counter(name string, value float64, labels ...Label) {
    m.add(seriesKey(name, labels), value)
}

// Histogram is recorded as the pair of _count/_sum series, which is all
// the text exposition needs.
func (m *CounterMeter) Histogram(name string, value float64, labels ...Label) {
    m.add(seriesKey(name+"_count", labels), 1)
    m.add(seriesKey(name+"_sum", labels), value)
}

func (m *CounterMeter) add(key string, value float64) {
    m.mu.Lock()
    m.counts[key] += value
    m.mu.Unlock()
}

// Snapshot returns a copy of all series and their current values.
func (m *CounterMeter) Snapshot() map[string]float64 {
    m.mu.Lock()
    defer m.mu.Unlock()
    out := make(map[string]float64, len(m.counts))
    for k, v := range m.counts {
        out[k] = v
    }
    return out
}

func seriesKey(name string, labels []Label) string {
    if len(labels) == 0 {
        return name
    }
    ls := make([]string, 0, len(labels))
    for _, l := range labels {
        ls = append(ls, fmt.Sprintf("%s=%q", l.Key, l.Value))
    }
    sort.Strings(ls)
    return name + "{" + strings.Join(ls, ",") + "}"
}

