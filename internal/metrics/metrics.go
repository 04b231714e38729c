package metrics

import "sync/atomic"

// MetricID identifies a specific counter slot.
type MetricID int

const (
	MetricRegisterSuccess MetricID = iota
	MetricRegisterFailure
	MetricLoginSuccess
	MetricLoginFailure
	MetricLoginLocked
	MetricAccountLocked
	MetricVerificationRequest
	MetricVerificationSendFailure
	MetricVerificationCheckPass
	MetricVerificationCheckFail
	MetricVerificationRemoved

	MetricIDCount
)

// Config controls metric collection.
type Config struct {
	Enabled bool
}

type paddedCounter struct {
	value uint64
	_     [56]byte
}

// Metrics holds cache-line-padded atomic counters. When disabled, all
// operations are no-ops.
type Metrics struct {
	enabled  bool
	counters [MetricIDCount]paddedCounter
}

// Snapshot is a point-in-time deep copy of all counters.
type Snapshot struct {
	Counters map[MetricID]uint64
}

func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc atomically increments a counter. Allocation-free on the write path.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled {
		return
	}
	if id < 0 || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value returns the current value of a single counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || !m.enabled || id < 0 || id >= MetricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter into a fresh map.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Counters: make(map[MetricID]uint64, MetricIDCount),
	}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snap
}
