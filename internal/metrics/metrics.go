// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	// Mnemonic operation metrics
	mnemonicOpsTotal  atomic.Int64
	mnemonicOpsErrors atomic.Int64

	// Key derivation metrics
	derivationsTotal   atomic.Int64
	derivationErrors   atomic.Int64
	derivationDuration atomic.Int64

	// Address encoding metrics
	addressesTotal  atomic.Int64
	addressesErrors atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordMnemonicOp records a mnemonic generation or validation.
func (m *Metrics) RecordMnemonicOp(err error) {
	m.mnemonicOpsTotal.Add(1)
	if err != nil {
		m.mnemonicOpsErrors.Add(1)
	}
}

// RecordDerivation records a seed or key derivation with its duration.
func (m *Metrics) RecordDerivation(duration time.Duration, err error) {
	m.derivationsTotal.Add(1)
	m.derivationDuration.Add(duration.Nanoseconds())
	if err != nil {
		m.derivationErrors.Add(1)
	}
}

// RecordAddress records a receive-address derivation.
func (m *Metrics) RecordAddress(err error) {
	m.addressesTotal.Add(1)
	if err != nil {
		m.addressesErrors.Add(1)
	}
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	MnemonicOpsTotal  int64
	MnemonicOpsErrors int64
	DerivationsTotal  int64
	DerivationErrors  int64
	AddressesTotal    int64
	AddressesErrors   int64
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		MnemonicOpsTotal:  m.mnemonicOpsTotal.Load(),
		MnemonicOpsErrors: m.mnemonicOpsErrors.Load(),
		DerivationsTotal:  m.derivationsTotal.Load(),
		DerivationErrors:  m.derivationErrors.Load(),
		AddressesTotal:    m.addressesTotal.Load(),
		AddressesErrors:   m.addressesErrors.Load(),
	}
}

// DerivationAvgMs returns the average derivation latency in
// milliseconds. Returns 0 if no derivations have run.
func (m *Metrics) DerivationAvgMs() float64 {
	total := m.derivationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.derivationDuration.Load()) / float64(total) / 1e6
}

// Reset resets all metrics to zero.
// Useful for testing.
func (m *Metrics) Reset() {
	m.mnemonicOpsTotal.Store(0)
	m.mnemonicOpsErrors.Store(0)
	m.derivationsTotal.Store(0)
	m.derivationErrors.Store(0)
	m.derivationDuration.Store(0)
	m.addressesTotal.Store(0)
	m.addressesErrors.Store(0)
}
