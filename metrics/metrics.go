// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - database operation meters for prometheus
//
// A nil *DatabaseMetrics is valid and records nothing, so the storage
// engine calls it unconditionally.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "statedb"
	subsystem = "database"
)

// sizes from 16 bytes to 16 MiB
var byteBuckets = prometheus.ExponentialBuckets(16, 4, 11)

// DatabaseMetrics - read/write counters and byte size histograms
type DatabaseMetrics struct {
	ReadMeter    prometheus.Counter
	WriteMeter   prometheus.Counter
	BytesRead    prometheus.Histogram
	BytesWritten prometheus.Histogram
}

// New - create an unregistered set of meters
func New() *DatabaseMetrics {
	return &DatabaseMetrics{
		ReadMeter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "read_meter_total",
			Help:      "Number of database read operations, iterated items count individually.",
		}),
		WriteMeter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "write_meter_total",
			Help:      "Number of database write operations, a batch counts once.",
		}),
		BytesRead: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_read",
			Help:      "Size in bytes of each database read.",
			Buckets:   byteBuckets,
		}),
		BytesWritten: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_written",
			Help:      "Size in bytes of each database write.",
			Buckets:   byteBuckets,
		}),
	}
}

// Register - attach all meters to a registry
func (m *DatabaseMetrics) Register(registerer prometheus.Registerer) error {
	if nil == m {
		return nil
	}
	for _, c := range []prometheus.Collector{m.ReadMeter, m.WriteMeter, m.BytesRead, m.BytesWritten} {
		if err := registerer.Register(c); nil != err {
			return err
		}
	}
	return nil
}

// Read - count a read operation without a size
func (m *DatabaseMetrics) Read() {
	if nil == m {
		return
	}
	m.ReadMeter.Inc()
}

// ReadBytes - count a read and record its size
func (m *DatabaseMetrics) ReadBytes(n int) {
	if nil == m {
		return
	}
	m.ReadMeter.Inc()
	m.BytesRead.Observe(float64(n))
}

// ObserveRead - record the size of an already counted read
func (m *DatabaseMetrics) ObserveRead(n int) {
	if nil == m {
		return
	}
	m.BytesRead.Observe(float64(n))
}

// Write - count a write operation without a size
func (m *DatabaseMetrics) Write() {
	if nil == m {
		return
	}
	m.WriteMeter.Inc()
}

// WriteBytes - count a write and record its size
func (m *DatabaseMetrics) WriteBytes(n int) {
	if nil == m {
		return
	}
	m.WriteMeter.Inc()
	m.BytesWritten.Observe(float64(n))
}
