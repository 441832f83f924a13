// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	mega = 1048576
)

// source of engine statistics
type statistician interface {
	Stats() (string, error)
}

// background process reporting memory and engine statistics
type statsReporter struct {
	log    *logger.L
	engine statistician
	delay  time.Duration
}

func newStatsReporter(engine statistician, delay time.Duration) *statsReporter {
	return &statsReporter{
		log:    logger.New("stats"),
		engine: engine,
		delay:  delay,
	}
}

// Run - report once immediately then every delay until shutdown
func (s *statsReporter) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Info("starting…")

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

loop:
	for {
		s.report()
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		}
	}
	s.log.Info("stopped")
}

func (s *statsReporter) report() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
	} else {
		s.log.Debugf("memory: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	o := m.Sys / mega
	s.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, o)

	if nil == s.engine {
		return
	}
	stats, err := s.engine.Stats()
	if nil != err {
		s.log.Errorf("engine stats error: %s", err)
		return
	}
	s.log.Infof("engine:\n%s", stats)
}
