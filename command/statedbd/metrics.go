// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/statedb/metrics"
)

const shutdownTimeout = 5 * time.Second

// prometheus exporter for the database meters
type metricsServer struct {
	log      *logger.L
	listener net.Listener
	server   *http.Server
}

// create a registry holding the database meters plus the go and
// process collectors then bind the listen address
func newMetricsServer(listen string, m *metrics.DatabaseMetrics) (*metricsServer, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := m.Register(registry); nil != err {
		return nil, err
	}

	listener, err := net.Listen("tcp", listen)
	if nil != err {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &metricsServer{
		log:      logger.New("metrics"),
		listener: listener,
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Address - the bound address
func (s *metricsServer) Address() string {
	return s.listener.Addr().String()
}

// Run - serve until shutdown
func (s *metricsServer) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Infof("listening on: %s", s.Address())

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.server.Serve(s.listener)
		if nil != err && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("serve error: %s", err)
		}
	}()

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); nil != err {
		s.log.Warnf("shutdown error: %s", err)
	}
	<-done
	s.log.Info("stopped")
}
