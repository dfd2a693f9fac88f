// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"context"
	"net/http"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"
)

var (
	mopeProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mope_processed_total",
		Help: "Number of MOPE overlap filters applied so far.",
	})
	automorphismProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "automorphism_processed_total",
		Help: "Number of automorphisms processed by the Burnside aggregator so far.",
	})
	partitionProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partition_processed_total",
		Help: "Number of memory-partitioned driver partitions completed so far.",
	})
)

// metricsExporter runs the Prometheus scrape endpoint on its own listener
// goroutine: this is the one place in the ambient layer that spawns a
// goroutine, and it never feeds state back into the synchronous core
// pipeline — it only serves scrapes of counters the pipeline updates.
type metricsExporter struct {
	server *http.Server
}

func startMetricsExporter(addr string) *metricsExporter {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			klog.Warningf("metrics exporter stopped: %v", err)
		}
	}()
	klog.Infof("serving Prometheus metrics on %s/metrics", addr)
	return &metricsExporter{server: server}
}

func (e *metricsExporter) stop() {
	if e == nil {
		return
	}
	_ = e.server.Shutdown(context.Background())
}

// buildProgressFunc returns the ProgressFunc passed into the core engine:
// it logs every advance mark via klog and, when exporter is non-nil, also
// increments the matching Prometheus counter. The core signature it
// satisfies (cntun.ProgressFunc) stays a plain function type; Prometheus
// never appears in the core packages themselves.
func buildProgressFunc(runID string, exporter *metricsExporter) cntun.ProgressFunc {
	return func(phase string, current, total int) {
		klog.V(1).Infof("run %s: %s %d/%d", runID, phase, current, total)
		if exporter == nil {
			return
		}
		switch phase {
		case "mope":
			mopeProcessedTotal.Inc()
		case "automorphism":
			automorphismProcessedTotal.Inc()
		case "partition":
			partitionProcessedTotal.Inc()
		}
	}
}
