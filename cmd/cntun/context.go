// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"

// RunContext carries the ambient values of one CLI invocation: a run ID,
// the progress sink, and the optional metrics exporter. It is constructed
// once per command and passed only as plain values (a ProgressFunc, an
// Option slice) into the core engine — the core packages never import
// this type.
type RunContext struct {
	RunID    string
	progress cntun.ProgressFunc
	exporter *metricsExporter
}

// Close stops the metrics exporter, if one was started.
func (rc *RunContext) Close() {
	if rc.exporter != nil {
		rc.exporter.stop()
	}
}
