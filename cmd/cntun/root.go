// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"flag"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

var (
	flagConfigFile  string
	flagMetricsAddr string
	flagVerbose     bool

	cliConfig CLIConfig

	rootCmd = &cobra.Command{
		Use:   "cntun",
		Short: "Count spanning trees, non-overlapping unfoldings, and their isomorphism classes",
		Long: `cntun builds a zero-suppressed decision diagram of the spanning trees of a
polyhedron's 1-skeleton graph, optionally filters out overlapping edge
unfoldings, and optionally aggregates the result over an automorphism group
via Burnside's lemma.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadCLIConfig(flagConfigFile)
			if err != nil {
				return err
			}
			cliConfig = cfg
			if flagVerbose {
				fs := flag.NewFlagSet("klog", flag.ContinueOnError)
				klog.InitFlags(fs)
				if err := fs.Set("v", "2"); err != nil {
					return err
				}
				klog.V(2).Info("verbose logging enabled")
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "optional YAML file of default tuning knobs")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "optional host:port to serve Prometheus metrics on")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose (klog V(2)) logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
}

// newRunContext builds the per-invocation RunContext threaded through the
// ambient layer: a fresh UUID run ID, the progress sink (fanning out to
// klog and, if --metrics-addr was given, Prometheus counters), and nothing
// else — the core engine packages never see this type.
func newRunContext(phaseName string) *RunContext {
	rc := &RunContext{RunID: uuid.NewString()}
	var exporter *metricsExporter
	if flagMetricsAddr != "" {
		exporter = startMetricsExporter(flagMetricsAddr)
	}
	rc.progress = buildProgressFunc(rc.RunID, exporter)
	rc.exporter = exporter
	return rc
}
