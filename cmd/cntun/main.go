// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("cntun", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")

	if err := rootCmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(exitCodeFor(err))
	}
	klog.Flush()
}
