// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"
)

var (
	flagAutomorphisms string
	flagSplitDepth    int

	runCmd = &cobra.Command{
		Use:   "run <graph_file> [mope_file]",
		Short: "Count spanning trees, non-overlapping unfoldings, and isomorphism classes",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runRun,
	}
)

func init() {
	runCmd.Flags().StringVar(&flagAutomorphisms, "automorphisms", "", "JSON file of group_order/edge_permutations/zero_flags")
	runCmd.Flags().IntVar(&flagSplitDepth, "split-depth", 0, "partition the build on the first N edges (0 = unpartitioned)")
}

func runRun(cmd *cobra.Command, args []string) error {
	rc := newRunContext("run")
	defer rc.Close()
	klog.Infof("run %s: starting", rc.RunID)

	graphPath := args[0]
	g, err := cntun.ReadGraphFile(graphPath)
	if err != nil {
		return err
	}

	var mopes [][]int
	if len(args) == 2 {
		var warnings []string
		mopes, warnings, err = cntun.ReadMopeFile(args[1], g.NumEdges())
		if err != nil {
			return err
		}
		for _, w := range warnings {
			klog.Warningf("%s", w)
		}
	}

	var automorphisms *cntun.AutomorphismList
	if flagAutomorphisms != "" {
		list, aerr := cntun.ReadAutomorphismFile(flagAutomorphisms, g.NumEdges())
		if aerr != nil {
			return aerr
		}
		if list.GroupOrder != len(list.EdgePermutations) {
			klog.Warningf("group_order (%d) differs from the number of provided permutations (%d); proceeding with the permutations actually present", list.GroupOrder, len(list.EdgePermutations))
		}
		automorphisms = &list
	}

	splitDepth := flagSplitDepth
	if splitDepth == 0 {
		splitDepth = cliConfig.SplitDepth
	}
	if splitDepth < 0 || splitDepth > 30 || splitDepth >= g.NumEdges() {
		return fmt.Errorf("split-depth must satisfy 0 <= N < %d and N <= 30, got %d", g.NumEdges(), splitDepth)
	}

	var result cntun.Result
	var runErr error
	if splitDepth == 0 {
		result, runErr = cntun.Run(g, mopes, automorphisms, rc.progress, cliConfig.Options()...)
	} else {
		var perms [][]int
		var zeroFlags []bool
		groupOrder := 0
		if automorphisms != nil {
			perms = automorphisms.EdgePermutations
			zeroFlags = automorphisms.ZeroFlags
			groupOrder = automorphisms.GroupOrder
		}
		partResult, perr := cntun.RunPartitioned(g, splitDepth, mopes, perms, zeroFlags, groupOrder, rc.progress, cliConfig.Options()...)
		result = partitionResultToResult(g, partResult)
		runErr = perr
	}

	result.InputFile = graphPath
	result.RunID = rc.RunID
	if splitDepth > 0 {
		result.SplitDepth = &splitDepth
	}

	if err := cntun.WriteResult(os.Stdout, result); err != nil {
		return err
	}
	return runErr
}

func partitionResultToResult(g *cntun.Graph, p cntun.PartitionResult) cntun.Result {
	return cntun.Result{
		Vertices: g.NumVertices(),
		Edges:    g.NumEdges(),
		Phase4: cntun.Phase4Result{
			SpanningTreeCount: p.SpanningTreeCount,
		},
		Phase5: cntun.Phase5Result{
			FilterApplied:       p.FilterApplied,
			NonOverlappingCount: p.NonOverlappingCount,
		},
		Phase6: cntun.Phase6Result{
			BurnsideApplied:    p.BurnsideApplied,
			GroupOrder:         p.GroupOrder,
			BurnsideSum:        p.BurnsideSum,
			NonisomorphicCount: p.NonisomorphicCount,
			InvariantCounts:    p.InvariantCounts,
		},
	}
}
