// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ReadMopeFile parses a MOPE list: one JSON object per line of the form
// {"edges": [i1, i2, ...]}, 0-based edge indices into the graph file. Each
// edge index is checked against edges (the graph's edge count). Empty
// lines and duplicate edges within one line are semantic warnings, not
// errors: processing continues, and one warning string per occurrence is
// returned alongside the parsed mopes. This package never logs the
// warnings itself (klog stays confined to cmd/cntun); callers surface
// them however their output format requires.
func ReadMopeFile(path string, edges int) ([][]int, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, schemaErrorf(path, 0, "cannot open mope file: %v", err)
	}
	defer f.Close()
	return readMopes(f, path, edges)
}

type mopeLine struct {
	Edges []int `json:"edges" validate:"required"`
}

func readMopes(r io.Reader, name string, edges int) ([][]int, []string, error) {
	var mopes [][]int
	var warnings []string
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		if len(bufTrim(line)) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s:%d: empty mope line skipped", name, lineno))
			continue
		}
		var entry mopeLine
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, nil, schemaErrorf(name, lineno, "malformed mope line: %v", err)
		}
		if err := validate.Struct(entry); err != nil {
			return nil, nil, schemaErrorf(name, lineno, "invalid mope line: %v", err)
		}
		seen := make(map[int]bool, len(entry.Edges))
		for _, e := range entry.Edges {
			if e < 0 || e >= edges {
				return nil, nil, schemaErrorf(name, lineno, "edge index %d out of range [0,%d)", e, edges)
			}
			if seen[e] {
				warnings = append(warnings, fmt.Sprintf("%s:%d: duplicate edge index %d within mope", name, lineno, e))
			}
			seen[e] = true
		}
		mopes = append(mopes, entry.Edges)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, schemaErrorf(name, lineno, "read error: %v", err)
	}
	return mopes, warnings, nil
}

func bufTrim(b []byte) []byte {
	i, j := 0, len(b)
	for i < j && (b[i] == ' ' || b[i] == '\t' || b[i] == '\r') {
		i++
	}
	for j > i && (b[j-1] == ' ' || b[j-1] == '\t' || b[j-1] == '\r') {
		j--
	}
	return b[i:j]
}

// AutomorphismList is the parsed form of an Automorphism list JSON file.
type AutomorphismList struct {
	GroupOrder       int     `json:"group_order" validate:"required,gt=0"`
	EdgePermutations [][]int `json:"edge_permutations" validate:"required,min=1"`
	ZeroFlags        []bool  `json:"zero_flags,omitempty"`
}

// ReadAutomorphismFile parses and validates an Automorphism list file,
// checking every permutation has length edges and that the identity
// permutation is present (required: an empty automorphism list, or one
// missing the identity, is an input schema error).
func ReadAutomorphismFile(path string, edges int) (AutomorphismList, error) {
	f, err := os.Open(path)
	if err != nil {
		return AutomorphismList{}, schemaErrorf(path, 0, "cannot open automorphism file: %v", err)
	}
	defer f.Close()
	return readAutomorphisms(f, path, edges)
}

func readAutomorphisms(r io.Reader, name string, edges int) (AutomorphismList, error) {
	var list AutomorphismList
	dec := json.NewDecoder(r)
	if err := dec.Decode(&list); err != nil {
		return AutomorphismList{}, schemaErrorf(name, 0, "malformed automorphism file: %v", err)
	}
	if err := validate.Struct(list); err != nil {
		return AutomorphismList{}, schemaErrorf(name, 0, "invalid automorphism file: %v", err)
	}
	if list.ZeroFlags != nil && len(list.ZeroFlags) != len(list.EdgePermutations) {
		return AutomorphismList{}, schemaErrorf(name, 0, "zero_flags has %d entries, expected %d", len(list.ZeroFlags), len(list.EdgePermutations))
	}
	foundIdentity := false
	for k, perm := range list.EdgePermutations {
		if len(perm) != edges {
			return AutomorphismList{}, schemaErrorf(name, 0, "edge_permutations[%d] has length %d, expected %d", k, len(perm), edges)
		}
		if isIdentity(perm) {
			foundIdentity = true
		}
	}
	if !foundIdentity {
		return AutomorphismList{}, schemaErrorf(name, 0, "edge_permutations must include the identity permutation")
	}
	return list, nil
}

// Phase4Result is the unfiltered spanning-tree count produced by one run.
type Phase4Result struct {
	BuildTimeMs       int64  `json:"build_time_ms"`
	SpanningTreeCount string `json:"spanning_tree_count"`
}

// Phase5Result is the overlap-filtered count, present only when at least
// one MOPE was supplied.
type Phase5Result struct {
	FilterApplied       bool   `json:"filter_applied"`
	NumMopes            int    `json:"num_mopes,omitempty"`
	SubsetTimeMs        int64  `json:"subset_time_ms,omitempty"`
	NonOverlappingCount string `json:"non_overlapping_count,omitempty"`
}

// Phase6Result is the Burnside aggregation, present only when an
// automorphism list was supplied.
type Phase6Result struct {
	BurnsideApplied    bool     `json:"burnside_applied"`
	GroupOrder         int      `json:"group_order,omitempty"`
	BurnsideTimeMs     int64    `json:"burnside_time_ms,omitempty"`
	BurnsideSum        string   `json:"burnside_sum,omitempty"`
	NonisomorphicCount string   `json:"nonisomorphic_count,omitempty"`
	InvariantCounts    []string `json:"invariant_counts,omitempty"`
}

// Result is the JSON object produced by one full run.
type Result struct {
	InputFile  string       `json:"input_file"`
	Vertices   int          `json:"vertices"`
	Edges      int          `json:"edges"`
	Phase4     Phase4Result `json:"phase4"`
	Phase5     Phase5Result `json:"phase5"`
	Phase6     Phase6Result `json:"phase6"`
	SplitDepth *int         `json:"split_depth,omitempty"`
	RunID      string       `json:"run_id,omitempty"`
}

// WriteResult encodes r as indented JSON to w.
func WriteResult(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
