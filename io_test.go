// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"bytes"
	"strings"
	"testing"
)

//********************************************************************************************

func TestReadMopesBasic(t *testing.T) {
	mopes, warnings, err := readMopes(strings.NewReader("{\"edges\":[0,1]}\n\n{\"edges\":[2]}\n"), "<test>", 4)
	if err != nil {
		t.Fatalf("readMopes: unexpected error %v", err)
	}
	if len(mopes) != 2 {
		t.Fatalf("readMopes: expected 2 entries, actual %d", len(mopes))
	}
	if mopes[0][0] != 0 || mopes[0][1] != 1 {
		t.Errorf("readMopes: expected first entry [0 1], actual %v", mopes[0])
	}
	if mopes[1][0] != 2 {
		t.Errorf("readMopes: expected second entry [2], actual %v", mopes[1])
	}
	if len(warnings) != 1 {
		t.Fatalf("readMopes: expected 1 warning for the blank line, actual %d (%v)", len(warnings), warnings)
	}
}

func TestReadMopesEmptyLineWarns(t *testing.T) {
	_, warnings, err := readMopes(strings.NewReader("{\"edges\":[0]}\n   \n{\"edges\":[1]}\n"), "<test>", 4)
	if err != nil {
		t.Fatalf("readMopes: unexpected error %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("readMopes: expected 1 warning for the whitespace-only line, actual %d (%v)", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "empty mope line") {
		t.Errorf("readMopes: expected an empty-line warning, actual %q", warnings[0])
	}
}

func TestReadMopesDuplicateEdgeWarns(t *testing.T) {
	mopes, warnings, err := readMopes(strings.NewReader("{\"edges\":[0,1,0]}\n"), "<test>", 4)
	if err != nil {
		t.Fatalf("readMopes: unexpected error %v", err)
	}
	if len(mopes) != 1 || len(mopes[0]) != 3 {
		t.Fatalf("readMopes: expected the duplicate-bearing entry to survive intact, actual %v", mopes)
	}
	if len(warnings) != 1 {
		t.Fatalf("readMopes: expected 1 warning for the duplicate edge, actual %d (%v)", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "duplicate edge index 0") {
		t.Errorf("readMopes: expected a duplicate-edge warning naming index 0, actual %q", warnings[0])
	}
}

func TestReadMopesMalformedJSON(t *testing.T) {
	if _, _, err := readMopes(strings.NewReader("not json\n"), "<test>", 4); err == nil {
		t.Errorf("readMopes: expected error on malformed JSON")
	}
}

func TestReadMopesMissingField(t *testing.T) {
	if _, _, err := readMopes(strings.NewReader("{}\n"), "<test>", 4); err == nil {
		t.Errorf("readMopes: expected error on missing required edges field")
	}
}

func TestReadMopesOutOfRangeEdge(t *testing.T) {
	if _, _, err := readMopes(strings.NewReader("{\"edges\":[9]}\n"), "<test>", 4); err == nil {
		t.Errorf("readMopes: expected error on out-of-range edge index")
	}
}

func TestReadAutomorphismsBasic(t *testing.T) {
	body := `{"group_order":2,"edge_permutations":[[0,1],[1,0]]}`
	list, err := readAutomorphisms(strings.NewReader(body), "<test>", 2)
	if err != nil {
		t.Fatalf("readAutomorphisms: unexpected error %v", err)
	}
	if list.GroupOrder != 2 {
		t.Errorf("GroupOrder: expected 2, actual %d", list.GroupOrder)
	}
	if len(list.EdgePermutations) != 2 {
		t.Errorf("EdgePermutations: expected 2 entries, actual %d", len(list.EdgePermutations))
	}
}

func TestReadAutomorphismsMissingIdentity(t *testing.T) {
	body := `{"group_order":1,"edge_permutations":[[1,0]]}`
	if _, err := readAutomorphisms(strings.NewReader(body), "<test>", 2); err == nil {
		t.Errorf("readAutomorphisms: expected error when the identity permutation is absent")
	}
}

func TestReadAutomorphismsWrongPermutationLength(t *testing.T) {
	body := `{"group_order":1,"edge_permutations":[[0,1,2]]}`
	if _, err := readAutomorphisms(strings.NewReader(body), "<test>", 2); err == nil {
		t.Errorf("readAutomorphisms: expected error on wrong permutation length")
	}
}

func TestReadAutomorphismsZeroFlagsLengthMismatch(t *testing.T) {
	body := `{"group_order":2,"edge_permutations":[[0,1],[1,0]],"zero_flags":[false]}`
	if _, err := readAutomorphisms(strings.NewReader(body), "<test>", 2); err == nil {
		t.Errorf("readAutomorphisms: expected error on zero_flags length mismatch")
	}
}

func TestReadAutomorphismsZeroGroupOrderRejected(t *testing.T) {
	body := `{"group_order":0,"edge_permutations":[[0,1]]}`
	if _, err := readAutomorphisms(strings.NewReader(body), "<test>", 2); err == nil {
		t.Errorf("readAutomorphisms: expected error on group_order <= 0")
	}
}

func TestWriteResultRoundTrips(t *testing.T) {
	r := Result{
		InputFile: "graph.txt",
		Vertices:  4,
		Edges:     4,
		Phase4:    Phase4Result{BuildTimeMs: 10, SpanningTreeCount: "4"},
	}
	var buf bytes.Buffer
	if err := WriteResult(&buf, r); err != nil {
		t.Fatalf("WriteResult: unexpected error %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"spanning_tree_count": "4"`) {
		t.Errorf("WriteResult: expected spanning_tree_count field, actual output %s", out)
	}
	if !strings.Contains(out, `"input_file": "graph.txt"`) {
		t.Errorf("WriteResult: expected input_file field, actual output %s", out)
	}
}
