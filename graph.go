// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Edge is a single undirected edge, identified by its position in the
// input edge order; parallel edges are permitted and distinguished by
// that position.
type Edge struct {
	U, V int
}

// Graph is an ordered edge list over vertex identifiers 0..V-1. Edge order
// is fixed at load time: the ZDD level of edge k is E-k, with the root at
// level E and both terminals at level 0.
type Graph struct {
	edges    []Edge
	vertices int
}

// NumEdges returns E.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NumVertices returns V, which is 1 + the maximum vertex identifier seen.
func (g *Graph) NumVertices() int { return g.vertices }

// Edge returns the k-th edge in input order.
func (g *Graph) Edge(k int) Edge { return g.edges[k] }

// Edges returns the full edge slice in input order. Callers must treat it
// as read-only: Graph is immutable after load.
func (g *Graph) Edges() []Edge { return g.edges }

func (g *Graph) String() string {
	return fmt.Sprintf("Graph(V=%d, E=%d)", g.vertices, len(g.edges))
}

// ReadGraph parses a plain-text edge list from r: one "u v" pair per line,
// whitespace-separated, no header, vertices as non-negative integers.
func ReadGraph(r io.Reader) (*Graph, error) {
	return readGraphNamed(r, "<graph>")
}

// ReadGraphFile opens path and parses it as a graph file.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, schemaErrorf(path, 0, "cannot open graph file: %v", err)
	}
	defer f.Close()
	return readGraphNamed(f, path)
}

func readGraphNamed(r io.Reader, name string) (*Graph, error) {
	g := &Graph{}
	scanner := bufio.NewScanner(r)
	lineno := 0
	maxVertex := -1
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, schemaErrorf(name, lineno, "expected two whitespace-separated vertex ids, got %q", line)
		}
		u, erru := strconv.Atoi(fields[0])
		if erru != nil || u < 0 {
			return nil, schemaErrorf(name, lineno, "invalid vertex id %q", fields[0])
		}
		v, errv := strconv.Atoi(fields[1])
		if errv != nil || v < 0 {
			return nil, schemaErrorf(name, lineno, "invalid vertex id %q", fields[1])
		}
		g.edges = append(g.edges, Edge{U: u, V: v})
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, schemaErrorf(name, lineno, "read error: %v", err)
	}
	if len(g.edges) == 0 {
		return nil, schemaErrorf(name, 0, "graph file has no edges")
	}
	g.vertices = maxVertex + 1
	return g, nil
}
