package app

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"subgraphsolver/model"
)

// parsedGraph is the common shape both ingestion formats reduce to.
type parsedGraph struct {
	size      int
	edges     []model.Edge
	lessThans [][2]int
	linkCount int
	hasLabels bool
}

func parseGraph(r io.Reader, format string) (parsedGraph, error) {
	switch format {
	case "", "lad":
		size, edges, err := model.ParseLAD(r)
		return parsedGraph{size: size, edges: edges}, err
	case "prolog":
		size, edges, lessThans, linkCount, hasLabels, err := model.ParsePrologFacts(r)
		return parsedGraph{size: size, edges: edges, lessThans: lessThans, linkCount: linkCount, hasLabels: hasLabels}, err
	default:
		return parsedGraph{}, errors.Errorf("unknown graph format %q", format)
	}
}

// LoadModel reads the pattern and target graph files and builds a
// Model from them. The pattern file's less_than/links facts (if the
// format carries them) win over the target's.
func LoadModel(patternPath, targetPath string, opts Options) (*model.Model, error) {
	patternFile, err := os.Open(patternPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening pattern graph")
	}
	defer patternFile.Close()

	targetFile, err := os.Open(targetPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening target graph")
	}
	defer targetFile.Close()

	return LoadModelFromReaders(patternFile, targetFile, opts)
}

// LoadModelFromReaders is LoadModel without the filesystem, used by
// the HTTP server which reads graphs out of a request body.
func LoadModelFromReaders(patternR, targetR io.Reader, opts Options) (*model.Model, error) {
	pattern, err := parseGraph(patternR, opts.Format)
	if err != nil {
		return nil, errors.Wrap(err, "parsing pattern graph")
	}
	target, err := parseGraph(targetR, opts.Format)
	if err != nil {
		return nil, errors.Wrap(err, "parsing target graph")
	}

	maxGraphs := opts.MaxGraphs
	if maxGraphs <= 0 {
		// spec.md budgets for max_graphs > 1; the distance <= 2 filter
		// graph (graph 1) is the cheapest useful default.
		maxGraphs = 2
	}

	return model.New(model.Config{
		Directed:      opts.Directed,
		HasEdgeLabels: pattern.hasLabels || target.hasLabels,
		MaxGraphs:     maxGraphs,
		LinkCount:     pattern.linkCount,
		PatternSize:   pattern.size,
		TargetSize:    target.size,
		PatternEdges:  pattern.edges,
		TargetEdges:   target.edges,
		LessThans:     pattern.lessThans,
	}), nil
}
