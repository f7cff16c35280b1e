package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseLAD reads the LAD-style line format: the first line is the
// vertex count, and line i (0-indexed thereafter) lists the degree of
// vertex i followed by that many neighbour indices. There is no
// library in the pack for this plain adjacency-list text format, so
// it is read directly with bufio.Scanner.
func ParseLAD(r io.Reader) (size int, edges []Edge, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !scanner.Scan() {
		return 0, nil, errors.New("lad: empty input, expected a vertex count line")
	}
	size, err = strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, nil, errors.Wrap(err, "lad: parsing vertex count")
	}

	for v := 0; v < size; v++ {
		if !scanner.Scan() {
			return 0, nil, errors.Errorf("lad: expected adjacency line for vertex %d, got EOF", v)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return 0, nil, errors.Errorf("lad: blank adjacency line for vertex %d", v)
		}
		degree, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, nil, errors.Wrapf(err, "lad: parsing degree for vertex %d", v)
		}
		if len(fields)-1 != degree {
			return 0, nil, errors.Errorf("lad: vertex %d declares degree %d but lists %d neighbours", v, degree, len(fields)-1)
		}
		for _, f := range fields[1:] {
			w, err := strconv.Atoi(f)
			if err != nil {
				return 0, nil, errors.Wrapf(err, "lad: parsing neighbour of vertex %d", v)
			}
			edges = append(edges, Edge{U: v, V: w})
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, nil, errors.Wrap(err, "lad: scanning input")
	}
	return size, edges, nil
}
