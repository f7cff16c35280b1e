package prolog_tool

import (
	"github.com/ichiban/prolog"
	"github.com/ichiban/prolog/engine"
	"github.com/pkg/errors"
)

// Logic wraps an embedded Prolog interpreter for consulting a program
// and running a single query against it.
type Logic struct {
	prolog *prolog.Interpreter
}

func NewProlog() *Logic {
	return &Logic{
		prolog: prolog.New(nil, nil),
	}
}

// ConsultAndCheck loads program, runs query, and reports whether it
// has at least one solution.
func (p *Logic) ConsultAndCheck(program string, query string) (bool, error) {
	if err := p.prolog.Exec(program); err != nil {
		return false, errors.Wrap(err, "consulting program")
	}
	solutions, err := p.prolog.Query(query)
	if err != nil {
		return false, errors.Wrap(err, "running query")
	}
	defer solutions.Close()

	return solutions.Next(), nil
}

// ConsultAndQuery1 loads program, runs query, and returns the first
// solution's variable bindings as strings.
func (p *Logic) ConsultAndQuery1(program string, query string) (bool, map[string]string, error) {
	if err := p.prolog.Exec(program); err != nil {
		return false, nil, errors.Wrap(err, "consulting program")
	}
	solutions, err := p.prolog.Query(query)
	if err != nil {
		return false, nil, errors.Wrap(err, "running query")
	}
	defer solutions.Close()

	if !solutions.Next() {
		return false, nil, nil
	}

	var bound = make(map[string]prolog.TermString)
	if err := solutions.Scan(&bound); err != nil {
		return false, nil, errors.Wrap(err, "scanning solution")
	}
	result := make(map[string]string, len(bound))
	for k, v := range bound {
		result[k] = string(v)
	}
	return true, result, nil
}

// ConsultAndQueryAllInts loads program, runs query, and returns the
// requested integer-valued variables for every solution in turn. It
// is meant for queries like "forbidden(P, T)" where every solution is
// a candidate deletion rather than a single yes/no answer.
func (p *Logic) ConsultAndQueryAllInts(program, query string, varNames []string) ([][]int64, error) {
	if err := p.prolog.Exec(program); err != nil {
		return nil, errors.Wrap(err, "consulting program")
	}
	solutions, err := p.prolog.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "running query")
	}
	defer solutions.Close()

	var rows [][]int64
	for solutions.Next() {
		bound := make(map[string]engine.Integer)
		if err := solutions.Scan(&bound); err != nil {
			return nil, errors.Wrap(err, "scanning solution")
		}
		row := make([]int64, len(varNames))
		for i, name := range varNames {
			row[i] = int64(bound[name])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
