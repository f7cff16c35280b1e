// Package proof implements homomorphism.Proof sinks: JSONLines for
// machine-readable proof logs, TemplateLog for human-readable ones.
package proof

import (
	"encoding/json"
	"io"

	"subgraphsolver/homomorphism"
)

// JSONLines writes one JSON object per search event, in the
// json.NewEncoder(w).Encode(...) idiom used for API responses
// elsewhere in this module.
type JSONLines struct {
	enc *json.Encoder
}

func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

type line struct {
	Event     string        `json:"event"`
	Depth     int           `json:"depth,omitempty"`
	Pattern   *vertexJSON   `json:"pattern,omitempty"`
	Target    *vertexJSON   `json:"target,omitempty"`
	Trail     [][2]int      `json:"trail,omitempty"`
	IsUnsat   bool          `json:"isUnsat,omitempty"`
	Solution  [][2]vertexJSON `json:"solution,omitempty"`
}

type vertexJSON struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func named(v homomorphism.NamedVertex) *vertexJSON {
	return &vertexJSON{Index: v.Index, Name: v.Name}
}

func (j *JSONLines) write(l line) {
	// A write failure here (broken pipe, closed file) is not something
	// the search core can act on; dropping the line keeps propagation
	// going instead of panicking mid-search.
	_ = j.enc.Encode(l)
}

func (j *JSONLines) Guessing(depth int, p, t homomorphism.NamedVertex) {
	j.write(line{Event: "guessing", Depth: depth, Pattern: named(p), Target: named(t)})
}

func (j *JSONLines) PropagationFailure(trail [][2]int, p, t homomorphism.NamedVertex) {
	j.write(line{Event: "propagation_failure", Trail: trail, Pattern: named(p), Target: named(t)})
}

func (j *JSONLines) StartLevel(depth int) {
	j.write(line{Event: "start_level", Depth: depth})
}

func (j *JSONLines) BackUpToLevel(depth int) {
	j.write(line{Event: "back_up_to_level", Depth: depth})
}

func (j *JSONLines) IncorrectGuess(trail [][2]int, isUnsat bool) {
	j.write(line{Event: "incorrect_guess", Trail: trail, IsUnsat: isUnsat})
}

func (j *JSONLines) ForgetLevel(depth int) {
	j.write(line{Event: "forget_level", Depth: depth})
}

func (j *JSONLines) PostSolution(solution []([2]homomorphism.NamedVertex)) {
	out := make([][2]vertexJSON, len(solution))
	for i, pair := range solution {
		out[i] = [2]vertexJSON{*named(pair[0]), *named(pair[1])}
	}
	j.write(line{Event: "post_solution", Solution: out})
}

func (j *JSONLines) OutOfGuesses(trail [][2]int) {
	j.write(line{Event: "out_of_guesses", Trail: trail})
}

func (j *JSONLines) PostRestartNogood(trail [][2]int) {
	j.write(line{Event: "post_restart_nogood", Trail: trail})
}

func (j *JSONLines) UnitPropagating(p, t homomorphism.NamedVertex) {
	j.write(line{Event: "unit_propagating", Pattern: named(p), Target: named(t)})
}

func (j *JSONLines) BackUpToTop() {
	j.write(line{Event: "back_up_to_top"})
}
