package proof

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"subgraphsolver/homomorphism"
)

// TemplateLog renders a human-readable proof trace through compiled
// text/template templates: templates are parsed once at package init
// and templateToString panics on an Execute error, since the only way
// that can fail is a bug in the template or data shape, not bad input.
type TemplateLog struct {
	w io.Writer
}

func NewTemplateLog(w io.Writer) *TemplateLog {
	return &TemplateLog{w: w}
}

func joinInt(s []int, prefix, sep string) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = prefix + strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func newTemplate(name, content string) *template.Template {
	tmpl, err := template.New(name).Funcs(template.FuncMap{"joinInt": joinInt}).Parse(content)
	if err != nil {
		panic(err)
	}
	return tmpl
}

func templateToString(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}

var guessingTemplate = newTemplate("guessing", "[{{ .Depth }}] guess {{ .PatternName }} -> {{ .TargetName }}\n")
var propagationFailureTemplate = newTemplate("propagation-failure",
	"propagation failed at {{ .PatternName }} -> {{ .TargetName }} after [{{ joinInt .Trail \"\" \",\" }}]\n")
var levelTemplate = newTemplate("level", "{{ .Action }} level {{ .Depth }}\n")
var incorrectGuessTemplate = newTemplate("incorrect-guess",
	"incorrect guess, trail=[{{ joinInt .Trail \"\" \",\" }}] unsat={{ .IsUnsat }}\n")
var trailOnlyTemplate = newTemplate("trail-only", "{{ .Action }} trail=[{{ joinInt .Trail \"\" \",\" }}]\n")
var unitPropagatingTemplate = newTemplate("unit-propagating", "unit propagate {{ .PatternName }} -> {{ .TargetName }}\n")
var solutionTemplate = newTemplate("solution", "solution: {{ range .Pairs }}{{ . }} {{ end }}\n")
var plainTemplate = newTemplate("plain", "{{ . }}\n")

func flattenTrail(trail [][2]int) []int {
	out := make([]int, 0, len(trail)*2)
	for _, pair := range trail {
		out = append(out, pair[0], pair[1])
	}
	return out
}

func (t *TemplateLog) emit(s string) {
	io.WriteString(t.w, s)
}

func (t *TemplateLog) Guessing(depth int, p, q homomorphism.NamedVertex) {
	t.emit(templateToString(guessingTemplate, struct {
		Depth                  int
		PatternName, TargetName string
	}{depth, p.Name, q.Name}))
}

func (t *TemplateLog) PropagationFailure(trail [][2]int, p, q homomorphism.NamedVertex) {
	t.emit(templateToString(propagationFailureTemplate, struct {
		Trail                   []int
		PatternName, TargetName string
	}{flattenTrail(trail), p.Name, q.Name}))
}

func (t *TemplateLog) StartLevel(depth int) {
	t.emit(templateToString(levelTemplate, struct {
		Action string
		Depth  int
	}{"start", depth}))
}

func (t *TemplateLog) BackUpToLevel(depth int) {
	t.emit(templateToString(levelTemplate, struct {
		Action string
		Depth  int
	}{"back up to", depth}))
}

func (t *TemplateLog) IncorrectGuess(trail [][2]int, isUnsat bool) {
	t.emit(templateToString(incorrectGuessTemplate, struct {
		Trail   []int
		IsUnsat bool
	}{flattenTrail(trail), isUnsat}))
}

func (t *TemplateLog) ForgetLevel(depth int) {
	t.emit(templateToString(levelTemplate, struct {
		Action string
		Depth  int
	}{"forget", depth}))
}

func (t *TemplateLog) PostSolution(solution []([2]homomorphism.NamedVertex)) {
	pairs := make([]string, len(solution))
	for i, pair := range solution {
		pairs[i] = fmt.Sprintf("%s->%s", pair[0].Name, pair[1].Name)
	}
	t.emit(templateToString(solutionTemplate, struct{ Pairs []string }{pairs}))
}

func (t *TemplateLog) OutOfGuesses(trail [][2]int) {
	t.emit(templateToString(trailOnlyTemplate, struct {
		Action string
		Trail  []int
	}{"out of guesses,", flattenTrail(trail)}))
}

func (t *TemplateLog) PostRestartNogood(trail [][2]int) {
	t.emit(templateToString(trailOnlyTemplate, struct {
		Action string
		Trail  []int
	}{"post restart nogood,", flattenTrail(trail)}))
}

func (t *TemplateLog) UnitPropagating(p, q homomorphism.NamedVertex) {
	t.emit(templateToString(unitPropagatingTemplate, struct {
		PatternName, TargetName string
	}{p.Name, q.Name}))
}

func (t *TemplateLog) BackUpToTop() {
	t.emit(templateToString(plainTemplate, "back up to top"))
}
