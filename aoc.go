// Package aoc runs Advent of Code solvers against the samples embedded in
// their own source and then against input.txt.
package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// InputFile is the puzzle input read by Run, relative to the working
// directory.
const InputFile = "input.txt"

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples declared in the doc comments of src,
// keyed by function name. A sample without input reuses the input of the
// previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. It gives a part access to the input it is
// currently being run against.
type Puzzle struct {
	SampleMode bool

	input   []byte
	solver  partSolver
	samples map[string]sample
}

// Input returns the raw input of the running part. Callers must not modify
// it.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.sample().input)
	}
	return p.input
}

// Lines returns the input with surrounding whitespace removed, split into
// lines.
func (p *Puzzle) Lines() []string {
	return Lines(string(p.Input()))
}

// ForLinesY calls onLine for each line of input, stopping at the first
// error. The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	for y, line := range p.Lines() {
		if err := onLine(y, line); err != nil {
			return &ParseError{Line: y + 1, Text: line, Err: err}
		}
	}
	return nil
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

func (p *Puzzle) sample() sample {
	return p.samples[p.solver.Name]
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// installPuzzle points the Puzzle field of the struct x points to at p.
func installPuzzle(x any, p *Puzzle) error {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	f := rv.Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T does not embed *aoc.Puzzle", x)
	}
	f.Set(reflect.ValueOf(p))
	return nil
}

// extractMethods finds the methods of the struct pointed to by x named
// D{day}p{part}. They must have the signature func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("method %s has type %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	if len(byDays) == 0 {
		return nil, fmt.Errorf("solver %T has no D{day}p{part} methods", x)
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type runner struct {
	p       *Puzzle
	days    []day
	samples map[string]sample
	out     io.Writer
}

func newRunner(src []byte, slvr any, out io.Writer) (*runner, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{samples: samples}
	if err := installPuzzle(slvr, p); err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	r := &runner{
		p:       p,
		samples: samples,
		out:     out,
	}
	for _, d := range dayNums {
		r.days = append(r.days, days[d])
	}
	return r, nil
}

func (r *runner) checkSamples() error {
	p := r.p
	p.SampleMode = true
	for _, d := range r.days {
		for _, ps := range d.parts {
			p.solver = ps
			s, ok := r.samples[ps.Name]
			if !ok {
				return fmt.Errorf("no sample found for %v", ps.Name)
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				return fmt.Errorf("day %d part %s sample: %w", d.day, ps.Part, err)
			}
			if fmt.Sprint(got) != s.want {
				return fmt.Errorf("day %d part %s sample: got %v; want %v", d.day, ps.Part, got, s.want)
			}
			log.Printf("day %d part %s sample: %v ✅ (%v)", d.day, ps.Part, got, time.Since(t0).Round(time.Microsecond))
		}
	}
	return nil
}

func (r *runner) solve(input []byte) error {
	p := r.p
	p.SampleMode = false
	p.input = input
	for _, d := range r.days {
		for _, ps := range d.parts {
			p.solver = ps
			before := deephash.Hash(&p.input)
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, err)
			}
			if deephash.Hash(&p.input) != before {
				return fmt.Errorf("day %d part %s modified its input", d.day, ps.Part)
			}
			log.Printf("day %d part %s took %v", d.day, ps.Part, time.Since(t0).Round(time.Microsecond))
			fmt.Fprintf(r.out, "Part %s: %v\n", ps.Part, got)
		}
	}
	return nil
}

// Check runs every part of slvr against the samples declared in src.
func Check(src []byte, slvr any) error {
	r, err := newRunner(src, slvr, io.Discard)
	if err != nil {
		return err
	}
	return r.checkSamples()
}

// Run checks every part of slvr against the samples declared in src and
// then solves InputFile, printing one "Part N: answer" line per part.
func Run(src []byte, slvr any) error {
	return run(src, slvr, InputFile, os.Stdout)
}

func run(src []byte, slvr any, inputFile string, out io.Writer) error {
	r, err := newRunner(src, slvr, out)
	if err != nil {
		return err
	}
	if err := r.checkSamples(); err != nil {
		return err
	}
	input, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return r.solve(input)
}
