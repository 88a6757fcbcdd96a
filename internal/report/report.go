// Package report renders solve outcomes for people.
//
// Route nodes print 1-based by default ("Final route: 1 -> 2 -> ... -> 1"),
// or by label when the graph carries labels.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/tsp"
)

// Printer writes reports to an io.Writer. The zero value is not usable.
type Printer struct {
	w         io.Writer
	zeroBased bool
	stats     bool

	node  func(...interface{}) string
	cost  func(...interface{}) string
	fail  func(...interface{}) string
	faint func(...interface{}) string
}

// Option configures a Printer.
type Option func(*Printer)

// WithZeroBased prints raw node indices instead of 1-based numbers.
func WithZeroBased() Option {
	return func(p *Printer) { p.zeroBased = true }
}

// WithStats appends the algorithm and state count.
func WithStats() Option {
	return func(p *Printer) { p.stats = true }
}

// WithColor forces colored output on or off, regardless of the terminal.
func WithColor(on bool) Option {
	return func(p *Printer) {
		p.node = colorize(on, color.FgGreen)
		p.cost = colorize(on, color.FgYellow, color.Bold)
		p.fail = colorize(on, color.FgRed)
		p.faint = colorize(on, color.Faint)
	}
}

// New returns a Printer on w. Without WithColor, color follows
// color.NoColor (off when w is not a terminal or NO_COLOR is set).
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w}
	WithColor(!color.NoColor)(p)
	for _, fn := range opts {
		fn(p)
	}

	return p
}

func colorize(on bool, attrs ...color.Attribute) func(...interface{}) string {
	if !on {
		return fmt.Sprint
	}
	c := color.New(attrs...)
	c.EnableColor()

	return c.SprintFunc()
}

// Route prints the tour and its cost.
func (p *Printer) Route(g *graph.WeightedGraph, res tsp.Result) error {
	labels := g.Labels()
	names := make([]string, len(res.Tour))
	for i, v := range res.Tour {
		names[i] = p.node(p.name(labels, v))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Final route: %s\n", strings.Join(names, " -> "))
	fmt.Fprintf(&b, "Total route cost: %s\n", p.cost(FormatCost(res.Cost)))
	if p.stats {
		fmt.Fprintf(&b, "%s\n", p.faint(fmt.Sprintf("algorithm: %s, states: %d", res.Algorithm, res.States)))
	}
	_, err := io.WriteString(p.w, b.String())

	return err
}

// NoTour prints the infeasibility outcome.
func (p *Printer) NoTour() error {
	_, err := fmt.Fprintln(p.w, p.fail("No feasible tour"))

	return err
}

func (p *Printer) name(labels []string, v int) string {
	if labels != nil {
		return labels[v]
	}
	if p.zeroBased {
		return strconv.Itoa(v)
	}

	return strconv.Itoa(v + 1)
}

// FormatCost prints a cost with the shortest exact representation.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
