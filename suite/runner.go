package suite

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runner is a reference implementation of the external collaborator the
// core expects: it traverses a tree, calls Run on every node, honors each
// group's MaxConcurrency as the limit for that group's direct children,
// and aggregates outcomes without crashing on failed runs.
//
// Before/After ordering hints are read but deliberately not enforced; the
// core defines them as opaque scheduler hints.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// NodeFailure pairs a failed node's name with its captured error.
type NodeFailure struct {
	Name string
	Err  error
}

// Summary aggregates the terminal states of a finished tree.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Ignored int
	Todo    int
	Pending int

	Failures []NodeFailure
}

// Run executes the whole tree under root and returns the aggregated
// summary. A node's failed run is captured on the node and in the summary;
// it never aborts its siblings. Run returns a non-nil error only for a
// nil root or a cancelled context.
func (r *Runner) Run(ctx context.Context, root *Node) (*Summary, error) {
	if root == nil {
		return nil, &ValidationError{Value: root}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	r.runNode(ctx, root)

	s := &Summary{}
	for n := range root.All() {
		s.Total++
		switch n.State() {
		case StatePass:
			s.Passed++
		case StateFail:
			s.Failed++
			s.Failures = append(s.Failures, NodeFailure{Name: n.Name(), Err: n.Err()})
		case StateSkipped:
			s.Skipped++
		case StateIgnored:
			s.Ignored++
		case StateTodo:
			s.Todo++
		default:
			s.Pending++
		}
	}
	return s, ctx.Err()
}

// runNode runs n, then its children bounded by n's MaxConcurrency hint.
func (r *Runner) runNode(ctx context.Context, n *Node) {
	_, _ = n.Run(ctx)

	children := n.Children()
	if len(children) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(n.Options().MaxConcurrency)
	for _, c := range children {
		g.Go(func() error {
			r.runNode(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
}
