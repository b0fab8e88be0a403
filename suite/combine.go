package suite

// nodeShape is the minimal surface a value must expose to count as a test
// node: name, body, sibling index and the ended flag.
type nodeShape interface {
	Name() string
	Body() Body
	Index() int
	Ended() bool
}

// Validate fails with a ValidationError carrying the offending value
// unless the candidate exposes the test-node shape.
func Validate(v any) error {
	if v == nil {
		return &ValidationError{Value: v}
	}
	if n, ok := v.(*Node); ok {
		if n == nil {
			return &ValidationError{Value: v}
		}
		return nil
	}
	if _, ok := v.(nodeShape); !ok {
		return &ValidationError{Value: v}
	}
	return nil
}

// Combine merges independent roots into a single runnable tree.
//
// With more than one node it creates a fresh root configured for
// sequential execution and attaches each validated node as a child. With
// exactly one node it validates and returns that node unchanged. Either
// way skip/only resolution is re-run on the result before returning, so
// an only mark in one source tree suppresses tests from the others.
func Combine(nodes []*Node, name string) (*Node, error) {
	switch len(nodes) {
	case 0:
		return nil, &ValidationError{Value: nodes}
	case 1:
		if err := Validate(nodes[0]); err != nil {
			return nil, err
		}
		resolveTree(nodes[0].Root())
		return nodes[0], nil
	}

	for _, nd := range nodes {
		if err := Validate(nd); err != nil {
			return nil, err
		}
	}
	root := New(name, Options{MaxConcurrency: 1})
	for _, nd := range nodes {
		if _, err := root.Add(nd); err != nil {
			return nil, err
		}
	}
	resolveTree(root)
	return root, nil
}
