package suite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ArgumentDisambiguation(t *testing.T) {
	body := func(*TC) (any, error) { return 1, nil }

	t.Run("any order", func(t *testing.T) {
		opts := Options{Timeout: 5 * time.Second}

		a := New("named", body, opts)
		b := New(opts, body, "named")

		for _, n := range []*Node{a, b} {
			assert.Equal(t, "named", n.Name())
			assert.NotNil(t, n.Body())
			assert.Equal(t, 5*time.Second, n.Options().Timeout)
		}
	})

	t.Run("name only", func(t *testing.T) {
		n := New("just a name")
		assert.Equal(t, "just a name", n.Name())
		assert.Nil(t, n.Body())
	})

	t.Run("placeholder name when omitted", func(t *testing.T) {
		n := New(body)
		assert.Equal(t, "anonymous", n.Name())
	})

	t.Run("no-arg body form", func(t *testing.T) {
		n := New(func() (any, error) { return 42, nil })
		v, err := n.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("options pointer", func(t *testing.T) {
		n := New(&Options{Skip: true})
		assert.True(t, n.Options().Skip)
	})

	t.Run("unsupported argument panics", func(t *testing.T) {
		assert.Panics(t, func() { New(3.14) })
	})
}

func TestNew_Defaults(t *testing.T) {
	n := New("t")
	opts := n.Options()
	assert.Equal(t, 10*time.Second, opts.Timeout)
	assert.Equal(t, 10, opts.MaxConcurrency)
	assert.False(t, opts.Skip)
	assert.False(t, opts.Only)
	assert.False(t, opts.Todo)
	assert.Equal(t, StatePending, n.State())
	assert.False(t, n.Ended())
	assert.Equal(t, 1, n.Index())
}

func TestNode_Test(t *testing.T) {
	t.Run("returns the child, never the parent", func(t *testing.T) {
		root := New("root")
		child, err := root.Test("a")
		require.NoError(t, err)
		assert.NotSame(t, root, child)
		assert.Equal(t, "a", child.Name())
		assert.Same(t, root, child.Parent())
	})

	t.Run("1-based sibling index", func(t *testing.T) {
		root := New("root")
		a, err := root.Test("a")
		require.NoError(t, err)
		b, err := root.Test("b")
		require.NoError(t, err)
		assert.Equal(t, 1, a.Index())
		assert.Equal(t, 2, b.Index())
	})

	t.Run("duplicate sibling name fails on the second insertion", func(t *testing.T) {
		root := New("root")
		_, err := root.Test("a")
		require.NoError(t, err)

		_, err = root.Test("a")
		var derr *DuplicateNameError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "a", derr.Name)
		assert.Equal(t, "root", derr.Parent)
		assert.Len(t, root.Children(), 1, "failed insertion must not attach the child")
	})

	t.Run("same name under different parents is permitted", func(t *testing.T) {
		root := New("root")
		g1, err := root.Group("g1")
		require.NoError(t, err)
		g2, err := root.Group("g2")
		require.NoError(t, err)

		_, err = g1.Test("same")
		require.NoError(t, err)
		_, err = g2.Test("same")
		require.NoError(t, err)
	})
}

func TestNode_MarkWrappers(t *testing.T) {
	root := New("root")

	skip, err := root.Skip("s")
	require.NoError(t, err)
	only, err := root.Only("o")
	require.NoError(t, err)
	todo, err := root.Todo("td")
	require.NoError(t, err)
	before, err := root.Before("bf")
	require.NoError(t, err)
	after, err := root.After("af")
	require.NoError(t, err)

	assert.True(t, skip.Options().Skip)
	assert.True(t, only.Options().Only)
	assert.True(t, todo.Options().Todo)
	assert.True(t, before.Options().Before)
	assert.True(t, after.Options().After)
}

func TestNode_TreeQueries(t *testing.T) {
	root := New("root")
	g, err := root.Group("g")
	require.NoError(t, err)
	leaf, err := g.Test("leaf")
	require.NoError(t, err)

	assert.Equal(t, 0, root.Level())
	assert.Equal(t, 2, leaf.Level())
	assert.Same(t, root, leaf.Root())

	parents := leaf.Parents()
	require.Len(t, parents, 2)
	assert.Same(t, g, parents[0])
	assert.Same(t, root, parents[1])

	var names []string
	for n := range root.All() {
		names = append(names, n.Name())
	}
	assert.Equal(t, []string{"root", "g", "leaf"}, names)
}

func TestNode_Reset(t *testing.T) {
	t.Run("single node after a run", func(t *testing.T) {
		n := New("t", func() (any, error) { return 7, nil })
		_, err := n.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, StatePass, n.State())

		n.Reset(false)

		assert.Equal(t, StatePending, n.State())
		assert.False(t, n.Ended())
		assert.Nil(t, n.Result())
		assert.NoError(t, n.Err())
		assert.Zero(t, n.Stats())
		assert.Nil(t, n.Context())
	})

	t.Run("pending node only reapplies original marks", func(t *testing.T) {
		root := New("root")
		a, err := root.Test("a", func() (any, error) { return nil, nil })
		require.NoError(t, err)
		_, err = root.Only("o", func() (any, error) { return nil, nil })
		require.NoError(t, err)
		require.True(t, a.Skipped(), "only elsewhere forces effective skip")

		a.Reset(false)

		assert.False(t, a.Skipped(), "reset discards resolution side effects")
		assert.Equal(t, StatePending, a.State())
	})

	t.Run("deep resets every descendant", func(t *testing.T) {
		root := New("root")
		g, err := root.Group("g")
		require.NoError(t, err)
		leaf, err := g.Test("leaf", func() (any, error) { return nil, nil })
		require.NoError(t, err)

		_, err = leaf.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, StatePass, leaf.State())

		root.Reset(true)

		assert.Equal(t, StatePending, root.State())
		assert.Equal(t, StatePending, g.State())
		assert.Equal(t, StatePending, leaf.State())
		assert.False(t, leaf.Ended())
	})

	t.Run("shallow leaves descendants alone", func(t *testing.T) {
		root := New("root")
		leaf, err := root.Test("leaf", func() (any, error) { return nil, nil })
		require.NoError(t, err)
		_, err = leaf.Run(context.Background())
		require.NoError(t, err)

		root.Reset(false)

		assert.Equal(t, StatePass, leaf.State())
	})
}

func TestNode_AddNil(t *testing.T) {
	root := New("root")
	_, err := root.Add(nil)
	require.ErrorIs(t, err, ErrNilChild)
}
