package router

// node is one level of the route trie. children keep insertion order:
// siblings are tried in registration order and the first matching child
// is descended into.
type node struct {
	key      Matcher
	handler  Handler
	children []*node
}

// child returns the child registered under an equivalent matcher key.
func (n *node) child(m Matcher) *node {
	for _, c := range n.children {
		if c.key.equal(m) {
			return c
		}
	}
	return nil
}

// add walks and extends the trie along ms, creating intermediate nodes as
// needed, and attaches handler at the terminal node. A nil handler only
// creates the nodes. pattern is the display form used in errors.
func (n *node) add(ms []Matcher, handler Handler, pattern string) (*node, error) {
	if len(ms) == 0 {
		if handler != nil {
			if n.handler != nil {
				return nil, DuplicateRouteError{Pattern: pattern}
			}
			n.handler = handler
		}
		return n, nil
	}

	c := n.child(ms[0])
	if c == nil {
		c = &node{key: ms[0]}
		n.children = append(n.children, c)
	}

	return c.add(ms[1:], handler, pattern)
}

// walk resolves segs depth-first from n. args carries the dynamic-match
// captures accumulated since the last handler-carrying ancestor.
func (n *node) walk(ctx *Context, segs []string, args []any) Result {
	if len(segs) == 0 {
		if n.handler == nil {
			return Result{}
		}
		return n.handler(ctx, args...)
	}

	if n.handler != nil {
		// This node is an ancestor prefix of a possible deeper match. The
		// capture list restarts for the subtree; the captures up to here
		// feed the fallback invocation. The ancestor handler runs only
		// when the deeper match declines by redirecting: a subtree that
		// finds no handler at all declines the whole branch instead.
		res := n.descend(ctx, segs, nil)
		if res.kind == redirectResult {
			return n.handler(ctx, args...)
		}
		return res
	}

	return n.descend(ctx, segs, args)
}

// descend tries the children of n against the head segment, in insertion
// order. A child whose entire subtree fails declines and the next sibling
// is tried.
func (n *node) descend(ctx *Context, segs []string, args []any) Result {
	for _, c := range n.children {
		vals, ok := c.key.match(segs[0])
		if !ok {
			continue
		}

		next := args
		if len(vals) > 0 {
			next = make([]any, len(args), len(args)+len(vals))
			copy(next, args)
			next = append(next, vals...)
		}

		if res := c.walk(ctx, segs[1:], next); res.kind != declined {
			return res
		}
	}

	return Result{}
}
