package router

// Group is a registrar anchored at a trie node, returned by the Handle
// and Group registration calls. Registering through it extends the trie
// from that node; the resulting trie is identical to registering the
// concatenated pattern on the Router directly.
type Group struct {
	router     *Router
	node       *node
	prefix     string
	middleware []Middleware
}

// Handle registers handler under pattern relative to the group's node and
// returns a Group anchored at the new terminal node.
func (g *Group) Handle(pattern string, handler Handler) (*Group, error) {
	if handler == nil {
		panic("router: handler must not be nil")
	}

	ms, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	return g.router.register(g.node, g.prefix, ms, pattern, handler, g.middleware)
}

// HandleSegments registers handler under an explicit matcher sequence
// relative to the group's node.
func (g *Group) HandleSegments(segs []any, handler Handler) (*Group, error) {
	if handler == nil {
		panic("router: handler must not be nil")
	}

	ms, err := toMatchers(segs)
	if err != nil {
		return nil, err
	}

	return g.router.register(g.node, g.prefix, ms, matcherPattern(ms), handler, g.middleware)
}

// Group creates (or walks to) a deeper prefix node without attaching a
// handler. The subgroup inherits this group's middleware.
func (g *Group) Group(pattern string) (*Group, error) {
	ms, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	sub, err := g.router.register(g.node, g.prefix, ms, pattern, nil, nil)
	if err != nil {
		return nil, err
	}

	sub.middleware = append([]Middleware(nil), g.middleware...)

	return sub, nil
}

// MustHandle is Handle that panics on error.
func (g *Group) MustHandle(pattern string, handler Handler) *Group {
	sub, err := g.Handle(pattern, handler)
	if err != nil {
		panic(err)
	}
	return sub
}

// MustGroup is Group that panics on error.
func (g *Group) MustGroup(pattern string) *Group {
	sub, err := g.Group(pattern)
	if err != nil {
		panic(err)
	}
	return sub
}

// Use appends middleware applied to handlers subsequently registered
// through this group and its subgroups.
func (g *Group) Use(mw ...Middleware) {
	g.middleware = append(g.middleware, mw...)
}

// Prefix returns the pattern prefix the group is anchored at.
func (g *Group) Prefix() string {
	return g.prefix
}
