package router

import (
	"github.com/savsgio/gotils"
	"github.com/valyala/fasthttp"

	"github.com/minimap-pm/router/routepath"
)

// Handler is a terminal route callback. It receives the dynamic-segment
// captures accumulated along the matched path as positional arguments, in
// the order their matchers were registered from the root.
type Handler func(ctx *Context, args ...any) Result

// DefaultMaxRedirects bounds handler redirect chains; a single resolution
// following more hops than this fails with RedirectLoopError.
const DefaultMaxRedirects = 16

// Router resolves navigation paths against a trie of registered route
// patterns and reports every top-level resolution outcome through a
// single notification callback.
//
// Registration is not safe for concurrent use, and resolution is meant to
// be driven by one serialized event source (a navigation-change stream);
// the Router does no locking.
type Router struct {
	// MaxRedirects is the number of redirect hops a single Route call
	// will follow before failing with RedirectLoopError.
	MaxRedirects int

	// Location supplies the ambient location resolved by Init. A nil
	// Location boots at "/".
	Location func() string

	// Render produces the HTTP response for a resolved deep-link when the
	// Router serves as a fasthttp handler. When nil, Handler responds
	// with the canonical path as plain text.
	Render HTTPRender

	// NotFound is invoked by Handler when no route matches the request
	// path. When nil, Handler responds with a plain 404.
	NotFound fasthttp.RequestHandler

	// PanicHandler recovers panics raised by route handlers during
	// Handler. When nil, panics propagate.
	PanicHandler func(*fasthttp.RequestCtx, any)

	onRoute    func(*Context, string)
	tree       *node
	current    string
	middleware []Middleware
	registered []string
}

// New returns a Router that reports every top-level Route outcome to
// onRoute: the resolved context and canonical path on success, or a nil
// context and the canonical input path on total match failure. onRoute
// may be nil.
func New(onRoute func(ctx *Context, canonicalPath string)) *Router {
	return &Router{
		MaxRedirects: DefaultMaxRedirects,
		onRoute:      onRoute,
		tree:         &node{},
	}
}

// Handle registers handler under a route template and returns a Group
// anchored at the terminal node just created, so deeper routes can be
// registered relative to the shared prefix.
//
// Template segments are literal text, or embed {name} and {name:regex}
// markers; a segment may interleave both, e.g. "/tickets/ticket-{id:[0-9]+}".
// Each marker captures one positional handler argument.
func (r *Router) Handle(pattern string, handler Handler) (*Group, error) {
	if handler == nil {
		panic("router: handler must not be nil")
	}

	ms, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	return r.register(r.tree, "", ms, pattern, handler, nil)
}

// HandleSegments registers handler under an explicit matcher sequence.
// Elements may be a literal string, a predicate func(string) (any, bool),
// a *regexp.Regexp, or a Matcher value; anything else fails with
// InvalidMatcherError.
func (r *Router) HandleSegments(segs []any, handler Handler) (*Group, error) {
	if handler == nil {
		panic("router: handler must not be nil")
	}

	ms, err := toMatchers(segs)
	if err != nil {
		return nil, err
	}

	return r.register(r.tree, "", ms, matcherPattern(ms), handler, nil)
}

// Group creates (or walks to) the prefix node for pattern without
// attaching a handler and returns a Group anchored there.
func (r *Router) Group(pattern string) (*Group, error) {
	ms, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	return r.register(r.tree, "", ms, pattern, nil, nil)
}

// MustHandle is Handle that panics on error, for declarative route tables.
func (r *Router) MustHandle(pattern string, handler Handler) *Group {
	g, err := r.Handle(pattern, handler)
	if err != nil {
		panic(err)
	}
	return g
}

// MustGroup is Group that panics on error.
func (r *Router) MustGroup(pattern string) *Group {
	g, err := r.Group(pattern)
	if err != nil {
		panic(err)
	}
	return g
}

// register extends the trie from at and records the registration. The
// returned Group is anchored at the terminal node.
func (r *Router) register(at *node, prefix string, ms []Matcher, pattern string, handler Handler, mw []Middleware) (*Group, error) {
	full := prefix + pattern

	if handler != nil {
		handler = wrapMiddleware(handler, append(append([]Middleware(nil), r.middleware...), mw...))
	}

	n, err := at.add(ms, handler, full)
	if err != nil {
		return nil, err
	}

	if handler != nil {
		r.registered = append(r.registered, full)
	}

	return &Group{router: r, node: n, prefix: full}, nil
}

// Route percent-decodes and resolves path, following handler redirects
// from the root on every hop, and reports the outcome through the
// notification callback, exactly once per Route call regardless of hops.
// It returns true when some handler was ultimately invoked without
// redirecting further.
func (r *Router) Route(path string, nav NavState) (bool, error) {
	segs, err := routepath.Split(path)
	if err != nil {
		return false, err
	}

	_, _, handled, err := r.resolve(segs, nav)
	return handled, err
}

// RouteSegments is Route for a pre-split sequence of raw (already
// decoded) segment values.
func (r *Router) RouteSegments(segs []string, nav NavState) (bool, error) {
	_, _, handled, err := r.resolve(segs, nav)
	return handled, err
}

// Init resolves the ambient location once at startup, leaving history
// untouched.
func (r *Router) Init() (bool, error) {
	path := "/"
	if r.Location != nil {
		path = r.Location()
	}
	return r.Route(path, NavIgnore)
}

// Current returns the canonical path of the most recently resolved route,
// or "" before the first successful resolution.
func (r *Router) Current() string {
	return r.current
}

// List returns the registered route patterns in registration order.
func (r *Router) List() []string {
	return append([]string(nil), r.registered...)
}

// Routed reports whether a handler was registered under pattern.
func (r *Router) Routed(pattern string) bool {
	return gotils.StringSliceInclude(r.registered, pattern)
}

func (r *Router) resolve(segs []string, nav NavState) (*Context, string, bool, error) {
	ctx := &Context{Nav: nav}

	for hop := 0; ; hop++ {
		if hop > r.MaxRedirects {
			return nil, "", false, RedirectLoopError{Path: routepath.Join(segs), Hops: hop - 1}
		}

		res := r.tree.walk(ctx, segs, nil)

		switch res.kind {
		case handledResult:
			canonical := routepath.Join(segs)
			ctx.Path = canonical
			r.current = canonical
			if r.onRoute != nil {
				r.onRoute(ctx, canonical)
			}
			return ctx, canonical, true, nil

		case redirectResult:
			if res.hasNav {
				ctx.Nav = res.nav
			}
			if res.hasSegs {
				segs = res.segs
			} else {
				var err error
				if segs, err = routepath.Split(res.path); err != nil {
					return nil, "", false, err
				}
			}

		default:
			canonical := routepath.Join(segs)
			if r.onRoute != nil {
				r.onRoute(nil, canonical)
			}
			return nil, canonical, false, nil
		}
	}
}
