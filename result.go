package router

// NavState tells the external history mechanism how to record a
// successful route change.
type NavState uint8

const (
	// NavPush pushes a new history entry.
	NavPush NavState = iota
	// NavReplace replaces the current history entry.
	NavReplace
	// NavIgnore leaves history untouched.
	NavIgnore
)

func (ns NavState) String() string {
	switch ns {
	case NavReplace:
		return "replace"
	case NavIgnore:
		return "ignore"
	}
	return "push"
}

// Context is passed to every handler invoked during a resolution. The same
// context is carried across redirect hops, so a handler that mutates Nav
// changes how the whole chain is recorded.
type Context struct {
	// Nav is the navigation-state token supplied to Route. Handlers may
	// read and mutate it; redirects keep the mutated value.
	Nav NavState

	// Path is the canonical (percent-re-encoded) path of the resolved
	// route. It is set just before the notification callback fires and is
	// empty while handlers run.
	Path string

	userValues map[string]any
}

// SetUserValue stores a value on the context for later handlers or
// middleware within the same resolution.
func (ctx *Context) SetUserValue(key string, value any) {
	if ctx.userValues == nil {
		ctx.userValues = make(map[string]any)
	}
	ctx.userValues[key] = value
}

// UserValue returns the value stored under key, or nil.
func (ctx *Context) UserValue(key string) any {
	return ctx.userValues[key]
}

type resultKind uint8

const (
	declined resultKind = iota
	handledResult
	redirectResult
)

// Result is a handler outcome: Declined, Handled or Redirect. The zero
// value is Declined.
type Result struct {
	kind resultKind

	value any

	path    string
	segs    []string
	hasSegs bool
	nav     NavState
	hasNav  bool
}

// Declined signals that the handler does not match after all; resolution
// continues with the next sibling branch of the trie.
func Declined() Result {
	return Result{}
}

// Handled signals a successfully handled route, with an optional
// handler-defined value.
func Handled(value any) Result {
	return Result{kind: handledResult, value: value}
}

// Redirect instructs the router to re-resolve against path, keeping the
// navigation state currently on the context.
func Redirect(path string) Result {
	return Result{kind: redirectResult, path: path}
}

// RedirectWithNav is Redirect with the navigation state forced to nav for
// the remainder of the chain.
func RedirectWithNav(path string, nav NavState) Result {
	return Result{kind: redirectResult, path: path, nav: nav, hasNav: true}
}

// RedirectSegments is Redirect for a pre-split sequence of raw (already
// decoded) segment values.
func RedirectSegments(segs ...string) Result {
	return Result{kind: redirectResult, segs: segs, hasSegs: true}
}

// IsHandled reports whether the result is a handled route.
func (r Result) IsHandled() bool { return r.kind == handledResult }

// IsRedirect reports whether the result is a redirect.
func (r Result) IsRedirect() bool { return r.kind == redirectResult }

// IsDeclined reports whether the result declines the route.
func (r Result) IsDeclined() bool { return r.kind == declined }

// Value returns the handler-defined value of a handled result.
func (r Result) Value() any { return r.value }
