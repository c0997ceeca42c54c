package router

import "fmt"

// DuplicateRouteError reports a second registration for a pattern whose
// exact segment sequence already carries a handler.
type DuplicateRouteError struct {
	Pattern string
}

func (e DuplicateRouteError) Error() string {
	return fmt.Sprintf("router: a handler is already registered for pattern %q", e.Pattern)
}

// InvalidMatcherError reports a segment matcher that is not a literal
// string, a predicate function, a regex pattern or a Matcher value, or a
// route template that cannot be parsed.
type InvalidMatcherError struct {
	Pattern string
	Value   any
	Reason  string
}

func (e InvalidMatcherError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("router: invalid matcher %T in pattern %q: %s", e.Value, e.Pattern, e.Reason)
	}
	return fmt.Sprintf("router: invalid matcher in pattern %q: %s", e.Pattern, e.Reason)
}

// RedirectLoopError reports a redirect chain that exceeded MaxRedirects
// hops without resolving.
type RedirectLoopError struct {
	Path string
	Hops int
}

func (e RedirectLoopError) Error() string {
	return fmt.Sprintf("router: redirect chain aborted after %d hops at %q", e.Hops, e.Path)
}
