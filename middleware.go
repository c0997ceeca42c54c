package router

// Middleware wraps a Handler at registration time.
type Middleware func(Handler) Handler

// Use appends middleware applied to every handler registered after the
// call. The first middleware added is the outermost wrapper.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

func wrapMiddleware(handler Handler, mw []Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}

	return handler
}
