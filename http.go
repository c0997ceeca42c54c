package router

import (
	"fmt"

	"github.com/savsgio/gotils"
	"github.com/valyala/fasthttp"

	"github.com/minimap-pm/router/routepath"
)

// RoutedPathParam is the user-value key under which Handler stores the
// canonical path of the resolved route.
var RoutedPathParam = fmt.Sprintf("__routedPath::%s__", gotils.RandBytes(make([]byte, 15)))

// HTTPRender produces the response for a resolved deep-link.
type HTTPRender func(httpCtx *fasthttp.RequestCtx, ctx *Context, canonicalPath string)

var defaultContentType = "text/plain; charset=utf-8"

func (r *Router) recv(httpCtx *fasthttp.RequestCtx) {
	if rcv := recover(); rcv != nil {
		r.PanicHandler(httpCtx, rcv)
	}
}

// Handler serves the route table over HTTP, so the client shell's
// deep-links can be resolved by a plain web request (dev preview and
// server-side entry). The request path is resolved as a navigation that
// leaves history untouched.
func (r *Router) Handler(httpCtx *fasthttp.RequestCtx) {
	if r.PanicHandler != nil {
		defer r.recv(httpCtx)
	}

	segs, err := routepath.Split(gotils.B2S(httpCtx.Path()))
	if err != nil {
		httpCtx.Error(fasthttp.StatusMessage(fasthttp.StatusBadRequest), fasthttp.StatusBadRequest)
		return
	}

	ctx, canonical, handled, err := r.resolve(segs, NavIgnore)
	if err != nil {
		httpCtx.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
		return
	}

	if !handled {
		if r.NotFound != nil {
			r.NotFound(httpCtx)
			return
		}
		httpCtx.Error(fasthttp.StatusMessage(fasthttp.StatusNotFound), fasthttp.StatusNotFound)
		return
	}

	httpCtx.SetUserValue(RoutedPathParam, canonical)

	if r.Render != nil {
		r.Render(httpCtx, ctx, canonical)
		return
	}

	httpCtx.SetContentType(defaultContentType)
	httpCtx.SetBodyString(canonical)
}
