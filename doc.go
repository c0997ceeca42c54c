// Package router implements the navigation router of the minimap client
// shell: an insertion-ordered trie of route patterns whose segments are
// matched by literal, predicate or regex matchers. Handlers may decline,
// handle, or redirect; redirects are re-resolved from the root and every
// top-level resolution reports its outcome through a single notification
// callback.
package router
