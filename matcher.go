package router

import (
	"reflect"
	"regexp"
	"strings"
)

type matcherKind uint8

const (
	matchLiteral matcherKind = iota
	matchPredicate
	matchPattern
	matchTemplate
)

// Predicate tests a percent-decoded segment and returns the value to
// capture for the handler. A false ok means the segment does not match.
type Predicate func(segment string) (value any, ok bool)

// Matcher tests a single path segment. It is a tagged variant: exactly
// one of the literal, predicate or pattern forms is active.
type Matcher struct {
	kind matcherKind

	lit    string
	pred   Predicate
	re     *regexp.Regexp
	sticky bool

	// template form: display text and the submatch index of each
	// embedded marker
	text   string
	groups []int
}

// Lit matches a segment equal to s. It captures nothing.
func Lit(s string) Matcher {
	return Matcher{kind: matchLiteral, lit: s}
}

// Pred matches a segment the predicate accepts and captures the value it
// returns.
func Pred(fn Predicate) Matcher {
	return Matcher{kind: matchPredicate, pred: fn}
}

// Pattern matches a segment containing a match of re and captures the
// matched substring.
func Pattern(re *regexp.Regexp) Matcher {
	return Matcher{kind: matchPattern, re: re}
}

// StickyPattern matches a segment whose start matches re and captures the
// full submatch slice (whole match first, then every group) as a single
// value.
func StickyPattern(re *regexp.Regexp) Matcher {
	return Matcher{kind: matchPattern, re: re, sticky: true}
}

// match reports whether the (percent-decoded) segment satisfies the
// matcher, and the values it captures for the handler.
func (m Matcher) match(seg string) ([]any, bool) {
	switch m.kind {
	case matchLiteral:
		return nil, seg == m.lit

	case matchPredicate:
		v, ok := m.pred(seg)
		if !ok {
			return nil, false
		}
		return []any{v}, true

	case matchPattern:
		if m.sticky {
			loc := m.re.FindStringSubmatchIndex(seg)
			if loc == nil || loc[0] != 0 {
				return nil, false
			}
			groups := make([]string, 0, len(loc)/2)
			for i := 0; i < len(loc); i += 2 {
				if loc[i] < 0 {
					groups = append(groups, "")
					continue
				}
				groups = append(groups, seg[loc[i]:loc[i+1]])
			}
			return []any{groups}, true
		}

		loc := m.re.FindStringIndex(seg)
		if loc == nil {
			return nil, false
		}
		return []any{seg[loc[0]:loc[1]]}, true

	case matchTemplate:
		sub := m.re.FindStringSubmatch(seg)
		if sub == nil {
			return nil, false
		}
		vals := make([]any, len(m.groups))
		for i, g := range m.groups {
			vals[i] = sub[g]
		}
		return vals, true
	}

	return nil, false
}

// equal reports whether two matchers are the same trie key. Literal and
// template matchers compare by value, so registering the same pattern
// text twice reaches the same node; dynamic matchers compare by identity,
// mirroring an object-keyed ordered map.
func (m Matcher) equal(o Matcher) bool {
	if m.kind != o.kind {
		return false
	}

	switch m.kind {
	case matchLiteral:
		return m.lit == o.lit
	case matchPredicate:
		return reflect.ValueOf(m.pred).Pointer() == reflect.ValueOf(o.pred).Pointer()
	case matchPattern:
		return m.re == o.re && m.sticky == o.sticky
	case matchTemplate:
		return m.text == o.text
	}

	return false
}

// String returns the display form of the matcher used by List.
func (m Matcher) String() string {
	switch m.kind {
	case matchLiteral:
		return m.lit
	case matchPredicate:
		return "{func}"
	case matchPattern:
		if m.sticky {
			return "{re~" + m.re.String() + "}"
		}
		return "{re:" + m.re.String() + "}"
	}
	return m.text
}

// parsePattern turns a '/'-delimited route template into segment
// matchers. Segments without markers become literals; segments embedding
// {name} or {name:regex} markers compile to template matchers.
func parsePattern(pattern string) ([]Matcher, error) {
	if len(pattern) == 0 || pattern[0] != '/' {
		return nil, InvalidMatcherError{Pattern: pattern, Reason: "pattern must begin with '/'"}
	}

	var ms []Matcher

	for _, seg := range strings.Split(pattern, "/") {
		if seg == "" {
			continue
		}

		if !strings.ContainsAny(seg, "{}") {
			ms = append(ms, Lit(seg))
			continue
		}

		m, err := parseTemplateSegment(seg, pattern)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}

	return ms, nil
}

// parseTemplateSegment compiles one segment interleaving literal text and
// {name} / {name:regex} markers into a single anchored regex. Each marker
// contributes exactly one capture, in marker order, regardless of groups
// inside the marker's own regex.
func parseTemplateSegment(seg, pattern string) (Matcher, error) {
	var b strings.Builder
	b.WriteByte('^')

	var groups []int
	ngroups := 0

	i := 0
	for i < len(seg) {
		c := seg[i]

		if c == '}' {
			return Matcher{}, InvalidMatcherError{Pattern: pattern, Reason: "unbalanced '}' in segment '" + seg + "'"}
		}

		if c != '{' {
			j := strings.IndexAny(seg[i:], "{}")
			if j < 0 {
				j = len(seg) - i
			}
			b.WriteString(regexp.QuoteMeta(seg[i : i+j]))
			i += j
			continue
		}

		// Find the matching close brace. The marker regex may itself use
		// braces, e.g. {id:[0-9]{2}}.
		depth := 0
		j := i + 1
		for ; j < len(seg); j++ {
			if seg[j] == '{' {
				depth++
			} else if seg[j] == '}' {
				if depth == 0 {
					break
				}
				depth--
			}
		}
		if j == len(seg) {
			return Matcher{}, InvalidMatcherError{Pattern: pattern, Reason: "unclosed '{' in segment '" + seg + "'"}
		}

		body := seg[i+1 : j]
		name, expr := body, "(.*)"
		if k := strings.IndexByte(body, ':'); k >= 0 {
			name, expr = body[:k], "("+body[k+1:]+")"
		}
		if name == "" {
			return Matcher{}, InvalidMatcherError{Pattern: pattern, Reason: "markers must be named with a non-empty name"}
		}

		sub, err := regexp.Compile(expr)
		if err != nil {
			return Matcher{}, InvalidMatcherError{Pattern: pattern, Reason: "bad marker regex '" + expr + "': " + err.Error()}
		}

		b.WriteString(expr)
		ngroups++
		groups = append(groups, ngroups)
		ngroups += sub.NumSubexp() - 1

		i = j + 1
	}

	b.WriteByte('$')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return Matcher{}, InvalidMatcherError{Pattern: pattern, Reason: err.Error()}
	}

	return Matcher{kind: matchTemplate, re: re, text: seg, groups: groups}, nil
}

// toMatchers converts an explicit segment sequence into matchers.
// Elements may be a literal string, a predicate function, a
// *regexp.Regexp, or a Matcher value.
func toMatchers(segs []any) ([]Matcher, error) {
	ms := make([]Matcher, 0, len(segs))

	for _, s := range segs {
		switch v := s.(type) {
		case string:
			ms = append(ms, Lit(v))
		case Predicate:
			ms = append(ms, Pred(v))
		case func(string) (any, bool):
			ms = append(ms, Pred(v))
		case *regexp.Regexp:
			ms = append(ms, Pattern(v))
		case Matcher:
			ms = append(ms, v)
		default:
			return nil, InvalidMatcherError{Value: s, Reason: "must be a string, predicate, *regexp.Regexp or Matcher"}
		}
	}

	return ms, nil
}

// matcherPattern renders a matcher sequence as a display pattern.
func matcherPattern(ms []Matcher) string {
	var b strings.Builder
	if len(ms) == 0 {
		return "/"
	}
	for _, m := range ms {
		b.WriteByte('/')
		b.WriteString(m.String())
	}
	return b.String()
}
