package deeplink

import (
	"net/url"
	"strings"
)

// queryParams renders query parameters in insertion order. url.Values is
// not used because its Encode sorts keys, and the output contract fixes
// the parameter order.
type queryParams struct {
	pairs []Param
}

// add appends a parameter, skipping empty values so that absent optionals
// never appear in the output.
func (q *queryParams) add(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, Param{Key: key, Value: value})
}

// addAlways appends a parameter even when its value is empty. Used for
// widget_id, which is part of the wire format regardless.
func (q *queryParams) addAlways(key, value string) {
	q.pairs = append(q.pairs, Param{Key: key, Value: value})
}

// set appends a parameter, removing any earlier pair with the same key so
// the last writer wins.
func (q *queryParams) set(key, value string) {
	if value == "" {
		return
	}
	for i, p := range q.pairs {
		if p.Key == key {
			q.pairs = append(q.pairs[:i], q.pairs[i+1:]...)
			break
		}
	}
	q.pairs = append(q.pairs, Param{Key: key, Value: value})
}

// encode renders the pairs as a query string. Each value is escaped
// independently so that decoding any one parameter reproduces its
// original value exactly.
func (q *queryParams) encode() string {
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(escapeQueryValue(p.Value))
	}
	return b.String()
}

// escapeQueryValue percent-encodes a query value with space as %20 rather
// than the form-encoding plus sign.
func escapeQueryValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
