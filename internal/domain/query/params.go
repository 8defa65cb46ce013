package query

import (
	"net/url"
	"strings"
)

// Param is a single query string parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Encode keeps insertion order,
// unlike url.Values which sorts by key.
type Params []Param

// Add appends a parameter.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Get returns the first value for key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Encode renders "k1=v1&k2=v2" with query escaping (space as "+").
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
