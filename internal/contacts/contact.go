// Package contacts holds the format-independent record shape produced by the
// readers and consumed by the buddy list pipeline.
package contacts

import "strings"

// Params maps an uppercased parameter name to its values, in encounter order.
type Params map[string][]string

// Add appends value under the uppercased name.
func (p Params) Add(name, value string) {
	key := strings.ToUpper(strings.TrimSpace(name))
	p[key] = append(p[key], value)
}

// Has reports whether name carries value. Parameter values are compared
// case-insensitively since vCard and CSV exports disagree on casing.
func (p Params) Has(name, value string) bool {
	for _, v := range p[strings.ToUpper(name)] {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// RawNumber is a telephone entry as read from the input.
type RawNumber struct {
	Value  string
	Params Params
}

// Preferred reports whether the entry is marked as the contact's primary number.
func (n RawNumber) Preferred() bool {
	return n.Params.Has("TYPE", "pref")
}

// RawContact is one address book entry.
type RawContact struct {
	Name       string
	Categories []string
	Numbers    []RawNumber
}
