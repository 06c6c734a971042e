// Package label resolves the three-letter parameter keys used throughout
// OPUS files ("BMS", "SNM", "FXV", ...) to human-readable labels.
//
// Lookups go through an immutable Dictionary so that decoding never
// depends on mutable global state: the built-in table covers the common
// OPUS vocabulary, and callers with firmware-specific extensions derive
// their own dictionary instead of patching a shared one.
package label

import "strings"

// Dictionary maps three-letter parameter keys to display labels. Keys are
// case-insensitive. A Dictionary is immutable after construction and safe
// for unsynchronized concurrent readers.
type Dictionary struct {
	labels map[string]string
}

// New builds a Dictionary from the given table. The table is copied, so
// later mutation of the argument does not affect the Dictionary.
func New(labels map[string]string) *Dictionary {
	m := make(map[string]string, len(labels))
	for k, v := range labels {
		m[strings.ToUpper(k)] = v
	}

	return &Dictionary{labels: m}
}

// Default returns the built-in dictionary of common OPUS parameter labels.
func Default() *Dictionary {
	return &Dictionary{labels: builtinLabels}
}

// Lookup returns the label for key and whether the key is known.
func (d *Dictionary) Lookup(key string) (string, bool) {
	label, ok := d.labels[strings.ToUpper(key)]
	return label, ok
}

// Label returns the label for key, falling back to the upper-cased key
// itself when unknown. Unknown keys therefore stay addressable in output
// instead of disappearing behind an error.
func (d *Dictionary) Label(key string) string {
	if label, ok := d.Lookup(key); ok {
		return label
	}

	return strings.ToUpper(key)
}

// Merged derives a new Dictionary with extra entries layered over the
// receiver. Extra entries win on key collisions. The receiver is not
// modified.
func (d *Dictionary) Merged(extra map[string]string) *Dictionary {
	m := make(map[string]string, len(d.labels)+len(extra))
	for k, v := range d.labels {
		m[k] = v
	}
	for k, v := range extra {
		m[strings.ToUpper(k)] = v
	}

	return &Dictionary{labels: m}
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.labels)
}
