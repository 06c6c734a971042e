package param

import (
	"strings"
	"time"

	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/section"
)

// Block holds the decoded entries of one parameter block in wire order
// with case-insensitive key lookup. Repeated keys within a block keep
// every entry in order, but lookups resolve to the last occurrence.
type Block struct {
	Type section.BlockType

	entries []Entry
	index   map[string]int
}

// newBlock returns an empty block of the given type.
func newBlock(typ section.BlockType) *Block {
	return &Block{
		Type:  typ,
		index: make(map[string]int),
	}
}

// add appends an entry and points the key index at it.
func (b *Block) add(e Entry) {
	b.index[e.Key] = len(b.entries)
	b.entries = append(b.entries, e)
}

// Len returns the number of entries, repeated keys included.
func (b *Block) Len() int {
	return len(b.entries)
}

// Entries returns the entries in wire order. The slice is shared with the
// block and must not be modified.
func (b *Block) Entries() []Entry {
	return b.entries
}

// Keys returns the distinct keys in first-occurrence order.
func (b *Block) Keys() []string {
	keys := make([]string, 0, len(b.index))
	seen := make(map[string]bool, len(b.index))
	for _, e := range b.entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}

	return keys
}

// Get returns the entry for key, resolving repeated keys to the last
// occurrence. The key is case-insensitive.
func (b *Block) Get(key string) (Entry, bool) {
	i, ok := b.index[strings.ToUpper(key)]
	if !ok {
		return Entry{}, false
	}

	return b.entries[i], true
}

// Has reports whether key is present.
func (b *Block) Has(key string) bool {
	_, ok := b.index[strings.ToUpper(key)]
	return ok
}

// Int returns the int32 value of key.
func (b *Block) Int(key string) (int32, bool) {
	e, ok := b.Get(key)
	if !ok || e.Kind != format.ValueInt32 {
		return 0, false
	}

	return e.Int, true
}

// Float returns the float64 value of key.
func (b *Block) Float(key string) (float64, bool) {
	e, ok := b.Get(key)
	if !ok || e.Kind != format.ValueFloat64 {
		return 0, false
	}

	return e.Float, true
}

// Numeric returns the value of key widened to float64, accepting both
// int32 and float64 entries. OPUS writes some parameters with either tag
// depending on version, so numeric consumers go through this accessor.
func (b *Block) Numeric(key string) (float64, bool) {
	e, ok := b.Get(key)
	if !ok {
		return 0, false
	}

	return e.Numeric()
}

// Str returns the string value of key.
func (b *Block) Str(key string) (string, bool) {
	e, ok := b.Get(key)
	if !ok || (e.Kind != format.ValueString && e.Kind != format.ValueEnum) {
		return "", false
	}

	return e.Str, true
}

// Timestamp layouts. OPUS writes DAT day-first or year-first depending on
// version, TIM with milliseconds and an ignored timezone suffix.
var timestampLayouts = []string{
	"02/01/2006-15:04:05.000",
	"2006/01/02-15:04:05.000",
	"02/01/2006-15:04:05",
	"2006/01/02-15:04:05",
}

// Timestamp resolves the DAT and TIM entries into a time.Time. Data
// status blocks carry these for the acquisition time of their data block.
// Returns false when either entry is missing or neither known layout
// matches.
func (b *Block) Timestamp() (time.Time, bool) {
	date, ok := b.Str("DAT")
	if !ok {
		return time.Time{}, false
	}
	clock, ok := b.Str("TIM")
	if !ok {
		return time.Time{}, false
	}

	// "10:47:07.939 (GMT+2)" keeps only the clock part.
	if cut, _, found := strings.Cut(clock, " ("); found {
		clock = cut
	}

	joined := strings.TrimSpace(date) + "-" + strings.TrimSpace(clock)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, joined); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

// Merge folds blocks into one lookup view in order; later blocks win
// repeated keys, matching the in-block last-write-wins policy. The source
// blocks are unchanged. The result carries typ as its type code.
func Merge(typ section.BlockType, blocks ...*Block) *Block {
	out := newBlock(typ)
	for _, b := range blocks {
		if b == nil {
			continue
		}
		for _, e := range b.entries {
			out.add(e)
		}
	}

	return out
}
