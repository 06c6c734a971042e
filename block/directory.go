package block

import (
	"fmt"

	"github.com/ftirkit/opus/cursor"
	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/section"
)

// ParseDirectory walks the directory table declared by hdr and returns the
// valid entries in table order. A slot whose start pointer is zero or
// negative marks the end of the written table (the remaining capacity is
// unwritten). Corrupt slots are skipped with a diagnostic each; they never
// abort the walk.
func ParseDirectory(cur *cursor.Cursor, hdr section.FileHeader) ([]section.DirectoryEntry, []Diagnostic) {
	var (
		entries []section.DirectoryEntry
		diags   []Diagnostic
	)

	start := int(hdr.DirectoryStart)
	for i := 0; i < int(hdr.DirectoryCapacity); i++ {
		off := start + i*section.DirectoryEntrySize

		slot, err := cur.Bytes(off, section.DirectoryEntrySize)
		if err != nil {
			diags = append(diags, Diagnostic{
				Stage:  StageDirectory,
				Offset: off,
				Err: fmt.Errorf("%w: directory slot %d: %v",
					errs.ErrInvalidDirectoryEntry, i, err),
			})

			break
		}

		entry, err := section.ParseDirectoryEntry(slot)
		if err != nil {
			diags = append(diags, Diagnostic{Stage: StageDirectory, Offset: off, Err: err})
			continue
		}
		if entry.Start <= 0 {
			break
		}

		if err := entry.Validate(cur.Len()); err != nil {
			diags = append(diags, Diagnostic{
				Stage:  StageDirectory,
				Type:   entry.Type,
				Offset: off,
				Err:    err,
			})

			continue
		}

		entries = append(entries, entry)
	}

	return entries, diags
}
