package block

import (
	"bytes"
	"unicode/utf8"

	"github.com/ftirkit/opus/cursor"
)

// parseLog decodes a file log (history) block: NUL-separated text runs
// describing how the file was generated and edited. Runs that form valid
// UTF-8 are taken verbatim; anything else is read as latin-1, so no byte
// sequence is unrepresentable.
func parseLog(raw []byte) []string {
	var lines []string
	for _, run := range bytes.Split(raw, []byte{0}) {
		if len(run) == 0 {
			continue
		}

		run = bytes.TrimRight(run, " ")
		if len(run) == 0 {
			continue
		}

		if utf8.Valid(run) {
			lines = append(lines, string(run))
			continue
		}

		lines = append(lines, cursor.DecodeLatin1(run))
	}

	return lines
}
