/*

Package scorefile holds the pieces of the per-game record parsers in
scorefile/th07 and scorefile/th08 that do not vary by game: the "MM/DD"
short date stamped on high-score entries, CP932 (Shift-JIS) text decoding
for name/title buffers, and the 24-byte plain file header every supported
score file starts with.

*/
package scorefile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ShortDate is the 2-digit month/day stamp stored alongside a high score,
// read from a fixed 6-byte ASCII buffer on disk ("MM/DD\x00").
type ShortDate struct {
	Month, Day uint8
}

// ReadShortDate reads and parses a ShortDate from its 6-byte on-disk form.
func ReadShortDate(r io.Reader) (ShortDate, error) {
	var buf [6]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return ShortDate{}, fmt.Errorf("scorefile: reading short date: %w", err)
	}

	text := string(buf[:5])
	month, day, ok := strings.Cut(text, "/")
	if !ok {
		return ShortDate{}, fmt.Errorf("scorefile: malformed short date %q", text)
	}

	m, err := strconv.ParseUint(month, 10, 8)
	if err != nil {
		return ShortDate{}, fmt.Errorf("scorefile: malformed short date %q: %w", text, err)
	}
	d, err := strconv.ParseUint(day, 10, 8)
	if err != nil {
		return ShortDate{}, fmt.Errorf("scorefile: malformed short date %q: %w", text, err)
	}

	return ShortDate{Month: uint8(m), Day: uint8(d)}, nil
}

// String renders the date in the same "MM/DD" form it is stored in.
func (d ShortDate) String() string {
	return fmt.Sprintf("%02d/%02d", d.Month, d.Day)
}
