package scorefile

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/japanese"
)

// DecodeCP932 decodes a fixed-size, NUL-padded name/title/comment buffer
// as Shift-JIS (CP932), the encoding every supported game stores these
// buffers in. The trailing NUL padding is trimmed before decoding so it
// does not surface as U+0000 runs in the result.
func DecodeCP932(raw []byte) (string, error) {
	trimmed := bytes.TrimRight(raw, "\x00")
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(trimmed)
	if err != nil {
		return "", fmt.Errorf("scorefile: decoding CP932 buffer: %w", err)
	}
	return string(out), nil
}
