/*

Package th07 decodes Perfect Cherry Blossom score files: the rotate-XOR
encrypted, LZSS-compressed segment stream, built on
top of this module's scorecrypt, lzss and segment packages.

*/
package th07

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"

	"go.uber.org/zap"

	"github.com/hakurei-works/thstat/lzss"
	"github.com/hakurei-works/thstat/scorecrypt"
	"github.com/hakurei-works/thstat/scorefile"
	"github.com/hakurei-works/thstat/segment"
)

// ErrParsing is returned by Parse when the decoder panics on malformed
// input -- score files are untrusted on-disk data, so Parse recovers
// rather than letting an implementation bug crash the caller.
var ErrParsing = errors.New("th07: parsing error")

// ScoreFile is a fully decoded Perfect Cherry Blossom score file.
type ScoreFile struct {
	Header     scorefile.FileHeader
	Cards      []SpellCardData
	Practices  []PracticeData
	HighScores []HighScore
	ClearData  []ClearData
	PlayStatus []PlayData
	LastName   [][12]byte
	Raw        []segment.Segment
	ChecksumOK bool
}

// Parse decodes a Perfect Cherry Blossom score file from r. Equivalent to
// ParseWithLogger(r, nil).
func Parse(r io.Reader) (*ScoreFile, error) {
	return ParseWithLogger(r, nil)
}

// ParseWithLogger decodes a Perfect Cherry Blossom score file from r,
// reporting checksum and per-card attempt-count inconsistencies to logger
// as they're found. logger may be nil, in which case nothing is reported.
func ParseWithLogger(r io.Reader, logger *zap.Logger) (sf *ScoreFile, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("th07: parsing error: %v", rec)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("th07: stack: %s", buf[:n])
			err = ErrParsing
		}
	}()

	sf, err = parse(r)
	if err != nil {
		return nil, err
	}

	if !sf.ChecksumOK {
		logger.Warn("th07: score file checksum mismatch")
	}
	for _, card := range sf.Cards {
		if !card.AttemptsConsistent() {
			logger.Warn("th07: spell card attempt totals inconsistent",
				zap.Uint16("card_id", card.CardID))
		}
	}

	return sf, nil
}

func parse(r io.Reader) (*ScoreFile, error) {
	dec, err := scorecrypt.NewDecryptor(r)
	if err != nil {
		return nil, fmt.Errorf("th07: %w", err)
	}

	header, err := scorefile.ReadFileHeader(dec)
	if err != nil {
		return nil, fmt.Errorf("th07: %w", err)
	}

	body := lzss.NewStream(dec)
	segReader := segment.New(body)

	sf := &ScoreFile{Header: header}

	for {
		seg, err := segReader.Next()
		if err != nil {
			if errors.Is(err, segment.ErrNoMoreSegments) {
				break
			}
			return nil, fmt.Errorf("th07: %w", err)
		}

		rec, err := decodeSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("th07: %w", err)
		}

		switch rec.Kind {
		case KindSpellCard:
			sf.Cards = append(sf.Cards, rec.SpellCard)
		case KindPracticeScore:
			sf.Practices = append(sf.Practices, rec.PracticeScore)
		case KindHighScore:
			sf.HighScores = append(sf.HighScores, rec.HighScore)
		case KindClear:
			sf.ClearData = append(sf.ClearData, rec.Clear)
		case KindPlayStatus:
			sf.PlayStatus = append(sf.PlayStatus, rec.PlayStatus)
		case KindLastName:
			sf.LastName = append(sf.LastName, rec.LastName)
		case KindRaw:
			sf.Raw = append(sf.Raw, rec.Raw)
		}
	}

	sf.ChecksumOK = dec.ChecksumOK()
	return sf, nil
}
