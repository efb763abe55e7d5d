package orth

import (
	"strconv"
	"strings"

	"github.com/qtreebank/goparser/internal/morph"
)

type morpheme struct {
	arabic     string
	morphology string
	hasMorph   bool
}

// TsvReader assembles tab-separated morpheme rows (chapter, verse, token,
// arabic surface form, morphology tag) into Tokens, one per distinct
// location, each carrying its decoded Segments in order.
type TsvReader struct {
	Tokens []*Token

	reader    *morph.Reader
	morphemes []morpheme
	location  Location
	hasLoc    bool
}

func NewTsvReader(lemmas *morph.Interner) *TsvReader {
	return &TsvReader{reader: morph.NewReader(lemmas)}
}

// ReadLine consumes one tab-separated row. Columns: chapter, verse, token,
// arabic, morphology (morphology may be absent, denoting an implicit
// subject pronoun with no explicit morphology tag of its own).
func (r *TsvReader) ReadLine(line string) error {
	parts := strings.Split(line, "\t")
	chapter, err := strconv.Atoi(parts[0])
	if err != nil {
		return err
	}
	verse, err := strconv.Atoi(parts[1])
	if err != nil {
		return err
	}
	token, err := strconv.Atoi(parts[2])
	if err != nil {
		return err
	}
	loc := NewLocation(chapter, verse, token)

	if r.hasLoc && loc != r.location {
		if err := r.flushToken(); err != nil {
			return err
		}
	}

	m := morpheme{arabic: parts[3]}
	if len(parts) >= 5 {
		m.morphology = parts[4]
		m.hasMorph = true
	}
	r.morphemes = append(r.morphemes, m)
	r.location = loc
	r.hasLoc = true
	return nil
}

// Close flushes the final pending token. Callers must call Close after the
// last ReadLine, mirroring the Python reader's context-manager __exit__.
func (r *TsvReader) Close() error {
	if !r.hasLoc {
		return nil
	}
	return r.flushToken()
}

func (r *TsvReader) flushToken() error {
	tok := NewToken(r.location)
	r.Tokens = append(r.Tokens, tok)
	return r.readSegments(tok)
}

// MissingStemError reports an implicit subject-pronoun morpheme with no
// stem before it to inherit person/gender/number from.
type MissingStemError struct {
	Location Location
}

func (e MissingStemError) Error() string {
	return "orth: subject pronoun with no preceding stem at " + e.Location.String()
}

func missingStem(loc Location) error {
	return MissingStemError{Location: loc}
}

func (r *TsvReader) readSegments(tok *Token) error {
	var stem *morph.Segment
	var objectPronoun *morph.Segment

	segments := make([]*morph.Segment, len(r.morphemes))
	for i, m := range r.morphemes {
		var seg *morph.Segment
		if !m.hasMorph {
			if stem == nil {
				return missingStem(r.location)
			}
			seg = morph.NewSegment(morph.Suffix, morph.Pronoun)
			if stem.HasPerson() {
				seg.SetPerson(stem.Person)
			}
			if stem.HasGender() {
				seg.SetGender(stem.Gender)
			}
			if stem.HasNumber() {
				seg.SetNumber(stem.Number)
			}
			seg.SetPronounType(morph.SubjectPronoun)
		} else {
			var err error
			seg, err = r.reader.Read(m.morphology, stem != nil)
			if err != nil {
				return err
			}
		}

		seg.SegmentNumber = i + 1

		if seg.PartOfSpeech == morph.Pronoun && seg.Type == morph.Suffix && m.hasMorph {
			if objectPronoun != nil {
				seg.SetPronounType(morph.SecondObjectPronoun)
			} else {
				seg.SetPronounType(morph.ObjectPronoun)
				objectPronoun = seg
			}
		}

		if seg.Type == morph.Stem {
			stem = seg
		}

		segments[i] = seg
	}

	tok.Segments = segments
	r.morphemes = r.morphemes[:0]
	return nil
}
