package morph

import "strings"

type affixEntry struct {
	kind  SegmentType
	pos   PartOfSpeech
	lemma string
}

// affixes maps a fixed morphology literal to the prefix/suffix segment it
// denotes. Built once from the corpus's closed affix inventory.
var affixes = map[string]affixEntry{
	"+n:EMPH": {Suffix, Emphatic, SuffixNoon},
	"+VOC":    {Suffix, Vocative, VocativeSuffix},
	"A:INTG+": {Prefix, Interrogative, ""},
	"A:EQ+":   {Prefix, Equalization, ""},
	"f:CONJ+": {Prefix, Conjunction, PrefixFa},
	"f:REM+":  {Prefix, Resumption, PrefixFa},
	"f:RSLT+": {Prefix, Result, PrefixFa},
	"f:CAUS+": {Prefix, Cause, PrefixFa},
	"f:SUP+":  {Prefix, Supplemental, PrefixFa},
	"w:SUP+":  {Prefix, Supplemental, PrefixWa},
	"w:CONJ+": {Prefix, Conjunction, PrefixWa},
	"w:COM+":  {Prefix, Comitative, PrefixWa},
	"w:REM+":  {Prefix, Resumption, PrefixWa},
	"w:CIRC+": {Prefix, Circumstantial, PrefixWa},
	"w:P+":    {Prefix, Preposition, PrefixWa},
	"ka+":     {Prefix, Preposition, PrefixKa},
	"l:EMPH+": {Prefix, Emphatic, ""},
	"bi+":     {Prefix, Preposition, PrefixBi},
	"ta+":     {Prefix, Preposition, PrefixTa},
	"l:IMPV+": {Prefix, Imperative, ""},
	"l:PRP+":  {Prefix, Purpose, ""},
	"sa+":     {Prefix, Future, PrefixSa},
	"ya+":     {Prefix, Vocative, PrefixYa},
	"ha+":     {Prefix, Vocative, PrefixHa},
	"Al+":     {Prefix, Determiner, ""},
}

// Reader decodes morphology tag strings into Segments, interning any lemma
// it encounters into the given Interner.
type Reader struct {
	lemmas *Interner
}

func NewReader(lemmas *Interner) *Reader {
	return &Reader{lemmas: lemmas}
}

// Read decodes a single morpheme's morphology string. hasStem distinguishes
// the two readings of the ambiguous "l:P+" tag: a suffixed preposition when
// the token already carries a stem segment, else a prefixed one.
func (r *Reader) Read(morphology string, hasStem bool) (*Segment, error) {
	switch {
	case strings.HasPrefix(morphology, "POS:"):
		return r.readStem(morphology)
	case strings.HasPrefix(morphology, "PRON:"):
		seg := NewSegment(Suffix, Pronoun)
		if err := r.readPersonGenderNumber(seg, morphology[5:]); err != nil {
			return nil, err
		}
		return seg, nil
	case morphology == "l:P+":
		if hasStem {
			return r.suffix(Preposition, PrefixLa), nil
		}
		return r.prefix(Preposition, PrefixLa), nil
	}

	entry, ok := affixes[morphology]
	if !ok {
		return nil, unknownMorphology(morphology)
	}
	if entry.kind == Prefix {
		return r.prefix(entry.pos, entry.lemma), nil
	}
	return r.suffix(entry.pos, entry.lemma), nil
}

func (r *Reader) readStem(morphology string) (*Segment, error) {
	tags := strings.Split(morphology, " ")
	pos, ok := ParsePartOfSpeech(tags[0][4:])
	if !ok {
		return nil, unknownTag(tags[0])
	}
	seg := NewSegment(Stem, pos)

	size := len(tags)
	for i := 1; i < size; i++ {
		tag := tags[i]

		switch {
		case strings.HasPrefix(tag, "ROOT:"):
			continue
		case strings.HasPrefix(tag, "LEM:"):
			r.setLemma(seg, tag[4:])
			continue
		case strings.HasPrefix(tag, "SP:"):
			sp, ok := ParseSpecialType(tag[3:])
			if !ok {
				return nil, unknownTag(tag)
			}
			seg.SetSpecial(sp)
			continue
		case strings.HasPrefix(tag, "MOOD:"):
			m, ok := ParseMoodType(tag[5:])
			if !ok {
				return nil, unknownTag(tag)
			}
			seg.SetMood(m)
			continue
		case strings.HasPrefix(tag, "("):
			continue
		}

		switch tag {
		case "NOM":
			seg.SetCase(Nominative)
		case "GEN":
			seg.SetCase(Genitive)
		case "ACC":
			seg.SetCase(Accusative)
		case "ACT":
			if i < size-1 && tags[i+1] == "PCPL" {
				i++
			} else {
				return nil, unknownTag(tag)
			}
		case "PASS":
			if i < size-1 && tags[i+1] == "PCPL" {
				i++
			} else {
				seg.SetVoice(Passive)
			}
		case "DEF":
			seg.SetState(Definite)
		case "INDEF":
			seg.SetState(Indefinite)
		case "PERF", "IMPF", "IMPV", "VN":
			// aspect/mood markers carried only by the POS tag itself
		default:
			if err := r.readPersonGenderNumber(seg, tag); err != nil {
				return nil, err
			}
		}
	}

	return seg, nil
}

func (r *Reader) readPersonGenderNumber(seg *Segment, tag string) error {
	for _, ch := range tag {
		switch ch {
		case '1':
			seg.SetPerson(First)
		case '2':
			seg.SetPerson(Second)
		case '3':
			seg.SetPerson(Third)
		case 'M':
			seg.SetGender(Masculine)
		case 'F':
			seg.SetGender(Feminine)
		case 'S':
			seg.SetNumber(Singular)
		case 'D':
			seg.SetNumber(Dual)
		case 'P':
			seg.SetNumber(Plural)
		default:
			return unknownTag(tag)
		}
	}
	return nil
}

func (r *Reader) prefix(pos PartOfSpeech, lemma string) *Segment {
	seg := NewSegment(Prefix, pos)
	if lemma != "" {
		r.setLemma(seg, lemma)
	}
	return seg
}

func (r *Reader) suffix(pos PartOfSpeech, lemma string) *Segment {
	seg := NewSegment(Suffix, pos)
	if lemma != "" {
		r.setLemma(seg, lemma)
	}
	return seg
}

func (r *Reader) setLemma(seg *Segment, lemma string) {
	r.lemmas.Add(lemma)
	seg.SetLemma(lemma)
}
