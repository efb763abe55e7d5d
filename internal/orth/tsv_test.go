package orth_test

import (
	"errors"
	"testing"

	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/orth"
)

func readLines(t *testing.T, lines ...string) *orth.TsvReader {
	t.Helper()
	r := orth.NewTsvReader(morph.NewInterner())
	for _, line := range lines {
		if err := r.ReadLine(line); err != nil {
			t.Fatalf("ReadLine(%q): %v", line, err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return r
}

func TestTsvReaderGroupsSegmentsByToken(t *testing.T) {
	r := readLines(t,
		"1\t1\t1\tبِ\tbi+",
		"1\t1\t1\tسْمِ\tPOS:N GEN LEM:{som",
		"1\t1\t2\tٱللَّهِ\tPOS:PN GEN LEM:{ll~ah",
	)

	if len(r.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(r.Tokens))
	}

	first := r.Tokens[0]
	if first.Location != orth.NewLocation(1, 1, 1) {
		t.Fatalf("unexpected first location %v", first.Location)
	}
	if len(first.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(first.Segments))
	}
	if first.Segments[0].Type != morph.Prefix || first.Segments[0].PartOfSpeech != morph.Preposition {
		t.Fatalf("expected a bi+ preposition prefix")
	}
	if first.Segments[0].SegmentNumber != 1 || first.Segments[1].SegmentNumber != 2 {
		t.Fatalf("expected 1-based segment numbers in order")
	}
	if first.Segment(2) != first.Segments[1] {
		t.Fatalf("Segment(n) should address by 1-based number")
	}
}

func TestTsvReaderImplicitSubjectPronounInheritsAgreement(t *testing.T) {
	r := readLines(t,
		"1\t1\t1\tقَالَ\tPOS:V PERF LEM:qAl 3MS",
		"1\t1\t1\t",
	)

	segments := r.Tokens[0].Segments
	if len(segments) != 2 {
		t.Fatalf("expected stem + implicit pronoun, got %d segments", len(segments))
	}
	pronoun := segments[1]
	if pronoun.Type != morph.Suffix || pronoun.PartOfSpeech != morph.Pronoun {
		t.Fatalf("expected a pronoun suffix, got %v %v", pronoun.Type, pronoun.PartOfSpeech)
	}
	if pronoun.Person != morph.Third || pronoun.Gender != morph.Masculine || pronoun.Number != morph.Singular {
		t.Fatalf("expected the pronoun to inherit 3MS from the stem")
	}
	if !pronoun.HasPronounType() || pronoun.PronounType != morph.SubjectPronoun {
		t.Fatalf("expected a subject pronoun")
	}
}

func TestTsvReaderMarksObjectPronouns(t *testing.T) {
	r := readLines(t,
		"1\t1\t1\tأَنزَلَ\tPOS:V PERF 3MS",
		"1\t1\t1\tهُ\tPRON:3MS",
		"1\t1\t1\tهَا\tPRON:3FS",
	)

	segments := r.Tokens[0].Segments
	if segments[1].PronounType != morph.ObjectPronoun {
		t.Fatalf("expected the first explicit pronoun to be an object")
	}
	if segments[2].PronounType != morph.SecondObjectPronoun {
		t.Fatalf("expected the second explicit pronoun to be a second object")
	}
}

func TestTsvReaderRejectsImplicitPronounWithoutStem(t *testing.T) {
	r := orth.NewTsvReader(morph.NewInterner())
	if err := r.ReadLine("1\t1\t1\t"); err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	err := r.Close()
	var missing orth.MissingStemError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingStemError, got %v", err)
	}
}

func TestCorpusLookup(t *testing.T) {
	r := readLines(t,
		"1\t1\t1\tبِ\tbi+",
		"1\t2\t1\tٱلْحَمْدُ\tPOS:N NOM",
		"2\t1\t1\tالٓمٓ\tPOS:INL",
	)
	corpus := orth.NewCorpus(r.Tokens)

	tok, err := corpus.Token(orth.NewLocation(1, 2, 1))
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok.Location != orth.NewLocation(1, 2, 1) {
		t.Fatalf("unexpected token %v", tok.Location)
	}

	if _, err := corpus.Token(orth.NewLocation(1, 2, 5)); err == nil {
		t.Fatalf("expected an error for a missing token")
	}
	if _, err := corpus.Token(orth.NewLocation(9, 9, 1)); err == nil {
		t.Fatalf("expected an error for a missing verse")
	}
}
