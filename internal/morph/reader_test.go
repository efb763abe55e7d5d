package morph_test

import (
	"testing"

	"github.com/qtreebank/goparser/internal/morph"
)

func TestReadStemWithFeatures(t *testing.T) {
	lemmas := morph.NewInterner()
	r := morph.NewReader(lemmas)

	seg, err := r.Read("POS:V PERF (III) LEM:qAtal ROOT:qtl 3MS MOOD:IND", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if seg.Type != morph.Stem || seg.PartOfSpeech != morph.Verb {
		t.Fatalf("expected a verb stem, got %v %v", seg.Type, seg.PartOfSpeech)
	}
	if !seg.HasLemma() || seg.Lemma != "qAtal" {
		t.Fatalf("expected lemma qAtal, got %q", seg.Lemma)
	}
	if _, ok := lemmas.ValueOf("qAtal"); !ok {
		t.Fatalf("expected the lemma to be interned")
	}
	if !seg.HasPerson() || seg.Person != morph.Third ||
		!seg.HasGender() || seg.Gender != morph.Masculine ||
		!seg.HasNumber() || seg.Number != morph.Singular {
		t.Fatalf("expected 3MS agreement, got %+v", seg)
	}
	if !seg.HasMood() || seg.Mood != morph.Indicative {
		t.Fatalf("expected indicative mood")
	}
}

func TestReadStemPassiveAndCase(t *testing.T) {
	r := morph.NewReader(morph.NewInterner())

	seg, err := r.Read("POS:V IMPF PASS", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !seg.HasVoice() || seg.Voice != morph.Passive {
		t.Fatalf("expected passive voice")
	}

	seg, err = r.Read("POS:N GEN DEF", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !seg.HasCase() || seg.Case != morph.Genitive {
		t.Fatalf("expected genitive case")
	}
	if !seg.HasState() || seg.State != morph.Definite {
		t.Fatalf("expected definite state")
	}
}

func TestReadPassiveParticipleIsNotPassiveVoice(t *testing.T) {
	r := morph.NewReader(morph.NewInterner())
	seg, err := r.Read("POS:N PASS PCPL", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if seg.HasVoice() {
		t.Fatalf("PASS PCPL is a participle marker, not passive voice")
	}
}

func TestReadPronounSuffix(t *testing.T) {
	r := morph.NewReader(morph.NewInterner())
	seg, err := r.Read("PRON:3MP", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if seg.Type != morph.Suffix || seg.PartOfSpeech != morph.Pronoun {
		t.Fatalf("expected a pronoun suffix, got %v %v", seg.Type, seg.PartOfSpeech)
	}
	if seg.Person != morph.Third || seg.Gender != morph.Masculine || seg.Number != morph.Plural {
		t.Fatalf("expected 3MP agreement, got %+v", seg)
	}
}

func TestReadLaPrefixDependsOnStem(t *testing.T) {
	r := morph.NewReader(morph.NewInterner())

	prefix, err := r.Read("l:P+", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if prefix.Type != morph.Prefix || prefix.PartOfSpeech != morph.Preposition {
		t.Fatalf("expected a preposition prefix before the stem, got %v %v", prefix.Type, prefix.PartOfSpeech)
	}

	suffix, err := r.Read("l:P+", true)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if suffix.Type != morph.Suffix {
		t.Fatalf("expected a suffix after the stem, got %v", suffix.Type)
	}
}

func TestReadFixedAffix(t *testing.T) {
	lemmas := morph.NewInterner()
	r := morph.NewReader(lemmas)

	seg, err := r.Read("w:CONJ+", false)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if seg.Type != morph.Prefix || seg.PartOfSpeech != morph.Conjunction {
		t.Fatalf("expected a conjunction prefix, got %v %v", seg.Type, seg.PartOfSpeech)
	}
	if !seg.HasLemma() || seg.Lemma != morph.PrefixWa {
		t.Fatalf("expected the wa lemma, got %q", seg.Lemma)
	}
}

func TestReadUnknownMorphologyFails(t *testing.T) {
	r := morph.NewReader(morph.NewInterner())
	if _, err := r.Read("zz:BOGUS+", false); err == nil {
		t.Fatalf("expected an error for an unknown affix literal")
	}
	if _, err := r.Read("POS:ZZZ", false); err == nil {
		t.Fatalf("expected an error for an unknown POS tag")
	}
}

func TestInternerPreseedsParticleLemmas(t *testing.T) {
	lemmas := morph.NewInterner()
	if lemmas.Count() != 11 {
		t.Fatalf("expected 11 pre-seeded lemmas, got %d", lemmas.Count())
	}
	if id, ok := lemmas.ValueOf(morph.PrefixWa); !ok || id != 0 {
		t.Fatalf("expected wa at id 0")
	}
	if _, ok := lemmas.ValueOf("never-added"); ok {
		t.Fatalf("expected lookup of an unknown lemma to fail")
	}
	first := lemmas.Add("ramaY")
	if again := lemmas.Add("ramaY"); again != first {
		t.Fatalf("expected a stable id for a re-added lemma")
	}
}
