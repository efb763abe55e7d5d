package graph

import "github.com/qtreebank/goparser/internal/morph"

// PhraseType is a closed set of six constituent-phrase tags.
type PhraseType int

const (
	Sentence PhraseType = iota
	NominalSentence
	VerbalSentence
	ConditionalSentence
	PrepositionPhrase
	SubordinateClause
)

var phraseTypeTags = [...]string{"S", "NS", "VS", "CS", "PP", "SC"}

// PhraseTypeCount is the size of the closed tag set.
const PhraseTypeCount = len(phraseTypeTags)

func (p PhraseType) Tag() string {
	if p < 0 || int(p) >= len(phraseTypeTags) {
		return ""
	}
	return phraseTypeTags[p]
}

func (p PhraseType) String() string { return p.Tag() }

var phraseTypeByTag = morph.BuildTagIndex(phraseTypeTags[:])

func ParsePhraseType(tag string) (PhraseType, bool) {
	v, ok := phraseTypeByTag[tag]
	return PhraseType(v), ok
}

// Relation is a closed set of ~44 dependency-edge labels.
type Relation int

const (
	Possessive Relation = iota
	Object
	Subject
	Conjunction
	Link
	Predicate
	Genitive
	Apposition
	Subordinate
	Adjective
	PassiveSubject
	SpecialSubject
	SpecialPredicate
	Circumstantial
	Vocative
	Exceptive
	CognateAccusative
	Specification
	Purpose
	Future
	Interrogative
	Emphasis
	Negation
	Prohibition
	Compound
	Condition
	Result
	ImperativeResult
	Imperative
	Certainty
	Answer
	Restriction
	Surprise
	Retraction
	Explanation
	Preventive
	Aversion
	Inceptive
	Exhortation
	Equalization
	Cause
	Amendment
	Supplemental
	Interpretation
	Comitative
)

var relationTags = [...]string{
	"poss", "obj", "subj", "conj", "link", "pred", "gen", "app", "sub",
	"adj", "pass", "subjx", "predx", "circ", "voc", "exp", "cog", "spec",
	"prp", "fut", "intg", "emph", "neg", "pro", "cpnd", "cond", "rslt",
	"imrs", "impv", "cert", "ans", "res", "sur", "ret", "exl", "prev",
	"avr", "inc", "exh", "eq", "caus", "amd", "sup", "int", "com",
}

// RelationCount is the size of the closed tag set.
const RelationCount = len(relationTags)

func (r Relation) Tag() string {
	if r < 0 || int(r) >= len(relationTags) {
		return ""
	}
	return relationTags[r]
}

func (r Relation) String() string { return r.Tag() }

var relationByTag = morph.BuildTagIndex(relationTags[:])

func ParseRelation(tag string) (Relation, bool) {
	v, ok := relationByTag[tag]
	return Relation(v), ok
}

// Relations lists every relation value in declaration order, mirroring the
// original source's Relation.relations list used by the action codec.
var Relations = func() []Relation {
	rs := make([]Relation, RelationCount)
	for i := range rs {
		rs[i] = Relation(i)
	}
	return rs
}()
