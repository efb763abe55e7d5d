package morph

// Particle lemmas with a fixed surface form, pre-seeded into every
// Interner so the feature extractor's lemma one-hot offsets are stable
// across runs regardless of which lemmas a given corpus happens to see.
const (
	PrefixWa         = "w"
	PrefixFa         = "f"
	PrefixBi         = "b"
	PrefixKa         = "k"
	PrefixTa         = "t"
	PrefixLa         = "l"
	PrefixSa         = "s"
	PrefixYa         = "yaA"
	PrefixHa         = "haA"
	SuffixNoon       = "n"
	VocativeSuffix   = "hum~a"
)

// Interner assigns a dense, stable integer id to each distinct lemma seen.
// It is the Go counterpart of the Python lemma service: a handful of
// particle lemmas are pre-seeded so their ids never shift between runs.
type Interner struct {
	ids   map[string]int
	order []string
}

func NewInterner() *Interner {
	in := &Interner{ids: make(map[string]int)}
	for _, l := range []string{
		PrefixWa, PrefixFa, PrefixBi, PrefixKa, PrefixTa, PrefixLa,
		PrefixSa, PrefixYa, PrefixHa, SuffixNoon, VocativeSuffix,
	} {
		in.Add(l)
	}
	return in
}

// Add interns lemma, assigning it the next id if it has not been seen.
func (in *Interner) Add(lemma string) int {
	if id, ok := in.ids[lemma]; ok {
		return id
	}
	id := len(in.order)
	in.ids[lemma] = id
	in.order = append(in.order, lemma)
	return id
}

// Count is the number of distinct interned lemmas.
func (in *Interner) Count() int { return len(in.order) }

// ValueOf returns the id of lemma, or false if it was never interned.
func (in *Interner) ValueOf(lemma string) (int, bool) {
	id, ok := in.ids[lemma]
	return id, ok
}
