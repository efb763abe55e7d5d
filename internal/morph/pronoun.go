package morph

// SurfacePronoun returns the surface form of the elided subject pronoun for
// the given person/gender/number, or "" if the corpus has no fixed surface
// form for that combination. First-person forms ignore gender; dual,
// second-person feminine, and third-person feminine plural subjects fall
// through to "".
func SurfacePronoun(person PersonType, gender GenderType, number NumberType) string {
	switch {
	case person == First && number == Singular:
		return "أَنَا"
	case person == First && number == Plural:
		return "نَحْنُ"
	case person == Second && gender == Masculine && number == Singular:
		return "أَنتَ"
	case person == Second && gender == Masculine && number == Plural:
		return "أَنتُم"
	case person == Third && gender == Masculine && number == Singular:
		return "هُوَ"
	case person == Third && gender == Feminine && number == Singular:
		return "هِىَ"
	case person == Third && gender == Masculine && number == Plural:
		return "هُم"
	default:
		return ""
	}
}
