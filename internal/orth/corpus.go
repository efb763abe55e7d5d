package orth

import "fmt"

// Corpus indexes every token by its chapter:verse:token address. It is
// built once from the morphology ingest and read-only afterwards.
type Corpus struct {
	Chapters []*Chapter
}

// NewCorpus groups tokens into verses and chapters by their locations.
// Tokens must arrive in reading order, as the morphology stream delivers
// them.
func NewCorpus(tokens []*Token) *Corpus {
	c := &Corpus{}
	var verse *Verse
	var chapter *Chapter
	chapterNumber := 0

	for _, token := range tokens {
		loc := token.Location
		if chapter == nil || loc.ChapterNumber != chapterNumber {
			chapter = &Chapter{}
			chapterNumber = loc.ChapterNumber
			c.Chapters = append(c.Chapters, chapter)
			verse = nil
		}
		if verse == nil || verse.Location.VerseNumber != loc.VerseNumber {
			verse = &Verse{Location: NewLocation(loc.ChapterNumber, loc.VerseNumber, 0)}
			chapter.Verses = append(chapter.Verses, verse)
		}
		verse.Tokens = append(verse.Tokens, token)
	}
	return c
}

// Token resolves a location to its token.
func (c *Corpus) Token(loc Location) (*Token, error) {
	for _, chapter := range c.Chapters {
		for _, verse := range chapter.Verses {
			if verse.Location.ChapterNumber != loc.ChapterNumber ||
				verse.Location.VerseNumber != loc.VerseNumber {
				continue
			}
			if loc.TokenNumber < 1 || loc.TokenNumber > len(verse.Tokens) {
				return nil, fmt.Errorf("orth: no token at %v", loc)
			}
			return verse.Tokens[loc.TokenNumber-1], nil
		}
	}
	return nil, fmt.Errorf("orth: no verse at %v", loc)
}
