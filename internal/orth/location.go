// Package orth models the chapter:verse:token addressing scheme that
// identifies every word in the corpus.
package orth

import (
	"fmt"
	"strconv"
	"strings"
)

// Location addresses a chapter, verse, and (optionally) a specific token
// within that verse. A zero TokenNumber means "the verse as a whole".
type Location struct {
	ChapterNumber int
	VerseNumber   int
	TokenNumber   int
}

func NewLocation(chapter, verse, token int) Location {
	return Location{ChapterNumber: chapter, VerseNumber: verse, TokenNumber: token}
}

func (l Location) String() string {
	if l.TokenNumber > 0 {
		return fmt.Sprintf("%d:%d:%d", l.ChapterNumber, l.VerseNumber, l.TokenNumber)
	}
	return fmt.Sprintf("%d:%d", l.ChapterNumber, l.VerseNumber)
}

// ParseLocation parses a "chapter:verse:token" or "chapter:verse" address.
func ParseLocation(text string) (Location, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Location{}, fmt.Errorf("orth: malformed location: %q", text)
	}
	chapter, err := strconv.Atoi(parts[0])
	if err != nil {
		return Location{}, fmt.Errorf("orth: malformed location: %q", text)
	}
	verse, err := strconv.Atoi(parts[1])
	if err != nil {
		return Location{}, fmt.Errorf("orth: malformed location: %q", text)
	}
	token := 0
	if len(parts) == 3 {
		token, err = strconv.Atoi(parts[2])
		if err != nil {
			return Location{}, fmt.Errorf("orth: malformed location: %q", text)
		}
	}
	return Location{ChapterNumber: chapter, VerseNumber: verse, TokenNumber: token}, nil
}
