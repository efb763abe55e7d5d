package morph

import "fmt"

// ReaderError reports a malformed morphology tag string.
type ReaderError struct {
	Tag     string
	Message string
}

func (e *ReaderError) Error() string {
	return fmt.Sprintf("morph: %s: %q", e.Message, e.Tag)
}

func unknownMorphology(tag string) error {
	return &ReaderError{Tag: tag, Message: "unknown morphology"}
}

func unknownTag(tag string) error {
	return &ReaderError{Tag: tag, Message: "unknown tag"}
}
