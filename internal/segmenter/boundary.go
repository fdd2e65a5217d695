package segmenter

// BoundarySet is the set of punctuation code points that terminate a token
// during segmentation. Whitespace is always a boundary and is never part of
// the set. The set is an explicit value rather than a regexp character class
// so boundary rules can be tested and extended independently of the scan.
type BoundarySet map[rune]struct{}

// NewBoundarySet builds a set from the given code points.
func NewBoundarySet(runes ...rune) BoundarySet {
	set := make(BoundarySet, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return set
}

// DefaultBoundarySet covers the sentence and clause punctuation of Urdu
// prose and poetry:
//
//	U+06D4 ۔ Arabic full stop
//	U+060C ، Arabic comma
//	U+061B ؛ Arabic semicolon
//	U+061F ؟ Arabic question mark
//
// plus the Latin '!', ':' and '.' that appear in mixed-script text.
func DefaultBoundarySet() BoundarySet {
	return NewBoundarySet('۔', '،', '؛', '؟', '!', ':', '.')
}

// Contains reports whether r is a boundary punctuation mark.
func (s BoundarySet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Runes returns the set members as a slice, in unspecified order.
func (s BoundarySet) Runes() []rune {
	runes := make([]rune, 0, len(s))
	for r := range s {
		runes = append(runes, r)
	}
	return runes
}
