/*
Copyright 2024 by Milo Christiansen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

/*
Package dvw splices volleyball scout codes between DataVolley (.dvw) files.

A match commonly gets scouted twice: a quick pass during play with bare-bones
codes, and a slower pass from video that fills in the detail on serve and
reception. The detailed pass lands in its own file, and the interesting codes
need to be carried over into the main file without disturbing anything else
in it.

Extractor pulls the serve/reception code pairs out of the detailed file, and
Merger writes them over the matching lines of the main file, in order. Both
work on plain readers and writers, and both report anomalies to a diagnostic
writer instead of giving up, since a partial merge still saves the analyst
retyping most of a match. Merger.MergeFile covers the common case of editing
a file on disk, complete with a backup copy and an atomic replace.
*/
package dvw

import (
	"regexp"

	"golang.org/x/exp/slices"
)

// The default code patterns. A code opens with the team marker (* for home, a
// for away), then a two digit player number, then the skill letter, and runs
// to the first field separator.
//
// Example line:  a13ST-~~~65B;;;;0563;-1-1;7377;17.07.22;1;1;1;1;4603;;...
// Code matched:  a13ST-~~~65B
const (
	servePattern     = `^[*a][0-9]{2}S[^;]*`
	receptionPattern = `^[*a][0-9]{2}R[^;]*`
)

// Patterns holds the matchers used to pick code lines out of a scout file.
// Both expressions must be anchored to the start of the line. If they are
// not, the merge step will splice replacement codes into the middle of lines,
// which is probably not what anyone wants.
type Patterns struct {
	Serve     *regexp.Regexp
	Reception *regexp.Regexp
}

// DefaultPatterns returns matchers for standard serve and reception codes.
func DefaultPatterns() Patterns {
	return Patterns{
		Serve:     regexp.MustCompile(servePattern),
		Reception: regexp.MustCompile(receptionPattern),
	}
}

// Pair is a serve code and the reception code it drew, if any.
type Pair struct {
	Serve        string // The full serve code, for example *05SQ#~~~18C
	Reception    string // Only meaningful if HasReception is set.
	HasReception bool   // False when no reception follows the serve, as on a missed serve.
}

func (p Pair) String() string {
	if !p.HasReception {
		return p.Serve
	}
	return p.Serve + "\t" + p.Reception
}

// Sequence is an ordered run of code pairs, consumed front to back by the
// Merger. The pair list is copied going in and coming out, so a Sequence
// cannot be corrupted by editing a slice someone else is still holding.
type Sequence struct {
	pairs []Pair
	next  int
}

// NewSequence returns a Sequence over a copy of the given pairs.
func NewSequence(pairs []Pair) *Sequence {
	return &Sequence{pairs: slices.Clone(pairs)}
}

// Next returns the next unconsumed pair. Once the sequence is used up it
// returns a zero Pair and false.
func (s *Sequence) Next() (Pair, bool) {
	if s.next >= len(s.pairs) {
		return Pair{}, false
	}
	p := s.pairs[s.next]
	s.next++
	return p, true
}

// Len returns the total number of pairs in the sequence, consumed or not.
func (s *Sequence) Len() int {
	return len(s.pairs)
}

// Remaining returns the number of pairs that have not been consumed yet.
func (s *Sequence) Remaining() int {
	return len(s.pairs) - s.next
}

// Pairs returns a copy of every pair in the sequence, including consumed ones.
func (s *Sequence) Pairs() []Pair {
	return slices.Clone(s.pairs)
}
