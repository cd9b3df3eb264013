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

package dvw

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
)

// Extractor reads scout files and collects their serve/reception code pairs.
type Extractor struct {
	serve     *regexp.Regexp
	reception *regexp.Regexp
	diag      io.Writer
}

// NewExtractor returns an Extractor using the given patterns. Notes about out
// of place codes are written to diag. Pass nil to drop them.
func NewExtractor(p Patterns, diag io.Writer) *Extractor {
	if diag == nil {
		diag = io.Discard
	}
	return &Extractor{serve: p.Serve, reception: p.Reception, diag: diag}
}

// Extract reads r to the end and returns the code pairs it found, in file
// order. A serve code opens a new pair, and a reception code fills in the
// newest pair if it does not have one yet. A reception with no serve to
// attach to is reported to the diagnostic writer and dropped. Every other
// line is skipped.
//
// The returned error is only ever a read error. Strange code order is not
// fatal, the file very likely still has plenty worth merging.
func (e *Extractor) Extract(r io.Reader) (*Sequence, error) {
	pairs := []Pair{}

	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()

		if code := e.serve.FindString(line); code != "" {
			pairs = append(pairs, Pair{Serve: code})
			continue
		}

		if code := e.reception.FindString(line); code != "" {
			if len(pairs) == 0 || pairs[len(pairs)-1].HasReception {
				fmt.Fprintf(e.diag, "Reception code with no serve before it on line %v, ignoring it.\n", lineno)
				continue
			}
			pairs[len(pairs)-1].Reception = code
			pairs[len(pairs)-1].HasReception = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return NewSequence(pairs), nil
}
