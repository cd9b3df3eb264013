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

// Merger splices code pairs over the matching lines of a scout file.
type Merger struct {
	serve     *regexp.Regexp
	reception *regexp.Regexp
	diag      io.Writer
}

// NewMerger returns a Merger using the given patterns. The replacement log
// and notes about codes that could not be placed are written to diag. Pass
// nil to drop them.
func NewMerger(p Patterns, diag io.Writer) *Merger {
	if diag == nil {
		diag = io.Discard
	}
	return &Merger{serve: p.Serve, reception: p.Reception, diag: diag}
}

// MergeStats reports what a merge actually did.
type MergeStats struct {
	Lines      int // Lines written out.
	Serves     int // Serve codes replaced.
	Receptions int // Reception codes replaced.
	Unreplaced int // Serve lines left alone because the sequence ran dry.
}

// Merge copies r to w line by line, replacing serve and reception codes with
// the full versions from seq as it goes. Lines numbered below startLine are
// copied through untouched, pass zero or less to merge the whole file.
//
// On a line opening with a serve code, the next pair is consumed and its
// serve code replaces the matched one. If the line after that opens with a
// reception code and the pair has one, it is replaced the same way. Two
// serves in a row are fine, each consumes its own pair. Every replacement is
// logged to the diagnostic writer in a diff like format.
//
// Running out of pairs is not fatal. Each leftover serve line is reported
// and copied through so the output always carries every input line, in
// order, substituted or not. Line endings are normalized to "\n".
func (m *Merger) Merge(w io.Writer, r io.Reader, seq *Sequence, startLine int) (MergeStats, error) {
	stats := MergeStats{}
	out := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)

	// One line of lookahead, held here. The scan helper keeps the line
	// number honest no matter which loop pulled the line in.
	held, haveHeld, lineno := "", false, 0
	scan := func() bool {
		if !sc.Scan() {
			haveHeld = false
			return false
		}
		held = sc.Text()
		haveHeld = true
		lineno++
		return true
	}
	emit := func(line string) {
		fmt.Fprintln(out, line)
		stats.Lines++
	}

	scan()
	for haveHeld {
		if startLine > 0 && lineno < startLine {
			emit(held)
			scan()
			continue
		}

		// A substituted reception was already written, so the fallback
		// below must not write the held line a second time.
		receptionDone := false

		for m.serve.MatchString(held) {
			pair, ok := seq.Next()
			if !ok {
				fmt.Fprintf(m.diag, "Out of replacement codes, leaving serve on line %v as is.\n", lineno)
				stats.Unreplaced++
				break
			}

			loc := m.serve.FindStringIndex(held)
			line := pair.Serve + held[loc[1]:]
			emit(line)
			stats.Serves++
			fmt.Fprintf(m.diag, "< %v\n> %v\n", held, line)

			// The reception, if there is one, is on the very next line.
			if !scan() {
				break
			}
			if pair.HasReception && m.reception.MatchString(held) {
				loc = m.reception.FindStringIndex(held)
				line = pair.Reception + held[loc[1]:]
				emit(line)
				stats.Receptions++
				fmt.Fprintf(m.diag, "< %v\n> %v\n", held, line)
				receptionDone = true
			}
		}

		if haveHeld && !receptionDone {
			emit(held)
		}
		scan()
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}

	return stats, out.Flush()
}
