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

package main

import (
	"fmt"
	"os"

	"github.com/milochristiansen/dvw"
	"github.com/milochristiansen/dvw/tools"
)

func main() {
	fs := tools.NewFlagSet(usage)
	codes := ""
	fs.StringVar(&codes, "serve-codes", "", "The dvw file `path` to pull full serve codes from.")
	fs.StringVar(&codes, "s", "", "Shorthand for -serve-codes.")
	startLine := 0
	fs.IntVar(&startLine, "line-number", 0, "The `line` number to start the merge on.")
	fs.IntVar(&startLine, "l", 0, "Shorthand for -line-number.")
	fs.Parse(os.Args[1:])

	tools.HandleErrS(fs.NArg() != 1, "This program needs exactly one dvw file to update, see -h for usage.")
	input := fs.Arg(0)

	tools.HandleErrS(codes == "", "No codes to merge, add -serve-codes.")

	tools.RequireDVWFile(input)
	tools.RequireDVWFile(codes)

	seq := tools.LoadPairs(codes)

	m := dvw.NewMerger(dvw.DefaultPatterns(), os.Stderr)
	stats := tools.HandleErrV(m.MergeFile(input, seq, startLine))

	fmt.Printf("Replaced %v serve and %v reception codes across %v lines.\n", stats.Serves, stats.Receptions, stats.Lines)
	if stats.Unreplaced > 0 {
		fmt.Printf("%v serve lines had no code pair available.\n", stats.Unreplaced)
	}
	if n := seq.Remaining(); n > 0 {
		fmt.Printf("%v code pairs were never used.\n", n)
	}
	fmt.Println("Successfully merged dvw files.")
}

var usage = `Usage:

  dvwmerge [flags] file.dvw

This program merges the detailed serve and reception codes scouted into one
dvw file into the matching lines of a second dvw file covering the same
match. The file named on the command line is updated in place, and its
original content is saved beside it with a .bak extension first.

Replacement runs top to bottom: every line opening with a serve code gets the
next full serve code, and when the line right after it opens with a reception
code it gets that serve's reception code. Lines are never added, removed, or
reordered. Everything the program changes or could not change is reported on
standard error, the file keeps working even when the two scouts disagree on
the number of serves.
`
