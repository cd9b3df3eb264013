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

	"github.com/milochristiansen/dvw/tools"
)

func main() {
	fs := tools.NewFlagSet(usage)
	fs.Parse(os.Args[1:])

	tools.HandleErrS(fs.NArg() != 1, "This program needs exactly one dvw file to read, see -h for usage.")
	input := fs.Arg(0)

	tools.RequireDVWFile(input)

	seq := tools.LoadPairs(input)

	alone := 0
	for _, p := range seq.Pairs() {
		if !p.HasReception {
			alone++
		}
		fmt.Println(p)
	}
	fmt.Printf("%v code pairs, %v with no reception.\n", seq.Len(), alone)
}

var usage = `Usage:

  dvwcodes file.dvw

This program lists the serve/reception code pairs a dvw file would contribute
to a merge, one pair per line, followed by a count. Handy for checking that
the detailed file actually carries what you think it does before rewriting
anything.
`
