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

// Guts contains random common code used for implementing the various tools.
package tools

import (
	"flag"
	"fmt"
	"os"

	"github.com/milochristiansen/dvw"
)

// NewFlagSet returns a flag set that prints the given usage message ahead of
// the flag defaults and exits on parse errors.
func NewFlagSet(usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

// RequireDVWFile exits with a message unless path names an existing dvw file.
func RequireDVWFile(path string) {
	HandleErrS(!dvw.IsDVWFile(path), path+" is not a valid dvw file, exiting...")
}

// LoadPairs reads the serve/reception code pairs out of the dvw file at path,
// with extraction notes going to standard error. On any error the message is
// logged to standard error and the program exits with code 1.
func LoadPairs(path string) *dvw.Sequence {
	f := HandleErrV(os.Open(path))
	defer f.Close()

	return HandleErrV(dvw.NewExtractor(dvw.DefaultPatterns(), os.Stderr).Extract(f))
}
