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

package tools

import (
	"fmt"
	"os"
)

// The merge tools share one error policy: complain on standard error and get
// out with exit code 1. These helpers keep the mains readable.

// HandleErr writes err to standard error and calls os.Exit(1), unless err is
// nil in which case it does nothing at all.
func HandleErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// HandleErrV is HandleErr for the common value+error return shape. The value
// is passed through untouched if the error is nil.
func HandleErrV[T any](t T, err error) T {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return t
}

// HandleErrS bails with the given message if the condition is true, for the
// errors that arrive as booleans instead of error values.
func HandleErrS(cond bool, err string) {
	if cond {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
