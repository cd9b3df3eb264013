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
	"strings"

	"github.com/milochristiansen/dvw"
	"github.com/milochristiansen/dvw/tools"
)

func main() {
	fs := tools.NewFlagSet(usage)
	fs.Parse(os.Args[1:])

	tools.HandleErrS(fs.NArg() != 1, "This program needs exactly one dvw file to restore, see -h for usage.")
	input := fs.Arg(0)

	tools.HandleErrS(!strings.HasSuffix(input, dvw.FileExtension), input+" does not look like a dvw file, exiting...")

	backup := input + dvw.BackupExtension
	info, err := os.Stat(backup)
	tools.HandleErrS(os.IsNotExist(err), "No backup found for "+input+", nothing to restore.")
	tools.HandleErr(err)
	tools.HandleErrS(info.IsDir(), backup+" is a directory, not a backup.")

	tools.HandleErr(os.Rename(backup, input))

	fmt.Println("Restored " + input + " from its backup.")
}

var usage = `Usage:

  dvwrestore file.dvw

This program undoes the last merge by moving the .bak file a merge leaves
behind back over the dvw file it came from. The backup is consumed in the
process, there is only ever one level of undo.
`
