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
	"io"
	"os"
	"strings"
	"time"

	"github.com/teris-io/shortid"
)

// FileExtension is the extension scout files are expected to carry, and
// BackupExtension is what MergeFile tacks on to name the backup copy.
const (
	FileExtension   = ".dvw"
	BackupExtension = ".bak"
)

// IsDVWFile reports whether path names a scout file we can work with. It has
// to exist, not be a directory, and carry the right extension.
func IsDVWFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && strings.HasSuffix(path, FileExtension)
}

// ID source for temp file names.
var tmpIDService <-chan string

func init() {
	c := make(chan string)
	tmpIDService = c

	go func() {
		idsource := shortid.MustNew(16, shortid.DefaultABC, uint64(time.Now().UnixNano()))

		for {
			c <- idsource.MustGenerate()
		}
	}()
}

// createTemp makes a fresh file next to path to stage its replacement in.
func createTemp(path string) (*os.File, error) {
	for {
		f, err := os.OpenFile(path+"."+<-tmpIDService+".tmp", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if os.IsExist(err) {
			continue
		}
		return f, err
	}
}

// MergeFile runs Merge over the file at path and replaces it with the merged
// version. The original content is kept beside it at path plus
// BackupExtension, clobbering any backup already there.
//
// The merged output is staged in a temporary sibling file and moved over the
// original by rename, and the backup copy is finished before the original is
// touched. If MergeFile returns an error the original file is intact.
func (m *Merger) MergeFile(path string, seq *Sequence, startLine int) (stats MergeStats, err error) {
	in, err := os.Open(path)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	tmp, err := createTemp(path)
	if err != nil {
		return stats, err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	stats, err = m.Merge(tmp, in, seq, startLine)
	if err != nil {
		return stats, err
	}
	err = tmp.Close()
	if err != nil {
		return stats, err
	}

	// The backup has to be complete before the original is replaced.
	_, err = in.Seek(0, io.SeekStart)
	if err != nil {
		return stats, err
	}
	bak, err := os.Create(path + BackupExtension)
	if err != nil {
		return stats, err
	}
	_, err = bak.ReadFrom(in)
	if err != nil {
		bak.Close()
		return stats, err
	}
	err = bak.Close()
	if err != nil {
		return stats, err
	}

	err = os.Rename(tmp.Name(), path)
	return stats, err
}
