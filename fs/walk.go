package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docset"
)

// SourceFile describes one file of the input tree.
type SourceFile struct {
	// RelPath is the corpus-relative path with forward slashes.
	RelPath string

	// AbsPath locates the file on local storage.
	AbsPath string

	// HTML reports whether the file is a documentation page (as
	// opposed to a co-located asset).
	HTML bool
}

// WalkSource lists all regular files under root in lexical order.
// Returns ENOTFOUND when the root is missing or unreadable.
func WalkSource(root string) ([]SourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, docset.Errorf(docset.ENOTFOUND, "input root %q missing or unreadable: %v", root, err)
	}
	if !info.IsDir() {
		return nil, docset.Errorf(docset.EINVALID, "input root %q is not a directory", root)
	}

	var files []SourceFile
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, SourceFile{
			RelPath: filepath.ToSlash(rel),
			AbsPath: path,
			HTML:    strings.EqualFold(filepath.Ext(path), ".html"),
		})
		return nil
	})
	if err != nil {
		return nil, docset.Errorf(docset.ENOTFOUND, "input root %q missing or unreadable: %v", root, err)
	}

	return files, nil
}
