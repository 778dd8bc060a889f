// Package utils contains file helpers shared by the executables.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes buf to a new file whose path is indicated by filename.
// It fails if the file already exists.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("Can't write file. File '%s' already exists", filename)
		}
		return err
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
