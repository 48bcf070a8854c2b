package tool

import (
	"errors"
	"io/fs"
	"os"
)

// IsFileExists reports whether filename exists, other stat errors are returned
func IsFileExists(filename string) (bool, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
