package utils

import (
	"os"
	"time"
)

// UnixNow returns the current wall-clock time in unix seconds.
func UnixNow() int64 {
	return time.Now().Unix()
}

// FileMtime returns the modification time of path in unix seconds.
// Returns 0 and the error if the file cannot be stat'ed.
func FileMtime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().Unix(), nil
}
