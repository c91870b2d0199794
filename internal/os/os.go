package os

import (
	"fmt"
	"os"
)

// EnsureDir ensures the given directory exists, creating it if necessary.
// Errors if the path already exists as a non-directory.
func EnsureDir(dir string, mode os.FileMode) error {
	err := os.MkdirAll(dir, mode)
	if err != nil {
		return fmt.Errorf("could not create directory %q: %w", dir, err)
	}
	return nil
}

// FileExists reports whether a file exists at the given path.
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// MustWriteFile writes the file or exits the process.
func MustWriteFile(filePath string, contents []byte, mode os.FileMode) {
	if err := os.WriteFile(filePath, contents, mode); err != nil {
		Exit(fmt.Sprintf("MustWriteFile failed: %v", err))
	}
}

// Exit prints the message and exits with status 1.
func Exit(s string) {
	fmt.Println(s)
	os.Exit(1)
}
