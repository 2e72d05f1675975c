package blobstore

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var safeNamePattern = regexp.MustCompile(`^[\w\-. ]+$`)

// CleanName reduces name to its base element and checks it is a safe blob name:
// word characters, dashes, dots and spaces only, not hidden, at most 255 bytes.
func CleanName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: must be a non-empty string", ErrInvalidName)
	}

	base := filepath.Base(filepath.ToSlash(strings.ReplaceAll(name, `\`, "/")))
	if !safeNamePattern.MatchString(base) {
		return "", fmt.Errorf("%w: %q contains unsafe characters", ErrInvalidName, base)
	}
	if strings.HasPrefix(base, ".") {
		return "", fmt.Errorf("%w: hidden names are not allowed", ErrInvalidName)
	}
	if len(base) > maxNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidName, maxNameLength)
	}
	return base, nil
}

func checkSize(data []byte) error {
	if len(data) > MaxBlobSize {
		return fmt.Errorf("%w: %.2fMB (max %dMB)", ErrTooLarge, float64(len(data))/1024/1024, MaxBlobSize/1024/1024)
	}
	return nil
}
