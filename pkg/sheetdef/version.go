package sheetdef

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// VersionSource supplies the version tag of a combined document.
type VersionSource interface {
	Version() (string, error)
}

// FileVersion reads the version from the first non-empty line of a file,
// such as the game's ffxivgame.ver.
type FileVersion string

// Version implements VersionSource.
func (p FileVersion) Version() (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: no version file configured", ErrUnreadableVersion)
	}
	f, err := os.Open(string(p))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableVersion, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableVersion, err)
	}
	return "", fmt.Errorf("%w: %s is empty", ErrUnreadableVersion, p)
}

// StaticVersion is a fixed version tag.
type StaticVersion string

// Version implements VersionSource.
func (s StaticVersion) Version() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", fmt.Errorf("%w: empty version", ErrUnreadableVersion)
	}
	return string(s), nil
}

// SynthesizeVersion returns the placeholder version for t,
// formatted as YYYY.MM.DD.0000.0000.
func SynthesizeVersion(t time.Time) string {
	return t.Format("2006.01.02") + ".0000.0000"
}

// ResolveVersion asks src for a version and falls back to a date-stamped
// placeholder. The returned version is always usable; a non-nil error tells
// why the placeholder was used.
func ResolveVersion(src VersionSource, now time.Time) (string, error) {
	if src == nil {
		return SynthesizeVersion(now), fmt.Errorf("%w: no version source", ErrUnreadableVersion)
	}
	v, err := src.Version()
	if err != nil {
		return SynthesizeVersion(now), err
	}
	return v, nil
}
