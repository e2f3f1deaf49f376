package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSaveRecord = errors.New("invalid save record")

// FormatSaveRecord prefixes a save state envelope with the elapsed seconds.
// An empty envelope means there is nothing to resume.
func FormatSaveRecord(elapsedSeconds int, envelope string) string {
	if envelope == "" {
		return ""
	}
	return strconv.Itoa(elapsedSeconds) + "." + envelope
}

func ParseSaveRecord(s string) (elapsedSeconds int, envelope string, err error) {
	if s == "" {
		return 0, "", nil
	}
	secs, envelope, ok := strings.Cut(s, ".")
	if !ok {
		return 0, "", fmt.Errorf("%w: missing separator", ErrInvalidSaveRecord)
	}
	elapsedSeconds, err = strconv.Atoi(secs)
	if err != nil || elapsedSeconds < 0 {
		return 0, "", fmt.Errorf("%w: bad elapsed time %q", ErrInvalidSaveRecord, secs)
	}
	return elapsedSeconds, envelope, nil
}
