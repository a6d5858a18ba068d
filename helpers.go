package tourweb

import (
	"errors"
	"strconv"
	"strings"
)

// FilterEmpty trims vals and drops the blank ones. The result is never nil.
func FilterEmpty(vals []string) []string {
	out := []string{}
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitTags parses the comma-separated tags field of the post editor.
func SplitTags(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// SplitLines parses a one-item-per-line textarea.
func SplitLines(s string) []string {
	return FilterEmpty(strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n"))
}

// formInt parses an integer form field; blank or malformed input yields 0,
// which the settings validation rejects.
func formInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// errorMessages flattens an errors.Join result into one message per error.
func errorMessages(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, errorMessages(e)...)
		}
		return msgs
	}
	return []string{err.Error()}
}

// errorsIsAny reports whether err matches any of targets.
func errorsIsAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
