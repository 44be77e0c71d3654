package service

import (
	"strings"
)

// JoinDisplayList flattens an ordered sequence of names into a single
// comma-separated display string. Order is preserved and there is no trailing
// separator.
func JoinDisplayList(items []string) string {
	return strings.Join(items, ", ")
}
