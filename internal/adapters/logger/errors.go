package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err from the outermost layer inwards.
// zerr layers contribute their own message; the first standard error contributes its full
// text and ends the walk. Metadata of layers without a message is carried to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		meta := m.Metadata()
		if m.Message() == "" {
			if pending == nil {
				pending = make(map[string]any, len(meta))
			}
			maps.Copy(pending, meta)
			current = errors.Unwrap(current)
			continue
		}

		if pending != nil {
			maps.Copy(meta, pending)
			pending = nil
		}
		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
