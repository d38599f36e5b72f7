package jsonutil

import "strings"

// MalformedResponseError reports that no JSON object could be located in a
// model reply. Raw keeps the full reply for diagnostics.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return "jsonutil: model response contains no JSON object structure\nRAW:\n" + e.Raw
}

// ExtractObject slices the JSON object most likely intended by a model reply
// that may be wrapped in markdown fences or prose.
//
// Markdown fence markers are stripped first. The start index is the first
// occurrence of hint when hint is non-empty and present, otherwise the first
// "{". The end index is the last "}" of the stripped text. If either index
// is missing, or the end does not follow the start, a
// *MalformedResponseError carrying the raw input is returned.
//
// This is a heuristic, not a parser: it does not balance braces, so replies
// holding several independent objects or unbalanced braces inside string
// literals can yield a bad slice. Callers must still parse the result and
// treat a parse failure as a distinct, recoverable condition.
func ExtractObject(raw, hint string) (string, error) {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := -1
	if hint != "" {
		start = strings.Index(s, hint)
	}
	if start == -1 {
		start = strings.Index(s, "{")
	}
	end := strings.LastIndex(s, "}")

	if start == -1 || end == -1 || end <= start {
		return "", &MalformedResponseError{Raw: raw}
	}
	return strings.TrimSpace(s[start : end+1]), nil
}
