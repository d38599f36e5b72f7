package jsonutil

import (
	"errors"
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
)

func TestExtractObjectStripsFences(t *testing.T) {
	raw := "Sure, here you go:\n```json\n{\"a\": 1}\n```\nLet me know if you need more."
	got, err := ExtractObject(raw, "")
	tester.NoErr(t, err)
	tester.Eq(t, got, `{"a": 1}`)
}

func TestExtractObjectBareObject(t *testing.T) {
	got, err := ExtractObject(`  {"phases": []}  `, "")
	tester.NoErr(t, err)
	tester.Eq(t, got, `{"phases": []}`)
}

func TestExtractObjectHintAnchorsStart(t *testing.T) {
	raw := `{"noise": true} and then {"project_scope": "x", "risks": []}`
	got, err := ExtractObject(raw, `{"project_scope"`)
	tester.NoErr(t, err)
	tester.Eq(t, got, `{"project_scope": "x", "risks": []}`)
}

func TestExtractObjectMissingHintFallsBackToFirstBrace(t *testing.T) {
	got, err := ExtractObject(`prose {"a": 1} prose`, `{"does_not_appear"`)
	tester.NoErr(t, err)
	tester.Eq(t, got, `{"a": 1}`)
}

func TestExtractObjectNoObject(t *testing.T) {
	_, err := ExtractObject("I cannot answer that.", "")
	var merr *MalformedResponseError
	tester.True(t, errors.As(err, &merr), "want MalformedResponseError")
	tester.Eq(t, merr.Raw, "I cannot answer that.")
}

func TestExtractObjectEndBeforeStart(t *testing.T) {
	_, err := ExtractObject("} {", "")
	var merr *MalformedResponseError
	tester.True(t, errors.As(err, &merr), "want MalformedResponseError")
}
