package jsonutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
)

func TestMarshalNoEscapeKeepsUnicode(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"msg": "متجر <إلكتروني>"})
	tester.NoErr(t, err)
	s := string(b)
	tester.True(t, strings.Contains(s, "متجر"), "arabic must stay literal")
	tester.True(t, strings.Contains(s, "<"), "angle brackets must not be escaped")
}

func TestUnmarshalFlexDirect(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	tester.NoErr(t, UnmarshalFlex([]byte(`{"a": 3}`), &v))
	tester.Eq(t, v.A, 3)
}

func TestUnmarshalFlexStringWrapped(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	// Payload arrives as a JSON string holding escaped JSON.
	tester.NoErr(t, UnmarshalFlex([]byte(`"{\"a\": 5}"`), &v))
	tester.Eq(t, v.A, 5)
}

func TestUnmarshalFlexDoubleStringWrapped(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	wrapped, err := json.Marshal(`{"a": 7}`)
	tester.NoErr(t, err)
	rewrapped, err := json.Marshal(string(wrapped))
	tester.NoErr(t, err)
	tester.NoErr(t, UnmarshalFlex(rewrapped, &v))
	tester.Eq(t, v.A, 7)
}

func TestUnmarshalFlexQuotedProse(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	// A valid JSON string whose content is not JSON must still fail.
	err := UnmarshalFlex([]byte(`"just some prose"`), &v)
	tester.True(t, err != nil)
}

func TestUnmarshalFlexRejectsGarbage(t *testing.T) {
	var v map[string]any
	err := UnmarshalFlex([]byte("not json"), &v)
	tester.True(t, err != nil)
}

func TestUnescapeUnicode(t *testing.T) {
	out, err := UnescapeUnicode(`a < b`)
	tester.NoErr(t, err)
	tester.Eq(t, out, "a < b")
}
