package planner

import (
	"strings"
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
)

func TestDetectLanguage(t *testing.T) {
	tester.Eq(t, DetectLanguage("build an online store"), "en")
	tester.Eq(t, DetectLanguage("أريد بناء متجر إلكتروني"), "ar")
	tester.Eq(t, DetectLanguage("mixed نص text"), "ar")
	tester.Eq(t, DetectLanguage(""), "en")
}

func TestTooShortScope(t *testing.T) {
	tester.True(t, TooShortScope("online store with payments"), "4 words is short")
	tester.False(t, TooShortScope("an online store with payments"), "5 words passes")
	tester.True(t, TooShortScope("   "), "whitespace only")
}

func TestShortScopeMessageLocalized(t *testing.T) {
	tester.True(t, strings.Contains(ShortScopeMessage("متجر صغير"), "5"), "arabic message mentions the floor")
	tester.True(t, strings.Contains(ShortScopeMessage("tiny shop"), "at least 5 words"))
}
