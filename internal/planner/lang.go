package planner

import "strings"

// minScopeWords is the processable floor for a project scope; shorter input
// is rejected before any gateway call.
const minScopeWords = 5

const arabicLetters = "ابتثجحخدذرزسشصضطظعغفقكلمنهويءأإآىة"

// DetectLanguage classifies text as "ar" when it contains any Arabic
// letter, "en" otherwise.
func DetectLanguage(text string) string {
	if strings.ContainsAny(text, arabicLetters) {
		return "ar"
	}
	return "en"
}

// TooShortScope reports whether text has fewer than five non-empty words.
func TooShortScope(text string) bool {
	return len(strings.Fields(text)) < minScopeWords
}

// ShortScopeMessage returns the localized rejection for a too-short scope.
func ShortScopeMessage(text string) string {
	if DetectLanguage(text) == "ar" {
		return "يجب إدخال وصف مشروع برمجي يحتوي على 5 كلمات على الأقل."
	}
	return "You must provide a software project description of at least 5 words."
}

// NotSoftwareMessage returns the localized refusal for non-software input.
func NotSoftwareMessage(text string) string {
	if DetectLanguage(text) == "ar" {
		return "هذا الطلب لا يبدو متعلقاً بمشروع برمجي، يمكنني المساعدة فقط في تخطيط مشاريع البرمجيات."
	}
	return "This request does not seem to be related to a software or IT project. " +
		"I can only assist with software project planning."
}

// LanguageInstruction builds the system message that pins human-readable
// output to the user's language while keeping JSON keys in English.
func LanguageInstruction(text string) string {
	if DetectLanguage(text) == "ar" {
		return "The user's language is Arabic. " +
			"You MUST write all human-readable text (names, descriptions, explanations, risk titles) " +
			"in clear Modern Standard Arabic. " +
			"Keep all JSON keys in English exactly as specified."
	}
	return "The user's language is English. " +
		"You MUST write all human-readable text in English. " +
		"Keep all JSON keys in English exactly as specified."
}

// ValidationError is a caller-facing input rejection with a localized,
// human-readable message. It never reaches the gateway.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
