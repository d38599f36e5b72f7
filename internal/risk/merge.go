package risk

import "github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"

// Merge combines the two risk lists, rule-based first, model-based second,
// and renumbers the result 1..N in list order, overwriting whatever ids
// the producers assigned. Pure re-indexing: no deduplication and no
// merging of semantically similar entries.
func Merge(ruleBased, aiBased []types.Risk) []types.Risk {
	combined := make([]types.Risk, 0, len(ruleBased)+len(aiBased))
	combined = append(combined, ruleBased...)
	combined = append(combined, aiBased...)
	for i := range combined {
		combined[i].ID = i + 1
	}
	return combined
}

// arTranslations maps the fixed English strings of rule-produced risks to
// Arabic. Lookup falls through to the original text, so model-authored
// descriptions usually pass unchanged.
var arTranslations = map[string]string{
	"API Delay Risk":                 "مخاطر تأخر واجهة API",
	"Integration Failure Risk":       "مخاطر فشل التكامل",
	"Data Model Instability Risk":    "مخاطر عدم استقرار نموذج البيانات",
	"Data Migration Risk":            "مخاطر ترحيل البيانات",
	"Security Vulnerability Risk":    "مخاطر الثغرات الأمنية",
	"Payment Provider Risk":          "مخاطر مزود الدفع",
	"Insufficient Testing Risk":      "مخاطر عدم كفاية الاختبار",
	"Deployment Failure Risk":        "مخاطر فشل النشر",
	"UI Rework Risk":                 "مخاطر إعادة تصميم الواجهة",
	"Scope Creep Risk":               "مخاطر توسع نطاق المشروع",
	"Task depends on external or backend API readiness.": "المهمة تعتمد على جاهزية واجهات API الخارجية أو الخلفية.",
}

// TranslateRuleBased rewrites titles and descriptions of rule-based risks
// through the fixed Arabic dictionary. Applied only when the scope language
// is "ar", and only to the rule-based list; the model already writes
// scope-based risks in the detected language.
func TranslateRuleBased(risks []types.Risk) {
	for i := range risks {
		if t, ok := arTranslations[risks[i].Title]; ok {
			risks[i].Title = t
		}
		if d, ok := arTranslations[risks[i].Description]; ok {
			risks[i].Description = d
		}
	}
}
