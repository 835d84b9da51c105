package providers

import "strings"

// quotaMarkers are the substrings that mark a result as a quota/rate-limit
// condition. Matching is case-insensitive.
var quotaMarkers = []string{
	"quota",
	"exceeded",
	"429",
	"rate limit",
	"limit exceeded",
}

// IsQuotaCondition reports whether a provider result indicates the backend
// refused service due to usage limits or rate limiting. An empty result is
// not a quota condition.
//
// This is a substring heuristic over the result text, shared by the gemini
// adapter (to rotate credentials) and the orchestrator (to advance to the
// next provider). A legitimate answer that happens to mention "quota" or
// "429" is therefore misclassified and skipped; that is the documented
// behavior of this contract.
func IsQuotaCondition(result string) bool {
	if result == "" {
		return false
	}

	lower := strings.ToLower(result)
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}
