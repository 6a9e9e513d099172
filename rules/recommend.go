package rules

import (
	"regexp"
	"strings"

	"flowmate/models"
)

// keywordFamily ties one service category to the phrases that suggest it.
// Families are evaluated in this fixed order; it doubles as the tie-break
// order for recommendations.
type keywordFamily struct {
	category models.ServiceCategory
	pattern  *regexp.Regexp
}

var keywordFamilies = []keywordFamily{
	{models.CategoryScripting, regexp.MustCompile(`\b(files?|folders?|csv|rename|renaming|downloads?|sorting|duplicates?)\b`)},
	{models.CategoryEmailHygiene, regexp.MustCompile(`\b(emails?|inbox|attachments?|outlook|gmail|unsubscribe)\b`)},
	{models.CategoryReporting, regexp.MustCompile(`\b(reports?|charts?|excel|dashboards?|spreadsheets?|pivot)\b`)},
	{models.CategoryWebsites, regexp.MustCompile(`\b(websites?|webpages?|landing(\s+page)?|homepage)\b`)},
	{models.CategoryPCSetup, regexp.MustCompile(`\b(pc|computers?|laptops?|setup|installs?|installation|workstations?)\b`)},
}

// handoffPattern is the single handoff predicate shared by the rule engine
// and the generative post-processing. Checking it before any topic keyword
// is a correctness requirement: a live-handoff offer must never be buried
// under a service pitch.
var handoffPattern = regexp.MustCompile(`\b(agent|human|representative|someone)\b|speak\s+with|talk\s+to`)

// maxRecommendations caps every recommendation list, on both response paths.
const maxRecommendations = 3

// IsHandoffRequest reports whether the text asks to reach a person.
func IsHandoffRequest(text string) bool {
	return handoffPattern.MatchString(strings.ToLower(text))
}

// Recommend matches text plus any accumulated pain points against the keyword
// families and returns up to three service categories, first-seen order,
// no duplicates. When nothing matches it falls back to the templates
// catch-all. This is the only recommendation matcher in the codebase; the
// rule engine, the generative post-processing and the default fallback all
// call it.
func Recommend(text string, painPoints []string) []models.ServiceCategory {
	haystack := strings.ToLower(text)
	if len(painPoints) > 0 {
		haystack += " " + strings.ToLower(strings.Join(painPoints, " "))
	}

	var out []models.ServiceCategory
	seen := map[models.ServiceCategory]bool{}
	for _, fam := range keywordFamilies {
		if !fam.pattern.MatchString(haystack) {
			continue
		}
		if seen[fam.category] {
			continue
		}
		seen[fam.category] = true
		out = append(out, fam.category)
		if len(out) == maxRecommendations {
			return out
		}
	}

	if len(out) == 0 {
		out = append(out, models.CategoryTemplates)
	}
	return out
}

// TopicDetected reports whether any keyword family matches the text, without
// the catch-all default. The selector uses it to decide whether the message
// is worth remembering as a pain point.
func TopicDetected(text string) bool {
	return len(matchingCategories(strings.ToLower(text))) > 0
}

// matchingCategories is Recommend without the catch-all default, for call
// sites that need to distinguish "no topic detected" from a real match.
func matchingCategories(haystack string) []models.ServiceCategory {
	var out []models.ServiceCategory
	for _, fam := range keywordFamilies {
		if fam.pattern.MatchString(haystack) {
			out = append(out, fam.category)
		}
	}
	return out
}
