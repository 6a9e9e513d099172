// Package catalog is the read-only service catalog consulted by both chatbot
// response paths and the pricing quick reply.
package catalog

import (
	"fmt"
	"strings"

	"flowmate/models"
)

var services = map[models.ServiceCategory]models.ServiceInfo{
	models.CategoryScripting: {
		Category:       models.CategoryScripting,
		Name:           "Basic Scripting & Automation",
		Description:    "Small scripts that rename, sort and clean up files, fold CSV exports together, and take repetitive clicking off your plate.",
		Icon:           "terminal",
		PriceRange:     "$249–$499",
		Turnaround:     "3–5 business days",
		TypicalSavings: "2–5 hours/week",
	},
	models.CategoryEmailHygiene: {
		Category:       models.CategoryEmailHygiene,
		Name:           "Email & File Hygiene",
		Description:    "Inbox rules, attachment filing, folder structures that maintain themselves. Your inbox stops being a to-do list.",
		Icon:           "inbox",
		PriceRange:     "$199–$399",
		Turnaround:     "2–4 business days",
		TypicalSavings: "1–4 hours/week",
	},
	models.CategoryReporting: {
		Category:       models.CategoryReporting,
		Name:           "Reports & Dashboards",
		Description:    "Recurring Excel reports and charts that build themselves from your data, on schedule, without copy-paste.",
		Icon:           "bar-chart",
		PriceRange:     "$349–$699",
		Turnaround:     "5–10 business days",
		TypicalSavings: "3–6 hours/week",
	},
	models.CategoryWebsites: {
		Category:       models.CategoryWebsites,
		Name:           "Simple Websites & Landing Pages",
		Description:    "A clean one-page site or landing page with a contact form, built fast and easy to update.",
		Icon:           "globe",
		PriceRange:     "$499–$999",
		Turnaround:     "1–2 weeks",
		TypicalSavings: "n/a (new capability)",
	},
	models.CategoryPCSetup: {
		Category:       models.CategoryPCSetup,
		Name:           "PC Setup & Install Helpers",
		Description:    "New-machine setup scripts, software installs and settings applied consistently across every workstation.",
		Icon:           "monitor",
		PriceRange:     "$149–$349",
		Turnaround:     "2–3 business days",
		TypicalSavings: "1–3 hours per machine",
	},
	models.CategoryTemplates: {
		Category:       models.CategoryTemplates,
		Name:           "Templates & Small Tools",
		Description:    "Document templates, spreadsheet tools and small utilities tailored to how your team already works.",
		Icon:           "layout",
		PriceRange:     "$99–$299",
		Turnaround:     "1–3 business days",
		TypicalSavings: "1–2 hours/week",
	},
}

// Lookup 은 카테고리의 서비스 정보를 반환한다.
func Lookup(cat models.ServiceCategory) (models.ServiceInfo, bool) {
	info, ok := services[cat]
	return info, ok
}

// All returns the catalog in the fixed category order.
func All() []models.ServiceInfo {
	out := make([]models.ServiceInfo, 0, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		out = append(out, services[cat])
	}
	return out
}

// PriceList 는 가격 문의 응답에 쓰이는 패키지 목록 텍스트를 만든다.
func PriceList() string {
	var b strings.Builder
	b.WriteString("Here's what our packages look like:\n\n")
	for _, info := range All() {
		fmt.Fprintf(&b, "• **%s** — %s, typically ready in %s\n", info.Name, info.PriceRange, info.Turnaround)
	}
	b.WriteString("\nEvery project starts with a free assessment so you only pay for what actually saves you time.")
	return b.String()
}

// Summary renders the one-line-per-service catalog block embedded in the
// generative system prompt.
func Summary() string {
	var b strings.Builder
	for _, info := range All() {
		fmt.Fprintf(&b, "- %s (%s): %s. Price %s, turnaround %s, typical savings %s.\n",
			info.Name, info.Category, info.Description, info.PriceRange, info.Turnaround, info.TypicalSavings)
	}
	return b.String()
}
