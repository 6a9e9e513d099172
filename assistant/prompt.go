package assistant

import (
	"fmt"
	"strings"

	"flowmate/catalog"
	"flowmate/models"
)

const systemInstruction = `
You are the sales assistant on the FlowMate website. FlowMate builds small,
fixed-price automations for business owners: scripts, email and file hygiene,
recurring reports, simple websites, PC setup helpers, and templates.

Services you can talk about (name, price range, turnaround, typical savings):
%s
Behavior rules:
- Be consultative and concrete, never pushy. Two to four sentences per reply.
- Always end with a clear next step (free assessment, savings calculator, or
  the contact form).
- If the visitor asks for a human, an agent, or a representative, reply ONLY
  with: "Of course — I'll connect you with a real person. You can book a free
  assessment call or leave your details through the contact form." Do not pitch
  services in that reply.
- Quote prices and turnarounds only from the list above; never invent numbers.
- Plain text with light markdown emphasis only. No code blocks, no links you
  were not given.
`

// buildSystemPrompt embeds the catalog summary and whatever user context has
// been collected so far.
func buildSystemPrompt(uc models.UserContext) string {
	prompt := fmt.Sprintf(systemInstruction, catalog.Summary())

	ctxBlock := contextBlock(uc)
	if ctxBlock != "" {
		prompt += "\nWhat we know about this visitor so far:\n" + ctxBlock
	}
	return prompt
}

func contextBlock(uc models.UserContext) string {
	var lines []string
	if uc.BusinessType != "" {
		lines = append(lines, "- business type: "+uc.BusinessType)
	}
	if len(uc.CurrentPainPoints) > 0 {
		lines = append(lines, "- pain points mentioned: "+strings.Join(uc.CurrentPainPoints, "; "))
	}
	if len(uc.InterestedServices) > 0 {
		parts := make([]string, 0, len(uc.InterestedServices))
		for _, cat := range uc.InterestedServices {
			parts = append(parts, string(cat))
		}
		lines = append(lines, "- interested services: "+strings.Join(parts, ", "))
	}
	if uc.EstimatedTasksPerWeek > 0 {
		lines = append(lines, fmt.Sprintf("- estimated repetitive tasks per week: %d", uc.EstimatedTasksPerWeek))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
