// Package voice implements the turn engine: prompt composition, reply
// parsing, and the webhook handler that drives one conversation turn.
package voice

import (
	"fmt"
	"strings"

	"github.com/romanlp3005/agent-ia/internal/tenant"
)

// SentinelToken delimits the spoken reply from the structured booking
// detail in completion output. The completion service is instructed, not
// guaranteed, to honor it, which is why extraction stays forgiving.
const SentinelToken = "CONFIRMATION"

// ComposePrompt merges a tenant profile into the system instruction for one
// turn. It is pure and deterministic: identical profiles produce identical
// prompts, and every empty field falls back to a placeholder so a sparse
// profile never fails a turn.
func ComposePrompt(p tenant.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the phone receptionist for %s, a %s business.\n",
		p.DisplayName(), p.PromptIndustry())
	fmt.Fprintf(&b, "Address: %s.\n", p.PromptAddress())
	fmt.Fprintf(&b, "Opening hours: %s.\n", p.PromptHours())
	fmt.Fprintf(&b, "Services and prices: %s.\n", p.PromptPriceCatalog())
	fmt.Fprintf(&b, "Typical appointment length: %s.\n", p.PromptServiceDuration())
	fmt.Fprintf(&b, "Instructions: %s\n", p.PromptPersona())
	fmt.Fprintf(&b, "Tone: %s.\n", p.PromptTone())
	b.WriteString("You are speaking to a live caller. Keep replies to one or two short sentences of spoken language, with no formatting, lists, or URLs.\n")
	fmt.Fprintf(&b, "If the caller agrees to book an appointment, your reply must include %s: followed by the service, day, and time, before any other trailing content.\n",
		SentinelToken)

	return b.String()
}
