package agent

import (
	"fmt"
	"strings"

	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/pkg/conv"
)

const systemPrompt = `You are Anya, a warm and practical personal finance assistant.

You help people set saving goals, track their progress, record everyday
spending and stay inside their monthly budget. Amounts are in Indian
rupees (₹).

Guidelines:
- Be encouraging but honest. Celebrate progress, flag overspending plainly.
- Keep replies short, two or three sentences, conversational tone.
- When the user states a goal, a saved amount, a budget or a purchase,
  acknowledge it naturally. The system records it separately, so never
  claim you cannot save data.
- Use the provided context (goals, budget status, recent history) to stay
  consistent. Do not invent numbers that are not in the context.
- A light emoji here and there is fine, do not overdo it.`

// formatContext flattens the observed snapshot into a plain-text block for
// the completion request.
func formatContext(obs core.Context) string {
	var b strings.Builder

	if len(obs.Goals) == 0 {
		b.WriteString("No active saving goals.\n")
	} else {
		b.WriteString("Active goals:\n")
		for _, g := range obs.Goals {
			fmt.Fprintf(&b, "- %s: %s of %s (%.0f%%)",
				g.Title,
				conv.FormatINR(g.CurrentAmount),
				conv.FormatINR(g.TargetAmount),
				g.ProgressPercentage)
			if g.MonthlyBudget != nil {
				fmt.Fprintf(&b, ", monthly budget %s", conv.FormatINR(*g.MonthlyBudget))
			}
			if g.Deadline != nil {
				fmt.Fprintf(&b, ", deadline %s", g.Deadline.Format("2006-01-02"))
			}
			b.WriteByte('\n')
		}
	}

	v := obs.BudgetStatus
	switch v.Verdict {
	case core.VerdictNoGoal, "":
		b.WriteString("Budget status: no active goal.\n")
	default:
		fmt.Fprintf(&b, "Budget status: %s (%s). Spent %s of %s this month, %s remaining.\n",
			v.Verdict, v.Label,
			conv.FormatINR(v.TotalSpent),
			conv.FormatINR(v.Budget),
			conv.FormatINR(v.Remaining))
	}

	if obs.ConversationState != "" {
		fmt.Fprintf(&b, "Conversation state: %s\n", obs.ConversationState)
	}

	return b.String()
}
