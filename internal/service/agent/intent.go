package agent

import "strings"

// Intent is the closed set of actions a message can request.
type Intent string

const (
	IntentSetGoal         Intent = "set_goal"
	IntentUpdateProgress  Intent = "update_progress"
	IntentUpdateBudget    Intent = "update_budget"
	IntentDeleteGoals     Intent = "delete_goals"
	IntentAddTransaction  Intent = "add_transaction"
	IntentCheckStatus     Intent = "check_status"
	IntentAnalyzeSpending Intent = "analyze_spending"
	IntentGeneralChat     Intent = "general_chat"
)

// intentRules are evaluated in order and the first match wins. The order is
// part of the contract: destructive and specific intents (delete, budget,
// transaction) are tested before the broad goal catch-all, so "I spent 500
// on food" never lands in goal-setting just because "save" matches later.
var intentRules = []struct {
	keywords []string
	intent   Intent
}{
	{[]string{"delete goal", "remove goal", "delete my goal", "clear goal"}, IntentDeleteGoals},
	{[]string{"budget is", "monthly budget", "set budget", "month budget", "my budget", "budget of"}, IntentUpdateBudget},
	{[]string{"i spent", "spent", "paid", "bought", "purchase", "cost"}, IntentAddTransaction},
	{[]string{"i saved", "i have", "already have", "update my goal", "update goal", "update progress"}, IntentUpdateProgress},
	{[]string{"goal", "save", "want to buy", "planning"}, IntentSetGoal},
	{[]string{"status", "how am i", "progress", "doing"}, IntentCheckStatus},
	{[]string{"spent", "spending", "transactions"}, IntentAnalyzeSpending},
}

// Classify maps a raw user message to an intent. The assistant draft is part
// of the contract for future heuristics but classification keys off the user
// message alone.
func Classify(message, draft string) Intent {
	lower := strings.ToLower(message)

	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			return rule.intent
		}
	}
	return IntentGeneralChat
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func containsAnyOf(s string, words ...string) bool {
	return containsAny(strings.ToLower(s), words)
}
