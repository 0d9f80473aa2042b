package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/internal/service/tools"
	"github.com/anyafi/anya/pkg/conv"
)

type StatsCommand struct {
	tools     *tools.Tools
	formatter *ResponseFormatter
}

func NewStatsCommand(t *tools.Tools) *StatsCommand {
	return &StatsCommand{
		tools:     t,
		formatter: NewResponseFormatter(),
	}
}

func (c *StatsCommand) Name() string {
	return "mystats"
}

func (c *StatsCommand) Description() string {
	return "This month's spending and budget verdict"
}

func (c *StatsCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	user, err := c.tools.GetOrCreateUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	verdict, err := c.tools.CheckBudgetStatus(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to compute budget status: %w", err)
	}

	analysis, err := c.tools.AnalyzeSpending(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to analyze spending: %w", err)
	}

	sections := []string{c.formatter.Info("This Month")}

	if verdict.Verdict == core.VerdictNoGoal {
		sections = append(sections,
			"No active saving goal yet. Tell me what you're saving for and I'll start tracking.")
	} else {
		sections = append(sections, c.formatter.Section(
			c.formatter.VerdictEmoji(verdict.Verdict),
			fmt.Sprintf("Budget: %s", verdict.Label),
			fmt.Sprintf("Spent %s of %s, %s remaining.",
				conv.FormatINR(verdict.TotalSpent),
				conv.FormatINR(verdict.Budget),
				conv.FormatINR(verdict.Remaining)),
		))
	}

	if analysis.TransactionCount > 0 {
		sections = append(sections, c.formatter.Section("🧾", "By category", categoryBreakdown(analysis)))
	} else {
		sections = append(sections, "No transactions recorded this month.")
	}

	recent, err := c.tools.RecentTransactions(ctx, user, 7)
	if err != nil {
		return "", fmt.Errorf("failed to load recent transactions: %w", err)
	}
	if len(recent) > 0 {
		sections = append(sections, c.formatter.Section("🕐", "Last 7 days", recentLines(recent)))
	}

	return c.formatter.Combine(sections...), nil
}

// recentLines renders the newest transactions, at most five.
func recentLines(txs []core.Transaction) string {
	if len(txs) > 5 {
		txs = txs[:5]
	}
	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf("%s — %s (%s)", tx.Merchant, conv.FormatINR(tx.Amount), tx.Category))
	}
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "› %s\n", l)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func categoryBreakdown(a core.SpendingAnalysis) string {
	type row struct {
		category core.Category
		amount   float64
	}
	rows := make([]row, 0, len(a.ByCategory))
	for cat, amount := range a.ByCategory {
		rows = append(rows, row{cat, amount})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].amount > rows[j].amount })

	var sb strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&sb, "› %s: %s\n", r.category, conv.FormatINR(r.amount))
	}
	fmt.Fprintf(&sb, "Non-essential total: %s", conv.FormatINR(a.TotalNonessential))
	return sb.String()
}
