package tools

import (
	"context"
	"time"

	"github.com/anyafi/anya/internal/core"
)

// AnalyzeSpending sums the current calendar month's transactions per
// category and the non-essential total.
func (t *Tools) AnalyzeSpending(ctx context.Context, user core.User) (core.SpendingAnalysis, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	txs, err := t.ledger.ListTransactions(ctx, user.ID, monthStart)
	if err != nil {
		return core.SpendingAnalysis{}, err
	}

	analysis := core.SpendingAnalysis{
		ByCategory:       make(map[core.Category]float64),
		TransactionCount: len(txs),
	}
	for _, tx := range txs {
		analysis.ByCategory[tx.Category] += tx.Amount
		if !tx.IsEssential {
			analysis.TotalNonessential += tx.Amount
		}
	}

	goals, err := t.ledger.GetActiveGoals(ctx, user.ID)
	if err != nil {
		return core.SpendingAnalysis{}, err
	}
	if len(goals) > 0 && goals[0].MonthlyBudget != nil {
		budget := *goals[0].MonthlyBudget
		remaining := budget - analysis.TotalNonessential
		analysis.MonthlyBudget = &budget
		analysis.RemainingBudget = &remaining
	}

	return analysis, nil
}

// CheckBudgetStatus is the budget verdict policy: a pure read judging this
// month's non-essential spend against the active goal's budget.
//
// GREEN when at least comfortZoneThreshold of the saving goal is still
// covered by the remaining budget, ORANGE while the budget is non-negative,
// RED once it is blown.
func (t *Tools) CheckBudgetStatus(ctx context.Context, user core.User) (core.BudgetVerdict, error) {
	analysis, err := t.AnalyzeSpending(ctx, user)
	if err != nil {
		return core.BudgetVerdict{}, err
	}

	goals, err := t.ledger.GetActiveGoals(ctx, user.ID)
	if err != nil {
		return core.BudgetVerdict{}, err
	}
	if len(goals) == 0 {
		return core.BudgetVerdict{Verdict: core.VerdictNoGoal, Label: "no active goal set"}, nil
	}

	goal := goals[0]
	totalSpent := analysis.TotalNonessential
	budget := 0.0
	if goal.MonthlyBudget != nil {
		budget = *goal.MonthlyBudget
	}
	remaining := budget - totalSpent

	verdict := core.BudgetVerdict{
		TotalSpent: totalSpent,
		Budget:     budget,
		Remaining:  remaining,
		SavingGoal: goal.TargetAmount,
		GoalTitle:  goal.Title,
	}

	switch {
	case remaining >= goal.TargetAmount*t.threshold:
		verdict.Verdict = core.VerdictGreen
		verdict.Label = "on track"
	case remaining >= 0:
		verdict.Verdict = core.VerdictOrange
		verdict.Label = "borderline"
	default:
		verdict.Verdict = core.VerdictRed
		verdict.Label = "over budget"
	}
	return verdict, nil
}
