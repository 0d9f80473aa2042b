package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/anyafi/anya/internal/core"
)

// Tools is the typed operation layer over the Ledger. It owns the business
// rules (goal lifecycle, budget verdict) and knows nothing about language.
type Tools struct {
	ledger    core.Ledger
	threshold float64
}

func New(ledger core.Ledger, comfortZoneThreshold float64) *Tools {
	return &Tools{
		ledger:    ledger,
		threshold: comfortZoneThreshold,
	}
}

// GetOrCreateUser resolves the transport-level identifier to a stored user.
func (t *Tools) GetOrCreateUser(ctx context.Context, externalID string) (core.User, error) {
	return t.ledger.GetOrCreateUser(ctx, externalID)
}

type GoalParams struct {
	Title         string
	TargetAmount  float64
	DeadlineDays  int
	MonthlyBudget *float64
}

func (t *Tools) SetSavingGoal(ctx context.Context, user core.User, p GoalParams) (core.Goal, error) {
	if p.Title == "" {
		return core.Goal{}, fmt.Errorf("goal title is required")
	}
	if p.TargetAmount <= 0 {
		return core.Goal{}, fmt.Errorf("goal target must be positive")
	}

	goal := core.Goal{
		UserID:        user.ID,
		Title:         p.Title,
		TargetAmount:  p.TargetAmount,
		MonthlyBudget: p.MonthlyBudget,
		Status:        core.GoalActive,
	}
	if p.DeadlineDays > 0 {
		deadline := time.Now().UTC().AddDate(0, 0, p.DeadlineDays)
		goal.Deadline = &deadline
	}

	return t.ledger.CreateGoal(ctx, goal)
}

func (t *Tools) ActiveGoals(ctx context.Context, user core.User) ([]core.GoalView, error) {
	goals, err := t.ledger.GetActiveGoals(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	views := make([]core.GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, core.GoalView{
			ID:                 g.ID,
			Title:              g.Title,
			TargetAmount:       g.TargetAmount,
			CurrentAmount:      g.CurrentAmount,
			ProgressPercentage: g.ProgressPercentage(),
			Deadline:           g.Deadline,
			MonthlyBudget:      g.MonthlyBudget,
		})
	}
	return views, nil
}

// UpdateGoalProgress replaces the saved amount on the first active goal and
// marks the goal completed once the target is reached. Completion is never
// reverted automatically.
func (t *Tools) UpdateGoalProgress(ctx context.Context, user core.User, amount float64) (core.Goal, error) {
	goal, err := t.firstActiveGoal(ctx, user)
	if err != nil {
		return core.Goal{}, err
	}

	goal.CurrentAmount = amount
	if goal.CurrentAmount >= goal.TargetAmount {
		goal.Status = core.GoalCompleted
	}

	if err := t.ledger.UpdateGoalAmount(ctx, goal.ID, goal.CurrentAmount, goal.Status); err != nil {
		return core.Goal{}, err
	}
	return goal, nil
}

func (t *Tools) UpdateBudget(ctx context.Context, user core.User, budget float64) (core.Goal, error) {
	goal, err := t.firstActiveGoal(ctx, user)
	if err != nil {
		return core.Goal{}, err
	}

	if err := t.ledger.UpdateGoalBudget(ctx, goal.ID, budget); err != nil {
		return core.Goal{}, err
	}
	goal.MonthlyBudget = &budget
	return goal, nil
}

// DeleteGoals removes one goal by id, or every active goal when goalID is 0.
// It returns the number of deleted goals.
func (t *Tools) DeleteGoals(ctx context.Context, user core.User, goalID int64) (int64, error) {
	if goalID != 0 {
		return t.ledger.DeleteGoal(ctx, user.ID, goalID)
	}
	return t.ledger.DeleteActiveGoals(ctx, user.ID)
}

func (t *Tools) AddTransaction(ctx context.Context, user core.User, amount float64, merchant string, category core.Category, isEssential bool) (core.Transaction, error) {
	if amount <= 0 {
		return core.Transaction{}, fmt.Errorf("transaction amount must be positive")
	}
	return t.ledger.CreateTransaction(ctx, core.Transaction{
		UserID:      user.ID,
		Amount:      amount,
		Merchant:    merchant,
		Category:    category,
		IsEssential: isEssential,
		Timestamp:   time.Now().UTC(),
	})
}

func (t *Tools) RecentTransactions(ctx context.Context, user core.User, days int) ([]core.Transaction, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	return t.ledger.ListTransactions(ctx, user.ID, since)
}

func (t *Tools) firstActiveGoal(ctx context.Context, user core.User) (core.Goal, error) {
	goals, err := t.ledger.GetActiveGoals(ctx, user.ID)
	if err != nil {
		return core.Goal{}, err
	}
	if len(goals) == 0 {
		return core.Goal{}, fmt.Errorf("no active goal")
	}
	return goals[0], nil
}
