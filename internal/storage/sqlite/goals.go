package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anyafi/anya/internal/core"
)

func (l *Ledger) CreateGoal(ctx context.Context, goal core.Goal) (core.Goal, error) {
	if goal.Status == "" {
		goal.Status = core.GoalActive
	}

	var budget sql.NullFloat64
	if goal.MonthlyBudget != nil {
		budget = sql.NullFloat64{Float64: *goal.MonthlyBudget, Valid: true}
	}
	var deadline sql.NullTime
	if goal.Deadline != nil {
		deadline = sql.NullTime{Time: *goal.Deadline, Valid: true}
	}

	query := `INSERT INTO goals (user_id, title, target_amount, current_amount, monthly_budget, deadline, status)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := l.db.ExecContext(ctx, query,
		goal.UserID, goal.Title, goal.TargetAmount, goal.CurrentAmount, budget, deadline, goal.Status)
	if err != nil {
		return core.Goal{}, fmt.Errorf("failed to insert goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Goal{}, err
	}
	goal.ID = id
	return goal, nil
}

func (l *Ledger) GetActiveGoals(ctx context.Context, userID int64) ([]core.Goal, error) {
	query := `SELECT id, user_id, title, target_amount, current_amount, monthly_budget, deadline, status
	          FROM goals WHERE user_id = ? AND status = ? ORDER BY id`

	rows, err := l.db.QueryContext(ctx, query, userID, core.GoalActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []core.Goal
	for rows.Next() {
		var g core.Goal
		var budget sql.NullFloat64
		var deadline sql.NullTime

		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount,
			&budget, &deadline, &g.Status); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		if budget.Valid {
			b := budget.Float64
			g.MonthlyBudget = &b
		}
		if deadline.Valid {
			d := deadline.Time
			g.Deadline = &d
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (l *Ledger) UpdateGoalAmount(ctx context.Context, goalID int64, amount float64, status core.GoalStatus) error {
	query := `UPDATE goals SET current_amount = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := l.db.ExecContext(ctx, query, amount, status, goalID); err != nil {
		return fmt.Errorf("failed to update goal amount: %w", err)
	}
	return nil
}

func (l *Ledger) UpdateGoalBudget(ctx context.Context, goalID int64, budget float64) error {
	query := `UPDATE goals SET monthly_budget = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := l.db.ExecContext(ctx, query, budget, goalID); err != nil {
		return fmt.Errorf("failed to update goal budget: %w", err)
	}
	return nil
}

func (l *Ledger) DeleteGoal(ctx context.Context, userID, goalID int64) (int64, error) {
	res, err := l.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND user_id = ?`, goalID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete goal: %w", err)
	}
	return res.RowsAffected()
}

func (l *Ledger) DeleteActiveGoals(ctx context.Context, userID int64) (int64, error) {
	res, err := l.db.ExecContext(ctx,
		`DELETE FROM goals WHERE user_id = ? AND status = ?`, userID, core.GoalActive)
	if err != nil {
		return 0, fmt.Errorf("failed to delete goals: %w", err)
	}
	return res.RowsAffected()
}
