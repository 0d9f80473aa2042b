package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/anyafi/anya/internal/core"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "anya.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewLedger(db)
}

func TestGetOrCreateUser(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)

	u1, err := ledger.GetOrCreateUser(ctx, "telegram-42")
	require.NoError(t, err)
	require.NotZero(t, u1.ID)

	u2, err := ledger.GetOrCreateUser(ctx, "telegram-42")
	require.NoError(t, err)
	require.Equal(t, u1.ID, u2.ID, "same external id must map to the same user")

	u3, err := ledger.GetOrCreateUser(ctx, "cli-local")
	require.NoError(t, err)
	require.NotEqual(t, u1.ID, u3.ID)
}

func TestGoalLifecycle(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	user, err := ledger.GetOrCreateUser(ctx, "u1")
	require.NoError(t, err)

	budget := 15000.0
	deadline := time.Now().UTC().AddDate(0, 0, 90).Truncate(time.Second)
	goal, err := ledger.CreateGoal(ctx, core.Goal{
		UserID:        user.ID,
		Title:         "Laptop",
		TargetAmount:  50000,
		MonthlyBudget: &budget,
		Deadline:      &deadline,
	})
	require.NoError(t, err)
	require.NotZero(t, goal.ID)

	goals, err := ledger.GetActiveGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Equal(t, "Laptop", goals[0].Title)
	require.NotNil(t, goals[0].MonthlyBudget)
	require.Equal(t, 15000.0, *goals[0].MonthlyBudget)
	require.NotNil(t, goals[0].Deadline)
	require.True(t, goals[0].Deadline.Equal(deadline))

	require.NoError(t, ledger.UpdateGoalAmount(ctx, goal.ID, 20000, core.GoalActive))
	require.NoError(t, ledger.UpdateGoalBudget(ctx, goal.ID, 12000))

	goals, err = ledger.GetActiveGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 20000.0, goals[0].CurrentAmount)
	require.Equal(t, 12000.0, *goals[0].MonthlyBudget)

	// Completed goals drop out of the active list.
	require.NoError(t, ledger.UpdateGoalAmount(ctx, goal.ID, 50000, core.GoalCompleted))
	goals, err = ledger.GetActiveGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, goals)
}

func TestGoalsOrderedByID(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	user, err := ledger.GetOrCreateUser(ctx, "u1")
	require.NoError(t, err)

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := ledger.CreateGoal(ctx, core.Goal{UserID: user.ID, Title: title, TargetAmount: 1000})
		require.NoError(t, err)
	}

	goals, err := ledger.GetActiveGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)
	require.Equal(t, "First", goals[0].Title)
	require.Equal(t, "Third", goals[2].Title)
}

func TestDeleteGoals(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	user, err := ledger.GetOrCreateUser(ctx, "u1")
	require.NoError(t, err)
	other, err := ledger.GetOrCreateUser(ctx, "u2")
	require.NoError(t, err)

	g1, err := ledger.CreateGoal(ctx, core.Goal{UserID: user.ID, Title: "Mine", TargetAmount: 1000})
	require.NoError(t, err)
	_, err = ledger.CreateGoal(ctx, core.Goal{UserID: user.ID, Title: "Mine too", TargetAmount: 2000})
	require.NoError(t, err)
	theirs, err := ledger.CreateGoal(ctx, core.Goal{UserID: other.ID, Title: "Theirs", TargetAmount: 3000})
	require.NoError(t, err)

	// Deleting someone else's goal is a no-op.
	n, err := ledger.DeleteGoal(ctx, user.ID, theirs.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = ledger.DeleteGoal(ctx, user.ID, g1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = ledger.DeleteActiveGoals(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	goals, err := ledger.GetActiveGoals(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1, "other user's goals untouched")
}

func TestTransactions(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t)
	user, err := ledger.GetOrCreateUser(ctx, "u1")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	for _, tx := range []core.Transaction{
		{UserID: user.ID, Amount: 500, Merchant: "Starbucks", Category: core.CategoryFood, Timestamp: now.AddDate(0, 0, -1)},
		{UserID: user.ID, Amount: 300, Merchant: "Uber", Category: core.CategoryTransport, Timestamp: now},
		{UserID: user.ID, Amount: 900, Merchant: "Old Shop", Category: core.CategoryShopping, Timestamp: now.AddDate(0, 0, -60)},
	} {
		created, err := ledger.CreateTransaction(ctx, tx)
		require.NoError(t, err)
		require.NotZero(t, created.ID)
	}

	txs, err := ledger.ListTransactions(ctx, user.ID, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	require.Equal(t, "Uber", txs[0].Merchant, "most recent first")
	require.Equal(t, "Starbucks", txs[1].Merchant)
}
