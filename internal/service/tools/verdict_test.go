package tools

import (
	"context"
	"testing"
	"time"

	"github.com/anyafi/anya/internal/core"
	"github.com/stretchr/testify/require"
)

func seedUserWithGoal(t *testing.T, ledger *fakeLedger, budget float64) core.User {
	t.Helper()
	ctx := context.Background()
	user, err := ledger.GetOrCreateUser(ctx, "u1")
	require.NoError(t, err)

	_, err = ledger.CreateGoal(ctx, core.Goal{
		UserID:        user.ID,
		Title:         "Laptop",
		TargetAmount:  25000,
		MonthlyBudget: &budget,
		Status:        core.GoalActive,
	})
	require.NoError(t, err)
	return user
}

func spend(t *testing.T, ledger *fakeLedger, user core.User, amount float64, essential bool) {
	t.Helper()
	_, err := ledger.CreateTransaction(context.Background(), core.Transaction{
		UserID:      user.ID,
		Amount:      amount,
		Merchant:    "Somewhere",
		Category:    core.CategoryOther,
		IsEssential: essential,
		Timestamp:   time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestCheckBudgetStatus_NoGoal(t *testing.T) {
	ledger := newFakeLedger()
	tl := New(ledger, 0.5)
	user, _ := ledger.GetOrCreateUser(context.Background(), "u1")

	verdict, err := tl.CheckBudgetStatus(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, core.VerdictNoGoal, verdict.Verdict)
}

func TestCheckBudgetStatus_Verdicts(t *testing.T) {
	// Goal target is 25000 and the threshold 0.5, so GREEN needs at least
	// 12500 of the budget left.
	tests := []struct {
		name    string
		budget  float64
		spent   float64
		verdict core.Verdict
		label   string
	}{
		{"green with budget to spare", 20000, 2000, core.VerdictGreen, "on track"},
		{"orange when comfort zone is gone", 15000, 6000, core.VerdictOrange, "borderline"},
		{"red when budget is blown", 15000, 20000, core.VerdictRed, "over budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newFakeLedger()
			tl := New(ledger, 0.5)
			user := seedUserWithGoal(t, ledger, tt.budget)
			spend(t, ledger, user, tt.spent, false)

			verdict, err := tl.CheckBudgetStatus(context.Background(), user)
			require.NoError(t, err)
			require.Equal(t, tt.verdict, verdict.Verdict)
			require.Equal(t, tt.label, verdict.Label)
			require.Equal(t, tt.spent, verdict.TotalSpent)
			require.Equal(t, tt.budget-tt.spent, verdict.Remaining)
			require.Equal(t, "Laptop", verdict.GoalTitle)
		})
	}
}

func TestCheckBudgetStatus_EssentialSpendIgnored(t *testing.T) {
	ledger := newFakeLedger()
	tl := New(ledger, 0.5)
	user := seedUserWithGoal(t, ledger, 20000)

	spend(t, ledger, user, 50000, true) // rent, does not count
	spend(t, ledger, user, 1000, false)

	verdict, err := tl.CheckBudgetStatus(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, core.VerdictGreen, verdict.Verdict)
	require.Equal(t, 1000.0, verdict.TotalSpent)
}

// The verdict is a pure read: repeating it changes nothing, and additional
// spending can only hold or worsen it.
func TestCheckBudgetStatus_IdempotentAndMonotonic(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	tl := New(ledger, 0.5)
	user := seedUserWithGoal(t, ledger, 15000)

	first, err := tl.CheckBudgetStatus(ctx, user)
	require.NoError(t, err)
	second, err := tl.CheckBudgetStatus(ctx, user)
	require.NoError(t, err)
	require.Equal(t, first, second)

	rank := map[core.Verdict]int{core.VerdictGreen: 0, core.VerdictOrange: 1, core.VerdictRed: 2}
	prev := first.Verdict
	for i := 0; i < 10; i++ {
		spend(t, ledger, user, 2000, false)
		verdict, err := tl.CheckBudgetStatus(ctx, user)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rank[verdict.Verdict], rank[prev])
		prev = verdict.Verdict
	}
	require.Equal(t, core.VerdictRed, prev)
}

func TestAnalyzeSpending(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger()
	tl := New(ledger, 0.5)
	user := seedUserWithGoal(t, ledger, 15000)

	now := time.Now().UTC()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Add(-time.Hour)
	for _, tx := range []core.Transaction{
		{UserID: user.ID, Amount: 500, Category: core.CategoryFood, Timestamp: now},
		{UserID: user.ID, Amount: 300, Category: core.CategoryFood, Timestamp: now},
		{UserID: user.ID, Amount: 1200, Category: core.CategoryTransport, Timestamp: now},
		// Last month, must not count.
		{UserID: user.ID, Amount: 9000, Category: core.CategoryShopping, Timestamp: lastMonth},
	} {
		_, err := ledger.CreateTransaction(ctx, tx)
		require.NoError(t, err)
	}

	analysis, err := tl.AnalyzeSpending(ctx, user)
	require.NoError(t, err)
	require.Equal(t, 3, analysis.TransactionCount)
	require.Equal(t, 800.0, analysis.ByCategory[core.CategoryFood])
	require.Equal(t, 1200.0, analysis.ByCategory[core.CategoryTransport])
	require.Equal(t, 2000.0, analysis.TotalNonessential)
	require.NotNil(t, analysis.RemainingBudget)
	require.Equal(t, 13000.0, *analysis.RemainingBudget)
}
