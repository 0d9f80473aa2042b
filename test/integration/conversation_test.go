package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/anyafi/anya/internal/config"
	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/internal/service/agent"
	"github.com/anyafi/anya/internal/service/tools"
	"github.com/anyafi/anya/internal/session"
	"github.com/anyafi/anya/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
)

// cannedCompleter stands in for the LLM so the loop exercises the full
// classify/extract/persist path deterministically.
type cannedCompleter struct{}

func (cannedCompleter) Complete(_ context.Context, _ []core.Message) (string, error) {
	return "Okay!", nil
}

// TestConversationFlow drives a whole budgeting conversation through the
// agent against a real database: goal setup, budget, spending, the verdict
// moving Orange to Red, a progress update and finally goal deletion.
func TestConversationFlow(t *testing.T) {
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, filepath.Join(t.TempDir(), "anya.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.AppConfig{HistoryLimit: 5, SessionTTL: time.Hour, ComfortZoneThreshold: 0.5}
	ag := agent.New(cfg, cannedCompleter{},
		tools.New(sqlite.NewLedger(db), cfg.ComfortZoneThreshold),
		session.NewStore(cfg.SessionTTL))

	const userID = "telegram-42"

	reply := ag.ProcessMessage(ctx, userID, "I want to save ₹25000 for a laptop in 3 months")
	require.Contains(t, reply, "Goal saved")
	require.Contains(t, reply, "Laptop")

	reply = ag.ProcessMessage(ctx, userID, "My monthly budget is 15000")
	require.Contains(t, reply, "₹15,000")

	reply = ag.ProcessMessage(ctx, userID, "I spent 6000 at a restaurant")
	require.Contains(t, reply, "Recorded!")

	verdict, err := ag.CheckBudgetStatus(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, core.VerdictOrange, verdict.Verdict)
	require.Equal(t, 9000.0, verdict.Remaining)

	reply = ag.ProcessMessage(ctx, userID, "I spent 10000 on clothes shopping")
	require.Contains(t, reply, "Recorded!")

	verdict, err = ag.CheckBudgetStatus(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, core.VerdictRed, verdict.Verdict)

	reply = ag.ProcessMessage(ctx, userID, "I have 10000 saved")
	require.Contains(t, reply, "₹10,000")
	require.Contains(t, reply, "40%")

	goals, err := ag.ActiveGoals(ctx, userID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Equal(t, 10000.0, goals[0].CurrentAmount)

	reply = ag.ProcessMessage(ctx, userID, "delete my goal")
	require.Contains(t, reply, "Deleted 1 goal(s)")

	goals, err = ag.ActiveGoals(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, goals)
}
