package core

import (
	"context"
	"time"
)

// Ledger is the durable store for users, goals and transactions, keyed by
// the opaque external user identifier supplied by the transport.
type Ledger interface {
	GetOrCreateUser(ctx context.Context, externalID string) (User, error)

	CreateGoal(ctx context.Context, goal Goal) (Goal, error)
	GetActiveGoals(ctx context.Context, userID int64) ([]Goal, error)
	UpdateGoalAmount(ctx context.Context, goalID int64, amount float64, status GoalStatus) error
	UpdateGoalBudget(ctx context.Context, goalID int64, budget float64) error
	DeleteGoal(ctx context.Context, userID, goalID int64) (int64, error)
	DeleteActiveGoals(ctx context.Context, userID int64) (int64, error)

	CreateTransaction(ctx context.Context, tx Transaction) (Transaction, error)
	ListTransactions(ctx context.Context, userID int64, since time.Time) ([]Transaction, error)
}

// Session holds the short-lived conversational context for one user.
type Session struct {
	History      []Message
	State        string
	LastActivity time.Time
}

// SessionStore keeps per-user sessions with a TTL. An expired session is
// reported as absent, not as an error.
type SessionStore interface {
	Get(userID string) (Session, bool)
	Put(userID string, s Session)
	AppendHistory(userID, role, content string)
	History(userID string, limit int) []Message
	GetState(userID string) string
	SetState(userID, state string)
}
