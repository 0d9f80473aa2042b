package core

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryGroceries     Category = "groceries"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

type User struct {
	ID         int64
	ExternalID string
	CreatedAt  time.Time
}

type Goal struct {
	ID            int64
	UserID        int64
	Title         string
	TargetAmount  float64
	CurrentAmount float64
	// Monthly budget for non-essential spending; nil when the user never set one.
	MonthlyBudget *float64
	Deadline      *time.Time
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProgressPercentage is defined as 0 for a zero target so a malformed goal
// never divides by zero.
func (g Goal) ProgressPercentage() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// GoalView is the read projection of a Goal handed to the agent and the
// chat commands.
type GoalView struct {
	ID                 int64
	Title              string
	TargetAmount       float64
	CurrentAmount      float64
	ProgressPercentage float64
	Deadline           *time.Time
	MonthlyBudget      *float64
}

// Transaction is immutable once created; there is no update path.
type Transaction struct {
	ID          int64
	UserID      int64
	Amount      float64
	Merchant    string
	Category    Category
	IsEssential bool
	Timestamp   time.Time
}

type Verdict string

const (
	VerdictNoGoal Verdict = "NO_GOAL"
	VerdictGreen  Verdict = "GREEN"
	VerdictOrange Verdict = "ORANGE"
	VerdictRed    Verdict = "RED"
)

// BudgetVerdict is derived from the active goal and the current month's
// non-essential spend. It is never persisted.
type BudgetVerdict struct {
	Verdict    Verdict
	Label      string
	TotalSpent float64
	Budget     float64
	Remaining  float64
	SavingGoal float64
	GoalTitle  string
}

// SpendingAnalysis summarizes the current calendar month.
type SpendingAnalysis struct {
	TotalNonessential float64
	ByCategory        map[Category]float64
	MonthlyBudget     *float64
	RemainingBudget   *float64
	TransactionCount  int
}
