package core

import "time"

const (
	AnyaName      = "Anya"
	AnyaUserAgent = "Anya-Agent/0.2"
	AnyaVersion   = "0.2.0"

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversational turn, both on the wire to the completion
// service and inside session history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Context is the snapshot assembled by the Observe stage. It is built once
// per incoming message and read-only afterwards.
type Context struct {
	UserMessage       string
	History           []Message
	Goals             []GoalView
	BudgetStatus      BudgetVerdict
	ConversationState string
}
