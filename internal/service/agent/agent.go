package agent

import (
	"context"
	"fmt"

	"github.com/anyafi/anya/internal/config"
	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/internal/service/tools"
	"github.com/anyafi/anya/pkg/conv"
	"github.com/anyafi/anya/pkg/log"
)

// Agent runs the observe / reason / act loop for one incoming message.
//
// The loop degrades rather than fails: a dead completion service, a broken
// extraction or a storage error each cost a feature, never the reply.
type Agent struct {
	cfg       *config.AppConfig
	completer core.Completer // nil means rule-based replies only
	tools     *tools.Tools
	sessions  core.SessionStore
}

func New(cfg *config.AppConfig, completer core.Completer, t *tools.Tools, sessions core.SessionStore) *Agent {
	return &Agent{
		cfg:       cfg,
		completer: completer,
		tools:     t,
		sessions:  sessions,
	}
}

type reasoning struct {
	intent Intent
	draft  string
}

// ProcessMessage handles one user message end to end and always returns a
// reply. userID is the transport-scoped identifier, e.g. "telegram-42".
func (a *Agent) ProcessMessage(ctx context.Context, userID, text string) string {
	logger := log.FromCtx(ctx)

	user, err := a.tools.GetOrCreateUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Str("user", userID).Msg("failed to resolve user")
		return "I'm having trouble reaching my memory right now, please try again in a moment."
	}

	obs := a.observe(ctx, user, userID, text)
	r := a.reason(ctx, obs)
	reply := a.act(ctx, user, obs, r)

	a.sessions.AppendHistory(userID, core.RoleUser, text)
	a.sessions.AppendHistory(userID, core.RoleAssistant, reply)

	return reply
}

// observe assembles the context snapshot. Every lookup is best-effort: an
// error is logged and its slot left empty.
func (a *Agent) observe(ctx context.Context, user core.User, userID, text string) core.Context {
	logger := log.FromCtx(ctx)

	obs := core.Context{
		UserMessage:       text,
		History:           a.sessions.History(userID, a.cfg.HistoryLimit),
		ConversationState: a.sessions.GetState(userID),
	}

	goals, err := a.tools.ActiveGoals(ctx, user)
	if err != nil {
		logger.Warn().Err(err).Msg("observe: failed to load goals")
	} else {
		obs.Goals = goals
	}

	verdict, err := a.tools.CheckBudgetStatus(ctx, user)
	if err != nil {
		logger.Warn().Err(err).Msg("observe: failed to compute budget status")
		verdict = core.BudgetVerdict{Verdict: core.VerdictNoGoal, Label: "no active goal set"}
	}
	obs.BudgetStatus = verdict

	return obs
}

// reason produces a draft reply and classifies the intent. Without a
// completer, or when the completion call fails, it falls back to canned
// rule-based replies.
func (a *Agent) reason(ctx context.Context, obs core.Context) reasoning {
	if a.completer == nil {
		return a.fallback(obs)
	}

	messages := make([]core.Message, 0, len(obs.History)+3)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: systemPrompt})
	messages = append(messages, obs.History...)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: "Current context:\n" + formatContext(obs)})
	messages = append(messages, core.Message{Role: core.RoleUser, Content: obs.UserMessage})

	draft, err := a.completer.Complete(ctx, messages)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("completion failed, using rule-based reply")
		return a.fallback(obs)
	}

	return reasoning{intent: Classify(obs.UserMessage, draft), draft: draft}
}

// fallback is the no-LLM reasoning path. It covers the three conversations
// that must keep working offline: goal setup, status checks and everything
// else pointed at the command list.
func (a *Agent) fallback(obs core.Context) reasoning {
	goalish := containsAnyOf(obs.UserMessage, "goal", "save")
	statusish := containsAnyOf(obs.UserMessage, "status", "progress")

	switch {
	case goalish:
		return reasoning{
			intent: IntentSetGoal,
			draft:  "I'd love to help you set a goal! What are you saving for? 🎯",
		}
	case statusish:
		return reasoning{intent: IntentCheckStatus, draft: statusSentence(obs.BudgetStatus)}
	default:
		return reasoning{
			intent: IntentGeneralChat,
			draft:  "I'm here to help you save money and stay on budget! You can set a saving goal, tell me what you spent, or ask how you're doing.",
		}
	}
}

func statusSentence(v core.BudgetVerdict) string {
	if v.Verdict == core.VerdictNoGoal || v.Verdict == "" {
		return "You haven't set a saving goal yet. Tell me what you're saving for and I'll help you track it! 🎯"
	}
	return fmt.Sprintf("You've spent %s out of %s this month. You have %s left! 💰",
		conv.FormatINR(v.TotalSpent), conv.FormatINR(v.Budget), conv.FormatINR(v.Remaining))
}

// act dispatches the classified intent to the tool layer and appends a
// confirmation suffix to the draft when the tool call succeeds. Tool
// failures are logged and the draft goes out unchanged.
func (a *Agent) act(ctx context.Context, user core.User, obs core.Context, r reasoning) string {
	logger := log.FromCtx(ctx)
	reply := r.draft

	switch r.intent {
	case IntentSetGoal:
		p := extractGoalParams(obs.UserMessage)
		if p == nil || p.Title == "" || p.TargetAmount <= 0 {
			break
		}
		goal, err := a.tools.SetSavingGoal(ctx, user, tools.GoalParams{
			Title:         p.Title,
			TargetAmount:  p.TargetAmount,
			DeadlineDays:  p.DeadlineDays,
			MonthlyBudget: p.MonthlyBudget,
		})
		if err != nil {
			logger.Error().Err(err).Msg("act: failed to create goal")
			break
		}
		reply += fmt.Sprintf("\n\n✅ Goal saved! I'll help you track your progress toward %s.", goal.Title)

	case IntentUpdateProgress:
		amount, ok := extractProgressAmount(obs.UserMessage)
		if !ok {
			break
		}
		goal, err := a.tools.UpdateGoalProgress(ctx, user, amount)
		if err != nil {
			logger.Error().Err(err).Msg("act: failed to update progress")
			break
		}
		reply += fmt.Sprintf("\n\n✅ Updated! You now have %s saved (%.0f%% of your goal).",
			conv.FormatINR(goal.CurrentAmount), goal.ProgressPercentage())

	case IntentUpdateBudget:
		amount, ok := extractBudgetAmount(obs.UserMessage)
		if !ok {
			break
		}
		if _, err := a.tools.UpdateBudget(ctx, user, amount); err != nil {
			logger.Error().Err(err).Msg("act: failed to update budget")
			break
		}
		reply += fmt.Sprintf("\n\n✅ Budget updated! Your monthly non-essential budget is now %s.",
			conv.FormatINR(amount))

	case IntentDeleteGoals:
		deleted, err := a.tools.DeleteGoals(ctx, user, 0)
		if err != nil {
			logger.Error().Err(err).Msg("act: failed to delete goals")
			break
		}
		reply += fmt.Sprintf("\n\n✅ Deleted %d goal(s). You can start fresh with new goals!", deleted)

	case IntentAddTransaction:
		p := extractTransaction(obs.UserMessage)
		if p == nil {
			break
		}
		tx, err := a.tools.AddTransaction(ctx, user, p.Amount, p.Merchant, p.Category, false)
		if err != nil {
			logger.Error().Err(err).Msg("act: failed to record transaction")
			break
		}
		reply += fmt.Sprintf("\n\n✅ Recorded! Spent %s at %s.", conv.FormatINR(tx.Amount), tx.Merchant)

	case IntentCheckStatus, IntentAnalyzeSpending, IntentGeneralChat:
		// Read-only intents; the observed context already carries the answer.
	}

	return reply
}

// CheckBudgetStatus exposes the budget verdict to chat commands.
func (a *Agent) CheckBudgetStatus(ctx context.Context, userID string) (core.BudgetVerdict, error) {
	user, err := a.tools.GetOrCreateUser(ctx, userID)
	if err != nil {
		return core.BudgetVerdict{}, err
	}
	return a.tools.CheckBudgetStatus(ctx, user)
}

// ActiveGoals exposes the goal list to chat commands.
func (a *Agent) ActiveGoals(ctx context.Context, userID string) ([]core.GoalView, error) {
	user, err := a.tools.GetOrCreateUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return a.tools.ActiveGoals(ctx, user)
}
