package command

import (
	"context"
	"fmt"

	"github.com/anyafi/anya/internal/service/tools"
)

type GoalsCommand struct {
	tools     *tools.Tools
	formatter *ResponseFormatter
}

func NewGoalsCommand(t *tools.Tools) *GoalsCommand {
	return &GoalsCommand{
		tools:     t,
		formatter: NewResponseFormatter(),
	}
}

func (c *GoalsCommand) Name() string {
	return "goals"
}

func (c *GoalsCommand) Description() string {
	return "List active saving goals"
}

func (c *GoalsCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	user, err := c.tools.GetOrCreateUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	goals, err := c.tools.ActiveGoals(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to load goals: %w", err)
	}

	if len(goals) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Goals"),
			"No active goals. Try: _I want to save ₹50000 for a laptop in 3 months_",
		), nil
	}

	sections := []string{c.formatter.Info("Goals")}
	for _, g := range goals {
		sections = append(sections, c.formatter.GoalLine(g))
	}
	return c.formatter.Combine(sections...), nil
}
