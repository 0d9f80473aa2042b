package command

import (
	"context"

	"github.com/anyafi/anya/internal/core"
)

type StartCommand struct {
	formatter *ResponseFormatter
}

func NewStartCommand() *StartCommand {
	return &StartCommand{formatter: NewResponseFormatter()}
}

func (c *StartCommand) Name() string {
	return "start"
}

func (c *StartCommand) Description() string {
	return "Introduction and quick start"
}

func (c *StartCommand) Execute(ctx context.Context, userID string, args []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Section("👋", "Hi, I'm "+core.AnyaName+"!",
			"I help you save money: set a goal, record what you spend, and I'll tell you whether your budget is on track."),
		c.formatter.List([]string{
			"_I want to save ₹50000 for a laptop in 3 months_",
			"_My monthly budget is 15000_",
			"_I spent 500 at Starbucks_",
			"_How am I doing?_",
		}),
		c.formatter.Tip("Type /help for the command list."),
	), nil
}
