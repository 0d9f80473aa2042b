package command

import (
	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/internal/service/tools"
)

func NewCommands(t *tools.Tools) []core.Command {
	cmds := []core.Command{
		NewStartCommand(),
		NewStatsCommand(t),
		NewGoalsCommand(t),
	}
	return append(cmds, NewHelpCommand(cmds))
}
