package command

import (
	"fmt"
	"strings"

	"github.com/anyafi/anya/internal/core"
	"github.com/anyafi/anya/pkg/conv"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("⚙️️ **%s**\n\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ **%s**\n", message)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return fmt.Sprintf("**Tip**: %s\n", text)
}

func (f *ResponseFormatter) Section(emoji, title, content string) string {
	return fmt.Sprintf("%s **%s**\n%s\n", emoji, title, content)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

// VerdictEmoji maps a budget verdict to its traffic-light emoji.
func (f *ResponseFormatter) VerdictEmoji(v core.Verdict) string {
	switch v {
	case core.VerdictGreen:
		return "🟢"
	case core.VerdictOrange:
		return "🟠"
	case core.VerdictRed:
		return "🔴"
	default:
		return "⚪"
	}
}

// ProgressBar renders a ten-slot bar, e.g. "███░░░░░░░ 32%".
func (f *ResponseFormatter) ProgressBar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 10)
	return fmt.Sprintf("%s%s %.0f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", 10-filled),
		percent)
}

// GoalLine is the one-line goal summary shared by /goals and /mystats.
func (f *ResponseFormatter) GoalLine(g core.GoalView) string {
	line := fmt.Sprintf("**%s** — %s of %s\n%s",
		g.Title,
		conv.FormatINR(g.CurrentAmount),
		conv.FormatINR(g.TargetAmount),
		f.ProgressBar(g.ProgressPercentage))
	if g.Deadline != nil {
		line += fmt.Sprintf("\nDeadline: %s", g.Deadline.Format("02 Jan 2006"))
	}
	return line
}
