package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	addressStyle       = color.New(color.FgWhite)
	faintStyle         = color.New(color.Faint)
	successStyle       = color.New(color.FgGreen)
	failureStyle       = color.New(color.FgRed)
	pendingStyle       = color.New(color.FgYellow)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	msg := message
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// newTable returns a borderless left-aligned table writer
func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = true
	t.Style().Options.SeparateColumns = false
	t.Style().Box.PaddingRight = "   "
	t.Style().Format.Header = text.FormatUpper

	if header != nil {
		t.AppendHeader(header)
		configs := make([]table.ColumnConfig, len(header))
		for i := range header {
			configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft}
		}
		t.SetColumnConfigs(configs)
	}
	return t
}
