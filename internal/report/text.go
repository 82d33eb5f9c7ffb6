package report

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-silk-reader/models"
)

const labelWidth = 18

// FieldsText renders a field section as "Label : value" lines.
func FieldsText(fields []models.Field) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%-*s : %s\n", labelWidth, f.Label, f.Value)
	}
	return b.String()
}

// FlagsText renders a flag category with a progress header and one line per
// flag.
func FlagsText(c models.FlagCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d/%d (%s)\n", c.Name, c.Done, c.Total, FormatPercent(c.Percent()))
	for _, f := range c.Flags {
		fmt.Fprintf(&b, "  [%s] %s\n", mark(f.Done), f.Label)
	}
	return b.String()
}

// ToolsText renders the tool catalogue grouped by category, followed by the
// counters and the equipped tools.
func ToolsText(r models.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tools: %d total, %d seen, %d selected, %d unlocked\n",
		r.ToolStats.Total, r.ToolStats.Seen, r.ToolStats.Selected, r.ToolStats.Unlocked)

	category := ""
	for _, t := range r.Tools {
		if t.Category != category {
			category = t.Category
			fmt.Fprintf(&b, "\n%s\n", category)
		}
		fmt.Fprintf(&b, "  [%s] %s", mark(t.Unlocked), t.Label)
		if t.Unlocked && t.AmountLeft > 0 {
			fmt.Fprintf(&b, " x%d", t.AmountLeft)
		}
		b.WriteByte('\n')
	}

	if len(r.Equipped) > 0 {
		b.WriteString("\nEquipped\n")
		for _, e := range r.Equipped {
			fmt.Fprintf(&b, "  %-*s %s\n", labelWidth, e.Slot, e.Label)
		}
	}
	return b.String()
}

// Summary renders the console overview printed by the decode command.
func Summary(r models.Report) string {
	var b strings.Builder
	section := func(title, body string) {
		fmt.Fprintf(&b, "\n=====\n%s\n=====\n%s", title, body)
	}
	section("General", FieldsText(r.General))
	section("Current", FieldsText(r.Current))
	section("Misc", FieldsText(r.Misc))

	progress := fmt.Sprintf("%-*s : %d/%d\n%-*s : %d/%d\n%-*s : %d/%d\n%-*s : %d/%d\n%-*s : %d/%d\n",
		labelWidth, "Tools unlocked", r.ToolStats.Unlocked, r.ToolStats.Total,
		labelWidth, "Bosses", r.Bosses.Done, r.Bosses.Total,
		labelWidth, "Fleas", r.Fleas.Done, r.Fleas.Total,
		labelWidth, "Maps", r.Maps.Done, r.Maps.Total,
		labelWidth, "Skills", r.Skills.Done, r.Skills.Total,
	)
	section("Progress", progress)
	return b.String()
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return " "
}
