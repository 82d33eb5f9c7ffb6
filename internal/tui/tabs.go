package tui

import (
	"github.com/MKhiriev/go-silk-reader/internal/report"
	"github.com/MKhiriev/go-silk-reader/models"
)

// tab is one page of the viewer. body is plain text; it is both shown in the
// viewport and copied to the clipboard.
type tab struct {
	title string
	body  string
}

func buildTabs(r models.Report) []tab {
	return []tab{
		{title: "General", body: report.FieldsText(r.General)},
		{title: "Current", body: report.FieldsText(r.Current)},
		{title: "Tools", body: report.ToolsText(r)},
		{title: "Bosses", body: report.FlagsText(r.Bosses)},
		{title: "Fleas", body: report.FlagsText(r.Fleas)},
		{title: "Maps", body: report.FlagsText(r.Maps)},
		{title: "Skills", body: report.FlagsText(r.Skills)},
		{title: "Misc", body: report.FieldsText(r.Misc)},
	}
}
