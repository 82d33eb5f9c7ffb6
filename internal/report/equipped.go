package report

import (
	"fmt"

	"github.com/MKhiriev/go-silk-reader/internal/names"
	"github.com/MKhiriev/go-silk-reader/internal/parser"
	"github.com/MKhiriev/go-silk-reader/models"
)

// equipped collects the tools in the slots of the active crest followed by
// the extra slots. Empty slots are skipped.
//
//	ToolEquips.savedData[Name == crest].Data.Slots[].EquippedTool
//	ExtraToolEquips.savedData[].{Name, Data.EquippedTool}
func equipped(data map[string]any, crest string) []models.EquippedTool {
	var out []models.EquippedTool

	if crest != "" {
		for _, elem := range parser.ReadArray(parser.ReadObject(data, "ToolEquips"), "savedData") {
			entry, ok := parser.AsObject(elem)
			if !ok || parser.ReadString(entry, "Name") != crest {
				continue
			}
			slots := parser.ReadArray(parser.ReadObject(entry, "Data"), "Slots")
			for i, s := range slots {
				slot, ok := parser.AsObject(s)
				if !ok {
					continue
				}
				if tool := parser.ReadString(slot, "EquippedTool"); tool != "" {
					out = append(out, equippedTool(fmt.Sprintf("%s %d", crest, i+1), tool))
				}
			}
			break
		}
	}

	for _, elem := range parser.ReadArray(parser.ReadObject(data, "ExtraToolEquips"), "savedData") {
		entry, ok := parser.AsObject(elem)
		if !ok {
			continue
		}
		tool := parser.ReadString(parser.ReadObject(entry, "Data"), "EquippedTool")
		if tool != "" {
			out = append(out, equippedTool(parser.ReadString(entry, "Name"), tool))
		}
	}
	return out
}

func equippedTool(slot, tool string) models.EquippedTool {
	label := tool
	switch {
	case names.Tools.Contains(tool):
		label = names.Tools.Label(tool)
	case names.EquipSkills.Contains(tool):
		label = names.EquipSkills.Label(tool)
	}
	return models.EquippedTool{Slot: slot, Key: tool, Label: label}
}
