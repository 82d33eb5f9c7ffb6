package parser

import "github.com/MKhiriev/go-silk-reader/models"

// readTools decodes playerData.Tools.savedData, keeping source order and
// dropping every element that does not decode.
func readTools(data map[string]any) []models.ToolEntry {
	saved := ReadArray(ReadObject(data, "Tools"), "savedData")

	tools := make([]models.ToolEntry, 0, len(saved))
	for _, elem := range saved {
		if tool, ok := decodeTool(elem); ok {
			tools = append(tools, tool)
		}
	}
	return tools
}

// decodeTool is strict: all six fields must be present with the right type.
func decodeTool(v any) (models.ToolEntry, bool) {
	obj, ok := AsObject(v)
	if !ok {
		return models.ToolEntry{}, false
	}
	state, ok := AsObject(obj["Data"])
	if !ok {
		return models.ToolEntry{}, false
	}

	var (
		tool models.ToolEntry
		all  = true
	)
	require := func(ok bool) { all = all && ok }

	tool.Name, ok = asString(obj["Name"])
	require(ok)
	tool.State.AmountLeft, ok = asUint32(state["AmountLeft"])
	require(ok)
	tool.State.HasBeenSeen, ok = asBool(state["HasBeenSeen"])
	require(ok)
	tool.State.HasBeenSelected, ok = asBool(state["HasBeenSelected"])
	require(ok)
	tool.State.IsHidden, ok = asBool(state["IsHidden"])
	require(ok)
	tool.State.IsUnlocked, ok = asBool(state["IsUnlocked"])
	require(ok)

	if !all {
		return models.ToolEntry{}, false
	}
	return tool, true
}
