// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field is one labelled row of a report section.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Flag is one entry of a boolean collection such as defeated bosses.
type Flag struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

// FlagCategory groups flags of one kind together with their counters.
type FlagCategory struct {
	Name  string `json:"name" yaml:"name"`
	Flags []Flag `json:"flags" yaml:"flags"`
	Total int    `json:"total" yaml:"total"`
	Done  int    `json:"done" yaml:"done"`
}

// Percent returns Done as a share of Total in the range [0, 100].
func (c FlagCategory) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Done) * 100 / float64(c.Total)
}

// ToolView is a catalogue tool merged with its saved state.
type ToolView struct {
	Key        string `json:"key" yaml:"key"`
	Label      string `json:"label" yaml:"label"`
	Category   string `json:"category" yaml:"category"`
	AmountLeft uint32 `json:"amount_left" yaml:"amount_left"`
	Seen       bool   `json:"seen" yaml:"seen"`
	Selected   bool   `json:"selected" yaml:"selected"`
	Unlocked   bool   `json:"unlocked" yaml:"unlocked"`
}

// EquippedTool is a tool placed in a crest slot or an extra slot.
type EquippedTool struct {
	Slot  string `json:"slot" yaml:"slot"`
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Report is the display projection of a decoded save.
type Report struct {
	General   []Field        `json:"general" yaml:"general"`
	Current   []Field        `json:"current" yaml:"current"`
	Misc      []Field        `json:"misc" yaml:"misc"`
	Tools     []ToolView     `json:"tools" yaml:"tools"`
	ToolStats ToolStats      `json:"tool_stats" yaml:"tool_stats"`
	Bosses    FlagCategory   `json:"bosses" yaml:"bosses"`
	Fleas     FlagCategory   `json:"fleas" yaml:"fleas"`
	Maps      FlagCategory   `json:"maps" yaml:"maps"`
	Skills    FlagCategory   `json:"skills" yaml:"skills"`
	Equipped  []EquippedTool `json:"equipped" yaml:"equipped"`
}
