// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PlayerRecord is the typed projection of Document.playerData.
//
// Every scalar field is filled with read-or-default semantics: a missing key
// or a value of the wrong JSON type leaves the zero value in place.
type PlayerRecord struct {
	Version              string  `json:"version" msgpack:"version"`
	PermadeathMode       bool    `json:"permadeath_mode" msgpack:"permadeath_mode"`
	CompletionPercentage float64 `json:"completion_percentage" msgpack:"completion_percentage"`
	PlayTimeSeconds      float64 `json:"play_time_seconds" msgpack:"play_time_seconds"`

	Health      int64 `json:"health" msgpack:"health"`
	MaxHealth   int64 `json:"max_health" msgpack:"max_health"`
	Silk        int64 `json:"silk" msgpack:"silk"`
	MaxSilk     int64 `json:"max_silk" msgpack:"max_silk"`
	SilkHearts  int64 `json:"silk_hearts" msgpack:"silk_hearts"`
	Geo         int64 `json:"geo" msgpack:"geo"`
	ShellShards int64 `json:"shell_shards" msgpack:"shell_shards"`

	CurrentArea string `json:"current_area" msgpack:"current_area"`
	MapZone     int64  `json:"map_zone" msgpack:"map_zone"`
	AtBench     bool   `json:"at_bench" msgpack:"at_bench"`

	CurrentCrestID string `json:"current_crest_id" msgpack:"current_crest_id"`

	RespawnScene      string `json:"respawn_scene" msgpack:"respawn_scene"`
	RespawnType       int64  `json:"respawn_type" msgpack:"respawn_type"`
	RespawnMarkerName string `json:"respawn_marker_name" msgpack:"respawn_marker_name"`

	Tools []ToolEntry `json:"tools" msgpack:"tools"`
}

// ToolEntry is one element of playerData.Tools.savedData.
type ToolEntry struct {
	Name  string    `json:"name" msgpack:"name"`
	State ToolState `json:"state" msgpack:"state"`
}

// ToolState holds the per-tool flags and remaining uses.
type ToolState struct {
	AmountLeft      uint32 `json:"amount_left" msgpack:"amount_left"`
	HasBeenSeen     bool   `json:"has_been_seen" msgpack:"has_been_seen"`
	HasBeenSelected bool   `json:"has_been_selected" msgpack:"has_been_selected"`
	IsHidden        bool   `json:"is_hidden" msgpack:"is_hidden"`
	IsUnlocked      bool   `json:"is_unlocked" msgpack:"is_unlocked"`
}

// ToolStats aggregates the tool collection.
type ToolStats struct {
	Total    int `json:"total"`
	Seen     int `json:"seen"`
	Selected int `json:"selected"`
	Unlocked int `json:"unlocked"`
}

// ToolStats folds the tool collection into counters. It is recomputed on
// every call.
func (p PlayerRecord) ToolStats() ToolStats {
	var stats ToolStats
	for _, tool := range p.Tools {
		stats.Total++
		if tool.State.HasBeenSeen {
			stats.Seen++
		}
		if tool.State.HasBeenSelected {
			stats.Selected++
		}
		if tool.State.IsUnlocked {
			stats.Unlocked++
		}
	}
	return stats
}

// Tool returns the entry with the given internal name.
func (p PlayerRecord) Tool(name string) (ToolEntry, bool) {
	for _, tool := range p.Tools {
		if tool.Name == name {
			return tool, true
		}
	}
	return ToolEntry{}, false
}

// SaveFile is the result of a full decode: the untyped document and its
// typed projection.
type SaveFile struct {
	Document Document
	Player   PlayerRecord
}
