// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report builds the display projection of a decoded save: labelled
// field sections, the tool catalogue, collection progress and equipped tools.
package report

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-silk-reader/internal/names"
	"github.com/MKhiriev/go-silk-reader/internal/parser"
	"github.com/MKhiriev/go-silk-reader/models"
)

// Game mode labels.
const (
	ModeSteelSoul = "Steel Soul"
	ModeClassic   = "Classic"
)

type fieldDef struct {
	key   string
	label string
	value func(p models.PlayerRecord) string
}

var generalFields = []fieldDef{
	{"version", "Game Version", func(p models.PlayerRecord) string { return p.Version }},
	{"permadeathMode", "Game Mode", func(p models.PlayerRecord) string { return gameMode(p.PermadeathMode) }},
	{"completionPercentage", "Completion", func(p models.PlayerRecord) string { return FormatPercent(p.CompletionPercentage) }},
	{"playTime", "Play Time", func(p models.PlayerRecord) string { return parser.FormatPlayTime(p.PlayTimeSeconds) }},
	{"maxHealth", "Max Health", func(p models.PlayerRecord) string { return itoa(p.MaxHealth) }},
	{"silkMax", "Max Silk", func(p models.PlayerRecord) string { return itoa(p.MaxSilk) }},
	{"silkRegenMax", "Max Silk Hearts", func(p models.PlayerRecord) string { return itoa(p.SilkHearts) }},
}

var currentFields = []fieldDef{
	{"health", "Current Health", func(p models.PlayerRecord) string { return itoa(p.Health) }},
	{"maxHealth", "Max Health", func(p models.PlayerRecord) string { return itoa(p.MaxHealth) }},
	{"silk", "Current Silk", func(p models.PlayerRecord) string { return itoa(p.Silk) }},
	{"silkMax", "Max Silk", func(p models.PlayerRecord) string { return itoa(p.MaxSilk) }},
	{"geo", "Rosaries", func(p models.PlayerRecord) string { return itoa(p.Geo) }},
	{"ShellShards", "Shell Shards", func(p models.PlayerRecord) string { return itoa(p.ShellShards) }},
	{"CurrentCrestID", "Equipped Crest", func(p models.PlayerRecord) string { return p.CurrentCrestID }},
	{"currentArea", "Current Area", func(p models.PlayerRecord) string { return p.CurrentArea }},
	{"mapZone", "Map Zone", func(p models.PlayerRecord) string { return itoa(p.MapZone) }},
	{"atBench", "At Bench", func(p models.PlayerRecord) string { return yesNo(p.AtBench) }},
}

var miscFields = []fieldDef{
	{"respawnScene", "Respawn Area", func(p models.PlayerRecord) string { return p.RespawnScene }},
	{"respawnMarkerName", "Respawn Marker", func(p models.PlayerRecord) string { return p.RespawnMarkerName }},
	{"respawnType", "Respawn Type", func(p models.PlayerRecord) string { return itoa(p.RespawnType) }},
}

// Build projects save into a [models.Report]. It never fails: flags missing
// from the document count as not done.
func Build(save models.SaveFile) models.Report {
	data := save.Document.PlayerData()

	return models.Report{
		General:   fields(generalFields, save.Player),
		Current:   fields(currentFields, save.Player),
		Misc:      fields(miscFields, save.Player),
		Tools:     tools(save.Player),
		ToolStats: save.Player.ToolStats(),
		Bosses:    flags(names.Bosses, data),
		Fleas:     flags(names.Fleas, data),
		Maps:      flags(names.Maps, data),
		Skills:    flags(names.Skills, data),
		Equipped:  equipped(data, save.Player.CurrentCrestID),
	}
}

// FormatPercent renders a completion value with one decimal, e.g. "42.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func fields(defs []fieldDef, p models.PlayerRecord) []models.Field {
	out := make([]models.Field, len(defs))
	for i, d := range defs {
		out[i] = models.Field{Key: d.key, Label: d.label, Value: d.value(p)}
	}
	return out
}

func flags(dict names.Dictionary, data map[string]any) models.FlagCategory {
	cat := models.FlagCategory{
		Name:  dict.Name(),
		Flags: make([]models.Flag, 0, dict.Len()),
	}
	for _, key := range dict.Keys() {
		done := parser.ReadBool(data, key)
		cat.Flags = append(cat.Flags, models.Flag{Key: key, Label: dict.Label(key), Done: done})
		cat.Total++
		if done {
			cat.Done++
		}
	}
	return cat
}

// tools lists the whole catalogue; tools never seen in the save stay zeroed.
func tools(p models.PlayerRecord) []models.ToolView {
	out := make([]models.ToolView, 0, names.Tools.Len())
	for _, e := range names.Tools.Entries() {
		view := models.ToolView{Key: e.Key, Label: names.Tools.Label(e.Key), Category: e.Category}
		if t, ok := p.Tool(e.Key); ok {
			view.AmountLeft = t.State.AmountLeft
			view.Seen = t.State.HasBeenSeen
			view.Selected = t.State.HasBeenSelected
			view.Unlocked = t.State.IsUnlocked
		}
		out = append(out, view)
	}
	return out
}

func gameMode(permadeath bool) string {
	if permadeath {
		return ModeSteelSoul
	}
	return ModeClassic
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
