package parser

import "github.com/MKhiriev/go-silk-reader/models"

// binding copies one playerData key into the record.
type binding func(data map[string]any, r *models.PlayerRecord)

func bind[T any](key string, read func(map[string]any, string) T, field func(*models.PlayerRecord) *T) binding {
	return func(data map[string]any, r *models.PlayerRecord) {
		*field(r) = read(data, key)
	}
}

// playerFields maps playerData keys onto PlayerRecord. Tools are handled
// separately by readTools.
var playerFields = []binding{
	bind("version", ReadString, func(r *models.PlayerRecord) *string { return &r.Version }),
	bind("permadeathMode", ReadBool, func(r *models.PlayerRecord) *bool { return &r.PermadeathMode }),
	bind("completionPercentage", ReadFloat, func(r *models.PlayerRecord) *float64 { return &r.CompletionPercentage }),
	bind("playTime", ReadFloat, func(r *models.PlayerRecord) *float64 { return &r.PlayTimeSeconds }),

	bind("health", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.Health }),
	bind("maxHealth", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.MaxHealth }),
	bind("silk", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.Silk }),
	bind("silkMax", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.MaxSilk }),
	bind("silkRegenMax", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.SilkHearts }),
	bind("geo", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.Geo }),
	bind("ShellShards", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.ShellShards }),

	bind("currentArea", ReadString, func(r *models.PlayerRecord) *string { return &r.CurrentArea }),
	bind("mapZone", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.MapZone }),
	bind("atBench", ReadBool, func(r *models.PlayerRecord) *bool { return &r.AtBench }),

	bind("CurrentCrestID", ReadString, func(r *models.PlayerRecord) *string { return &r.CurrentCrestID }),

	bind("respawnScene", ReadString, func(r *models.PlayerRecord) *string { return &r.RespawnScene }),
	bind("respawnType", ReadInt, func(r *models.PlayerRecord) *int64 { return &r.RespawnType }),
	bind("respawnMarkerName", ReadString, func(r *models.PlayerRecord) *string { return &r.RespawnMarkerName }),
}
