// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - String: String-Getter
// - Uint/Float: Zahlen-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - Ordered: Gibt alle Konfigurationen geordnet zurueck
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// =============================================================================
// Zahlen-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Float gibt eine Funktion zurueck, die einen float64 mit Default-Wert liest
func Float(key string, defaultValue float64) func() float64 {
	return func() float64 {
		if s := Var(key); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return f
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// Ordered gibt alle Konfigurationen in Deklarations-Reihenfolge zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func Ordered() *orderedmap.OrderedMap[string, EnvVar] {
	om := orderedmap.New[string, EnvVar]()
	for _, e := range []EnvVar{
		{"SPATTEN_DEBUG", LogLevel(), "Show additional debug information (e.g. SPATTEN_DEBUG=1)"},
		{"SPATTEN_SEQ_LEN", SeqLen(), "Number of tokens per sequence (default: 256)"},
		{"SPATTEN_NUM_HEADS", NumHeads(), "Number of attention heads (default: 12)"},
		{"SPATTEN_BATCH_SIZE", BatchSize(), "Number of sequences per batch (default: 1)"},
		{"SPATTEN_THRESHOLD", Threshold(), "Importance threshold below which tokens are pruned (default: 0.05)"},
		{"SPATTEN_SEED", Seed(), "Seed for the synthetic attention tensor (0 = time based)"},
		{"SPATTEN_DTYPE", DType(), "Storage type for memory estimates: f32, f16, bf16 (default: f32)"},
		{"SPATTEN_NO_BANNER", NoBanner(), "Do not print the report banner"},
	} {
		om.Set(e.Name, e)
	}
	return om
}

// AsMap gibt alle Konfigurationen als Map zurueck (Zugriff per Name)
func AsMap() map[string]EnvVar {
	ret := make(map[string]EnvVar)
	for pair := Ordered().Oldest(); pair != nil; pair = pair.Next() {
		ret[pair.Key] = pair.Value
	}
	return ret
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
// Die Reihenfolge bleibt auch beim JSON-Export erhalten
func Values() *orderedmap.OrderedMap[string, string] {
	vals := orderedmap.New[string, string]()
	for pair := Ordered().Oldest(); pair != nil; pair = pair.Next() {
		vals.Set(pair.Key, fmt.Sprintf("%v", pair.Value.Value))
	}
	return vals
}
