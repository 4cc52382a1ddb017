// config.go - Haupt-Konfigurationsfunktionen fuer spatten
//
// Dieses Modul enthaelt:
// - Threshold: Importance-Schwelle fuer das Pruning (SPATTEN_THRESHOLD)
// - Seed: Seed fuer die Tensor-Synthese (SPATTEN_SEED)
// - LogLevel: Gibt Log-Level zurueck (SPATTEN_DEBUG)
// - Var: Liest eine Environment-Variable bereinigt
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Simulations-Parameter (Shape, DType)
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Threshold gibt die Importance-Schwelle zurueck
// Konfigurierbar via SPATTEN_THRESHOLD
// Default: 0.05
func Threshold() float64 {
	return Float("SPATTEN_THRESHOLD", 0.05)()
}

// Seed gibt den Seed fuer die Tensor-Synthese zurueck
// Konfigurierbar via SPATTEN_SEED
// 0 = zeitbasierter Seed (Default)
func Seed() int64 {
	if s := Var("SPATTEN_SEED"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return n
		}
		slog.Warn("invalid environment variable, using default", "key", "SPATTEN_SEED", "value", s, "default", 0)
	}
	return 0
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via SPATTEN_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SPATTEN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
