package config

import (
	"log"
	"math"
	"strings"
)

func BoundEpsilon(v float64) float64 {
	return math.Max(1e-15, math.Min(1e-3, v)) // Default: 1e-12
}

func BoundPrecision(v int) int {
	return int(math.Max(1, math.Min(15, float64(v)))) // Default: 6
}

func BoundBackend(v string) string {
	switch b := Backend(strings.ToLower(strings.TrimSpace(v))); b {
	case BackendNative, BackendGraph:
		return string(b)
	default:
		log.Printf("unknown backend %q, using %s", v, BackendNative)
		return string(BackendNative)
	}
}
