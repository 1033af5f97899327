// Package config provides shared configuration utilities.
package config

import (
	"math"
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvFloat parses the variable named by key as a finite float.
// Unset, empty or unparsable values yield fallback.
func GetEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// GetEnvBool parses the variable named by key with strconv.ParseBool.
// Unset or unparsable values yield fallback.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

// EnvScale overrides the screen units drawn per kilometre.
const EnvScale = "IMPACT_SCALE"

// Scale returns IMPACT_SCALE when it is a positive number, otherwise fallback.
func Scale(fallback float64) float64 {
	if s := GetEnvFloat(EnvScale, fallback); s > 0 {
		return s
	}
	return fallback
}
