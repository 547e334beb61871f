// Package env reads the handful of platform variables that live outside the
// STOREFRONT_ config namespace (PORT, DYNO, LOG_FORMAT).
package env

import (
	"os"
	"strings"
)

// Lookup reports the trimmed value of key; blank counts as unset.
func Lookup(key string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	return val, val != ""
}

func Get(key, fallback string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return fallback
}

// First returns the first set value among keys, or fallback.
func First(fallback string, keys ...string) string {
	for _, key := range keys {
		if val, ok := Lookup(key); ok {
			return val
		}
	}
	return fallback
}
