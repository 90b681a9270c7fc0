// Package env reads raw process environment values. It exists for the few
// knobs that must resolve before envconfig parsing, such as the log format
// picked while the logger itself is being built.
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
