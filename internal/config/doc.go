// Package config loads runtime configuration for the user admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   storage driver: memory, file, sqlite, postgres or s3
//	-k string   secret key used to sign auth tokens
//	-l int      simulated transport latency (milliseconds)
//	-n int      table rows per page
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "800ms" or integer nanoseconds:
//
//	{
//	  "storage_driver": "file",
//	  "storage_dir": "./data",
//	  "transport_latency": "800ms",
//	  "items_per_page": 10
//	}
package config
