// Package config loads runtime configuration for the NoteMark CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. A .env file in the working directory, then the process environment.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string     path of the SQLite database file
//	-e            encrypt the snapshot with a passphrase
//	-t duration   snapshot write timeout, e.g. 3s
//	-l string     log level: debug, info, warn, error
//
// # Environment
//
//	NOTEMARK_DB, NOTEMARK_ENCRYPT, NOTEMARK_SAVE_TIMEOUT,
//	NOTEMARK_LOG_FORMAT, NOTEMARK_LOG_LEVEL, NOTEMARK_PASSPHRASE
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Absent keys keep their earlier value:
//
//	{
//	  "database_path": "notes.db",
//	  "encrypt": true,
//	  "save_timeout": "3s",
//	  "log_format": "json",
//	  "log_level": "debug"
//	}
package config
