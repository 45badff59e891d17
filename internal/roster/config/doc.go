// Package config loads runtime configuration for the roster CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (JSON or YAML) selected with -c / --config.
//  3. Environment variables with the ROSTER_ prefix, e.g. ROSTER_DATA_FILE.
//  4. Command-line flags registered by BindFlags, when explicitly set.
//
// Supported flags
//
//	-c, --config string       config file path
//	-f, --file string         roster data file
//	    --storage string      "file" or "sqlite"
//	    --db string           SQLite database path
//	-n, --top int             records shown by the sort-and-list action
//	    --add-mode string     "select" (numbered menus) or "free" (free text)
//	    --strict              reject records outside the category catalog
//	-l, --log-level string    debug, info, warn or error
//	    --log-backend string  "zap" or "slog"
//	    --color string        auto, always or never
//	    --seed uint           generator seed, 0 for random
//
// # Config file
//
//	{
//	  "data_file": "Applicants_Form.txt",
//	  "storage": "file",
//	  "top_n": 20,
//	  "add_mode": "select",
//	  "strict_categories": false
//	}
package config
