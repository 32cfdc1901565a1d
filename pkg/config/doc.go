// Package config loads optional jscrack settings from a file.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	      +-----------+-----------+-----------+
//	      |           |           |
//	+-----+----+ +----+----+ +----+----+
//	|   YAML   | |   HCL   | |  JSON   |
//	+----------+ +---------+ +---------+
//
// 🎯 Purpose:
// - Sets default engine passes (mangle, jsx, unpack, deobfuscate, unminify)
// - Selects the engine executable and its leading arguments
// - Lists exclude patterns for directory runs
//
// Flags given on the command line always win over file values. Without
// --config, the first of .jscrack.yaml, .jscrack.yml, .jscrack.hcl and
// .jscrack.json found in the working directory is used.
//
// 🔍 Example (.jscrack.hcl):
//
//	exclude = ["node_modules", "**/*.min.js"]
//
//	options {
//	  mangle = true
//	  jsx    = false
//	}
//
//	engine {
//	  command = env.WEBCRACK_BIN
//	}
package config
