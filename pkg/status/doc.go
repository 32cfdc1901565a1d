/*
Package status reports how a jscrack run went.

	+-------------+        +-------------+
	|  Summary    | -----> | UserLogger  |
	|  (counts)   |        |  (pterm)    |
	+-------------+        +-------------+

🎯 Purpose:
- Counts discovered, written, unpacked and failed files for a batch
- Prints a one-line result and a table of failed files
- Prints fatal errors that stopped a run

📝 Notes:
Per-file lines are printed by pkg/log while the batch runs. This package only
speaks once the batch is over, or when the run could not start at all.
*/
package status
