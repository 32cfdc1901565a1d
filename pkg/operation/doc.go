/*
Package operation decides what gets transformed, where results land, and how
a failure of one unit affects the rest of the run.

	+-------------+
	|   Runner    |  resolve mode, check preconditions
	+------+------+
	       |
	+------+------+-------------+
	|             |             |
	stdin        file        directory
	|             |             |
	+------+------+      +------+------+
	       |             |    Batch    |  one file at a time
	       |             +------+------+
	       |                    |
	+------+--------------------+------+
	|  engine.Apply -> output.Writer   |
	+----------------------------------+

🔄 Flow:
1. source.Resolve picks stdin, file or directory mode
2. Directory mode requires an output root, and the output root must be
   absent or cleared with force, before any file is read
3. Each discovered file is read, transformed, mapped under the output root
   and written
4. A failing file is recorded in the BatchReport and the batch continues

⚡ Failure policy:
- Input missing, no output for a directory, or an existing output without
  force stop the run before anything is written
- In directory mode a read, transform or write error only fails its own file
- In file and stdin mode there is one unit, so its failure ends the run

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{
		Engine: engine.NewCommand("webcrack"),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
	report, err := runner.Run(ctx, operation.Request{Input: "src", Output: "out"})
*/
package operation
