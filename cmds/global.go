package cmds

import "os"

var GlobalExecutor = NewExecutor()

func init() {
	Define("-h", Func(func() {
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(0)
	}).Desc("print this usage").Alias("-help", "--help"))
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the global commands, printing usage and exiting on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error() + "\n\n")
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
}
