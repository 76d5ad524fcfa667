package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

// PrintUsage lists every command with its description, one line per command.
func (e *Executor) PrintUsage(w io.Writer) {
	seen := make(map[*Command]bool)
	var commands []*Command
	for _, command := range e.commands {
		if !seen[command] {
			seen[command] = true
			commands = append(commands, command)
		}
	}
	slices.SortFunc(commands, func(a, b *Command) int {
		return strings.Compare(a.Name, b.Name)
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, command := range commands {
		names := append([]string{command.Name}, command.Aliases...)
		var params []string
		for i := range command.Arity() {
			params = append(params, "<"+command.Func.Type().In(i).String()+">")
		}
		fmt.Fprintf(tw, "%s %s\t%s\n",
			strings.Join(names, ", "),
			strings.Join(params, " "),
			command.Description,
		)
	}
	tw.Flush()
}
