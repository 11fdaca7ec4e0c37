package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nativelint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available lint rules",
	Long:  "Print every rule with its diagnostic code, default severity, and whether it can suggest a fix.",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	bold := color.New(color.Bold)
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()

	for _, r := range rules.All() {
		meta := r.Meta()
		fixable := ""
		if meta.HasFix {
			fixable = "fix"
		}
		name := meta.Name
		if useColor {
			name = bold.Sprint(name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			name, meta.Code.ID(), meta.Severity.String(), fixable, meta.Doc)
	}
	return nil
}
