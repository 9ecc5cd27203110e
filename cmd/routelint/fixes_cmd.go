package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"routelint/internal/diag"
	"routelint/internal/fixes"
)

var fixesCmd = &cobra.Command{
	Use:   "fixes [rule-id|template-id]",
	Short: "Print copy-paste fix templates",
	Long: `Without an argument, lists every fix template. With a rule ID or
template ID, prints that template's before/after snippets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		if len(args) == 0 {
			for _, tpl := range fixes.All() {
				fmt.Fprintf(w, "%-24s %s\n", tpl.ID, tpl.Title)
				fmt.Fprintf(w, "%-24s %s\n", "", tpl.Summary)
			}
			return nil
		}

		tpl, ok := fixes.ByID(args[0])
		if !ok {
			if kind, kOK := diag.ParseKind(args[0]); kOK {
				tpl, ok = fixes.ForKind(kind)
			}
		}
		if !ok {
			return fmt.Errorf("no fix template for %q (see `routelint fixes`)", args[0])
		}

		fmt.Fprintf(w, "%s — %s\n\n", tpl.ID, tpl.Title)
		fmt.Fprintln(w, tpl.Summary)
		fmt.Fprintf(w, "\nbefore:\n\n%s\n\nafter:\n\n%s\n", tpl.Before, tpl.After)
		return nil
	},
}
