package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"routelint/internal/rules"
)

var rulesJSON bool

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "emit the rule table as JSON")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List every detector in evaluation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := rules.All()

		if rulesJSON {
			type ruleInfo struct {
				ID       string `json:"id"`
				Severity string `json:"severity"`
				Summary  string `json:"summary"`
			}
			out := make([]ruleInfo, 0, len(table))
			for _, r := range table {
				out = append(out, ruleInfo{
					ID:       r.Kind.ID(),
					Severity: r.Severity.String(),
					Summary:  r.Summary,
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		w := cmd.OutOrStdout()
		for _, r := range table {
			fmt.Fprintf(w, "%-28s %-7s %s\n", r.Kind.ID(), r.Severity.String(), r.Summary)
		}
		return nil
	},
}
