package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"routelint/internal/version"
)

type versionOptions struct {
	format      string
	showHash    bool
	showMessage bool
	showDate    bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var (
	versionFormat      string
	versionShowHash    bool
	versionShowMessage bool
	versionShowDate    bool
	versionShowFull    bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowMessage, "message", false, "include git commit message")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show routelint build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := versionOptions{
			format:      strings.ToLower(versionFormat),
			showHash:    versionShowHash || versionShowFull,
			showMessage: versionShowMessage || versionShowFull,
			showDate:    versionShowDate || versionShowFull,
		}

		switch opts.format {
		case "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		if opts.format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), opts)
		}
		renderVersionPretty(cmd.OutOrStdout(), opts)
		return nil
	},
}

func renderVersionJSON(w io.Writer, opts versionOptions) error {
	payload := versionPayload{
		Tool:    "routelint",
		Version: version.Plain,
	}
	if opts.showHash {
		payload.GitCommit = version.GitCommit
	}
	if opts.showMessage {
		payload.GitMessage = version.GitMessage
	}
	if opts.showDate {
		payload.BuildDate = version.BuildDate
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderVersionPretty(w io.Writer, opts versionOptions) {
	fmt.Fprintf(w, "routelint %s\n", version.Version)
	if opts.showHash && version.GitCommit != "" {
		fmt.Fprintf(w, "  commit: %s\n", version.GitCommit)
	}
	if opts.showMessage && version.GitMessage != "" {
		fmt.Fprintf(w, "  message: %s\n", version.GitMessage)
	}
	if opts.showDate && version.BuildDate != "" {
		fmt.Fprintf(w, "  built: %s\n", version.BuildDate)
	}
}
