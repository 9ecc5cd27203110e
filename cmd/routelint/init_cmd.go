package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"routelint/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default routelint.toml",
	Long: `Initialize a project by writing a routelint.toml manifest with the
default scan configuration. If [path] is omitted, the current directory is
used; a non-existing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "routelint-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	return nil
}

func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`[project]
name = %q

[scan]
# Appended to the built-in denylist (node_modules, .git, dist, build,
# coverage, .next).
skip_dirs = []

[rules]
# Rule IDs to disable; see `+"`routelint rules`"+`.
disable = []

[output]
# Directory for HTML reports, relative to the scan root.
dir = "route-analysis"
`, name)
}
