package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"routelint/internal/analysis"
	"routelint/internal/cache"
	"routelint/internal/observ"
	"routelint/internal/project"
	"routelint/internal/report"
	"routelint/internal/rules"
	"routelint/internal/version"
)

type outputMode uint8

const (
	outputConsole outputMode = iota
	outputJSON
	outputSarif
	outputHTML
)

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "print per-file issue counts in console mode")
	rootCmd.Flags().BoolP("json", "j", false, "emit the analysis result as JSON to stdout")
	rootCmd.Flags().Bool("sarif", false, "emit a SARIF 2.1.0 log to stdout")
	rootCmd.Flags().Bool("html", false, "write a self-contained HTML report")
	rootCmd.Flags().String("output", "", "destination path for the HTML report (implies --html)")
	rootCmd.Flags().Bool("extended", false, "include route configs, dependency table and global recommendations (implied by --html)")
	rootCmd.Flags().Bool("cache", false, "reuse per-file results for unchanged content")
	rootCmd.Flags().String("ui", "auto", "per-file progress display (auto|on|off)")
}

// runScan is the root command: walk the target, run the rule table,
// render the selected report.
func runScan(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	flags := cmd.Flags()
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	jsonOut, err := flags.GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	sarifOut, err := flags.GetBool("sarif")
	if err != nil {
		return fmt.Errorf("failed to get sarif flag: %w", err)
	}
	htmlOut, err := flags.GetBool("html")
	if err != nil {
		return fmt.Errorf("failed to get html flag: %w", err)
	}
	outputPath, err := flags.GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	extended, err := flags.GetBool("extended")
	if err != nil {
		return fmt.Errorf("failed to get extended flag: %w", err)
	}
	useCache, err := flags.GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxIssues, err := cmd.Root().PersistentFlags().GetInt("max-issues")
	if err != nil {
		return fmt.Errorf("failed to get max-issues flag: %w", err)
	}

	mode := outputConsole
	switch {
	case jsonOut:
		mode = outputJSON
	case sarifOut:
		mode = outputSarif
	case htmlOut || outputPath != "":
		mode = outputHTML
	}
	if mode == outputHTML {
		extended = true
	}

	uiChoice, err := parseUISetting(uiFlag)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("target path %q does not exist", target)
	}
	if !info.IsDir() {
		return fmt.Errorf("target path %q is not a directory", target)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve target path: %w", err)
	}

	warnf := func(format string, fmtArgs ...any) {
		fmt.Fprintf(os.Stderr, "routelint: "+format+"\n", fmtArgs...)
	}

	// Nearest manifest above the target configures skip dirs, disabled
	// rules, and the HTML output dir. Missing manifest = defaults.
	var cfg project.Config
	if manifest, ok, mErr := project.Discover(absTarget); mErr != nil {
		warnf("%v", mErr)
	} else if ok {
		cfg = manifest.Config
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	scanner := &analysis.Scanner{
		Rules:         rules.Enabled(cfg.Rules.Disable),
		Extended:      extended,
		MaxIssues:     maxIssues,
		ExtraSkipDirs: cfg.Scan.SkipDirs,
		Warnf:         warnf,
		Timer:         timer,
	}
	if useCache {
		c, cErr := cache.Open("routelint", warnf)
		if cErr != nil {
			warnf("cache disabled: %v", cErr)
		} else {
			scanner.Cache = c
		}
	}

	var res *analysis.Result
	if mode == outputConsole && uiChoice.wantProgressUI() {
		res, err = runScanWithUI(scanner, absTarget)
	} else {
		res, err = scanner.Run(absTarget)
	}
	if err != nil {
		return err
	}

	meta := report.ToolMeta{Name: "routelint", Version: version.Plain}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	reportPhase := -1
	if timer != nil {
		reportPhase = timer.Begin("report")
	}

	exit := 0
	switch mode {
	case outputJSON:
		err = report.JSON(os.Stdout, res, meta)
	case outputSarif:
		err = report.Sarif(os.Stdout, res, meta)
	case outputHTML:
		dest := outputPath
		if dest == "" {
			dest = report.DefaultHTMLPath(absTarget, cfg.Output.Dir)
		}
		if err = report.HTML(res, meta, dest); err == nil {
			fmt.Fprintf(os.Stdout, "report written to %s\n", dest)
		}
	default:
		report.Console(os.Stdout, res, report.ConsoleOpts{Color: useColor, Verbose: verbose})
		if res.HasIssues() {
			exit = 1
		}
	}
	if timer != nil {
		timer.End(reportPhase, "")
	}
	if err != nil {
		return err
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if exit != 0 {
		os.Exit(exit)
	}
	return nil
}
