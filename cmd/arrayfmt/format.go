package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arrayfmt/internal/diag"
	"arrayfmt/internal/diagfmt"
	"arrayfmt/internal/directive"
	"arrayfmt/internal/driver"
	"arrayfmt/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Reformat array literals in JavaScript and TypeScript files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that need formatting without rewriting them")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().String("diagnostics", "short", "diagnostic style for text output (short|pretty)")
	fmtCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	fmtCmd.Flags().Int("jobs", 0, "files formatted in parallel (0 = GOMAXPROCS)")
	fmtCmd.Flags().Bool("no-cache", false, "do not read or write the formatted-file cache")
	fmtCmd.Flags().Bool("verify", false, "re-check every result for lost tokens and idempotence")
	fmtCmd.Flags().String("wrap-threshold", "", "keep single-line arrays with at most N elements inline")
	fmtCmd.Flags().String("elements-per-line", "", `elements on each line, e.g. "1 2 3"; the last count repeats`)
	fmtCmd.Flags().Int("indent-width", 0, "spaces per indentation level (default 4)")
	fmtCmd.Flags().Bool("use-tabs", false, "indent with tabs")
}

// errFormattingRequired makes --check exit with status 1.
var errFormattingRequired = errors.New("fmt: formatting changes required")

func runFmt(cmd *cobra.Command, args []string) (err error) {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	diagStyle, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return err
	}
	if diagStyle != "short" && diagStyle != "pretty" {
		return fmt.Errorf("fmt: unsupported diagnostics style %q", diagStyle)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	switch outputFormat {
	case "text":
	case "json":
		if writeToStdout {
			return fmt.Errorf("fmt: --stdout is only supported with text output")
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	opts, err := buildFormatOptions(cmd)
	if err != nil {
		return err
	}
	opts.Check = check
	opts.Stdout = writeToStdout

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	if showTimings {
		opts.Timer = observ.NewTimer()
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { cleanup(err) }()

	var results []driver.FormatResult
	if shouldUseTUI(mode, writeToStdout || outputFormat == "json") {
		files, collectErr := driver.CollectSourceFiles(cmd.Context(), args, opts.Extensions)
		if collectErr != nil {
			return collectErr
		}
		results, err = runFormatWithUI(cmd.Context(), "arrayfmt", files, args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		renderFmtDiagnostics(stderr, results, diagStyle, quiet)
		if writeToStdout {
			hasErrors = renderFmtStdout(stdout, stderr, results)
		} else {
			hasErrors, hasChanges = renderFmtText(stdout, stderr, results, check, quiet)
		}
	case "json":
		if err := renderFmtJSON(stdout, results, check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	}

	if opts.Timer != nil {
		fmt.Fprint(stderr, opts.Timer.Summary())
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return errFormattingRequired
	}
	return nil
}

// buildFormatOptions merges arrayfmt.toml with the command-line flags; flags
// win.
func buildFormatOptions(cmd *cobra.Command) (driver.FormatOptions, error) {
	var opts driver.FormatOptions

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, err
	}
	opts.MaxDiagnostics = maxDiagnostics

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return opts, err
	}
	manifest, found, err := loadProjectManifest(configPath, ".")
	if err != nil {
		return opts, err
	}
	useCache := true
	if found {
		if err := manifest.Config.Format.apply(&opts); err != nil {
			return opts, fmt.Errorf("%s: %w", manifest.Path, err)
		}
		useCache = manifest.Config.Format.cacheEnabled()
	}

	flags := cmd.Flags()
	if flags.Changed("wrap-threshold") {
		value, _ := flags.GetString("wrap-threshold")
		n, err := directive.ParseThresholdOption(value)
		if err != nil {
			return opts, err
		}
		opts.Options.WrapThreshold = n
	}
	if flags.Changed("elements-per-line") {
		value, _ := flags.GetString("elements-per-line")
		counts, err := directive.ParseElementsPerLineOption(value)
		if err != nil {
			return opts, err
		}
		opts.Options.ElementsPerLine = counts
	}
	if flags.Changed("indent-width") {
		width, _ := flags.GetInt("indent-width")
		if width <= 0 {
			return opts, fmt.Errorf("fmt: --indent-width must be positive")
		}
		opts.Options.IndentWidth = width
	}
	if flags.Changed("use-tabs") {
		opts.Options.UseTabs, _ = flags.GetBool("use-tabs")
	}
	if flags.Changed("jobs") {
		opts.Jobs, _ = flags.GetInt("jobs")
	}
	opts.Verify, _ = flags.GetBool("verify")
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		useCache = false
	}

	if useCache {
		// a cache that cannot be opened only costs speed
		if cache, err := driver.OpenDiskCache("arrayfmt"); err == nil {
			opts.Cache = cache
		}
	}
	return opts, nil
}

func renderFmtDiagnostics(w io.Writer, results []driver.FormatResult, style string, quiet bool) {
	for _, res := range results {
		if res.Diagnostics == nil || res.Diagnostics.Len() == 0 {
			continue
		}
		bag := res.Diagnostics
		if quiet {
			bag = diag.NewBag(bag.Cap())
			for _, d := range res.Diagnostics.Items() {
				if d.Severity >= diag.SevError {
					bag.Add(d)
				}
			}
		}
		if style == "pretty" {
			diagfmt.Pretty(w, bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     !color.NoColor,
				Context:   1,
				ShowNotes: true,
			})
			continue
		}
		if out := diag.FormatShort(bag.Items(), res.FileSet, true); out != "" {
			fmt.Fprintln(w, out)
		}
	}
}

func renderFmtStdout(stdout, stderr io.Writer, results []driver.FormatResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(stderr, "%s %s: %v\n", errorColor.Sprint("fmt:"), res.Path, res.Err)
			continue
		}
		_, _ = stdout.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(stdout, stderr io.Writer, results []driver.FormatResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(stderr, "%s %s: %v\n", errorColor.Sprint("fmt:"), res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(stdout, res.Path)
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", changedColor.Sprint("reformatted"), res.Path)
	}
	if !quiet && !check && !hasChanges && !hasErrors {
		fmt.Fprintln(stdout, okColor.Sprint("all files already formatted"))
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path        string                   `json:"path"`
		Changed     bool                     `json:"changed"`
		Cached      bool                     `json:"cached,omitempty"`
		Error       string                   `json:"error,omitempty"`
		CheckRun    bool                     `json:"check"`
		Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Diagnostics != nil && res.Diagnostics.Len() > 0 {
			jr.Diagnostics = diagfmt.BuildJSON(res.Diagnostics, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         diagfmt.PathModeAuto,
				IncludeNotes:     true,
			}).Diagnostics
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
