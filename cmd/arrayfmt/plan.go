package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"arrayfmt/internal/directive"
	"arrayfmt/internal/format"
	"arrayfmt/internal/layout"
)

var planCmd = &cobra.Command{
	Use:   "plan [flags] <element-count>",
	Short: "Show how an array with the given number of elements is laid out",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().String("elements-per-line", "", `elements on each line, e.g. "1 2 3"`)
	planCmd.Flags().String("wrap-threshold", "0", "keep single-line arrays with at most N elements inline")
	planCmd.Flags().String("directive", "", `directive comment bound to the array, e.g. "// arrayfmt-wrap-threshold: 3"`)
	planCmd.Flags().Bool("multiline", false, "the source array spans several lines")
	planCmd.Flags().Bool("render", false, "render the array with placeholder elements")
	planCmd.Flags().Bool("json", false, "print the plan as JSON")
}

func runPlan(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return fmt.Errorf("plan: element count must be a non-negative integer, got %q", args[0])
	}

	flags := cmd.Flags()
	in := layout.Input{Elements: count}

	threshold, _ := flags.GetString("wrap-threshold")
	if in.DefaultThreshold, err = directive.ParseThresholdOption(threshold); err != nil {
		return err
	}
	if perLine, _ := flags.GetString("elements-per-line"); perLine != "" {
		if in.DefaultCounts, err = directive.ParseElementsPerLineOption(perLine); err != nil {
			return err
		}
	}
	if comment, _ := flags.GetString("directive"); comment != "" {
		d, ok, err := directive.ParseComment(comment)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("plan: %q is not a directive comment", comment)
		}
		in.Directive = d
	}
	in.Multiline, _ = flags.GetBool("multiline")

	plan := layout.Compute(in)
	out := cmd.OutOrStdout()

	if asJSON, _ := flags.GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Groups []int `json:"groups"`
			Inline bool  `json:"inline"`
		}{Groups: plan.Groups, Inline: plan.Inline})
	}

	fmt.Fprintln(out, describePlan(plan))
	if render, _ := flags.GetBool("render"); render {
		elements := make([]string, count)
		for i := range elements {
			elements[i] = "e" + strconv.Itoa(i+1)
		}
		fmt.Fprintln(out, format.NewRenderer(format.Options{}).Render(plan, elements, ""))
	}
	return nil
}

func describePlan(plan layout.Plan) string {
	switch {
	case plan.Empty():
		return "empty"
	case plan.Inline:
		return fmt.Sprintf("inline (%d)", plan.Total())
	}
	parts := make([]string, len(plan.Groups))
	for i, g := range plan.Groups {
		parts[i] = strconv.Itoa(g)
	}
	return "lines: " + strings.Join(parts, " ")
}
