// Command healthcalc runs the health calculators from the command line.
//
//	healthcalc list
//	healthcalc run bmi height_cm=170 weight_kg=65
//	healthcalc run sleep mode=wake_at time_hm=07:00 --json
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lg/health-tools-go/internal/tools"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "healthcalc",
		Short:        "Run the health calculators from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newListCmd(), newRunCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available tools and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalogue(cmd.OutOrStdout())
		},
	}
}

func printCatalogue(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range tools.Catalogue() {
		names := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			names[i] = f.Name
			if f.Kind == tools.KindChoice && f.Default != "" {
				names[i] += "=" + f.Default
			}
			if f.Optional {
				names[i] = "[" + names[i] + "]"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Slug, t.Title, strings.Join(names, " "))
	}
	return tw.Flush()
}

func newRunCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run <tool> [field=value ...]",
		Short: "Run one tool",
		Long: `Run one tool with field=value arguments. Choice fields left out fall back
to their defaults; every other field is required. Exits non-zero when the input
is rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, ok := tools.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown tool %q (see healthcalc list)", args[0])
			}
			in, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			out := tool.Run(in)
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), tool, out); err != nil {
					return err
				}
			} else if out.OK() {
				writeStats(cmd.OutOrStdout(), out.Result.Stats())
			}
			if !out.OK() {
				return errors.New(out.Err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the inputs and result as JSON")
	return cmd
}

// parseArgs turns field=value arguments into form values.
func parseArgs(args []string) (url.Values, error) {
	in := url.Values{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argument %q must look like field=value", a)
		}
		in.Set(k, v)
	}
	return in, nil
}

func writeStats(w io.Writer, stats []tools.Stat) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range stats {
		fmt.Fprintf(tw, "%s:\t%s\n", s.Label, s.Value)
	}
	tw.Flush()
}

func writeJSON(w io.Writer, tool *tools.Tool, out tools.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Tool string `json:"tool"`
		tools.Outcome
	}{tool.Slug, out})
}
