package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/geometry"
)

type radiiOpts struct {
	radius   float64
	rings    int
	segments int
	policies []string
	json     bool
}

func (c *CLI) radiiCommand() *cobra.Command {
	opts := radiiOpts{radius: 100, rings: 4, segments: 4}

	cmd := &cobra.Command{
		Use:   "radii",
		Short: "Compare ring spacing policies",
		Long: `Print the ring boundaries each spacing policy produces for a radar of the
given radius, ring count and segment count. Row k holds the outer boundary
of ring k, counted from the center.`,
		Example: `  techradar radii --radius 450 --rings 4 --segments 4
  techradar radii --policy golden-ratio --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, err := resolvePolicies(opts.policies)
			if err != nil {
				return err
			}
			profiles, err := computeProfiles(policies, opts.radius, opts.rings, opts.segments)
			if err != nil {
				return err
			}
			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profiles)
			}
			fmt.Fprintln(cmd.OutOrStdout(), radiiTable(profiles, opts.rings))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.radius, "radius", opts.radius, "outer radius")
	f.IntVar(&opts.rings, "rings", opts.rings, "number of rings")
	f.IntVar(&opts.segments, "segments", opts.segments, "number of segments (equal-area only)")
	f.StringSliceVarP(&opts.policies, "policy", "p", nil, "policies to compare (default: all)")
	f.BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	return cmd
}

// profile is one policy's boundaries.
type profile struct {
	Policy geometry.Policy `json:"policy"`
	Radii  []float64       `json:"radii"`
}

func resolvePolicies(names []string) ([]geometry.Policy, error) {
	if len(names) == 0 {
		return geometry.Policies, nil
	}
	out := make([]geometry.Policy, 0, len(names))
	for _, name := range names {
		p, err := geometry.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		if p == geometry.PolicyCustom {
			return nil, fmt.Errorf("policy %q needs a radius function and cannot be computed here", name)
		}
		out = append(out, p)
	}
	return out, nil
}

func computeProfiles(policies []geometry.Policy, radius float64, rings, segments int) ([]profile, error) {
	out := make([]profile, 0, len(policies))
	for _, p := range policies {
		radii, err := geometry.RadiusProfile{Policy: p}.Compute(radius, rings, segments)
		if err != nil {
			return nil, err
		}
		out = append(out, profile{Policy: p, Radii: radii})
	}
	return out, nil
}

// radiiTable renders one row per ring and one column per policy.
func radiiTable(profiles []profile, rings int) string {
	headers := []string{"Ring"}
	for _, p := range profiles {
		headers = append(headers, string(p.Policy))
	}

	rows := make([][]string, 0, rings)
	for k := 1; k <= rings; k++ {
		row := []string{strconv.Itoa(k)}
		for _, p := range profiles {
			row = append(row, formatBoundary(p.Radii[k-1], p.Radii[k]))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(styleHeader)
			case col == 0:
				return base.Foreground(ringColor(row)).Bold(true)
			default:
				return base.Foreground(colorWhite)
			}
		})
	return t.Render()
}

// formatBoundary prints the outer boundary with the ring thickness.
func formatBoundary(inner, outer float64) string {
	return strings.TrimSpace(fmt.Sprintf("%8.2f (+%.2f)", outer, outer-inner))
}
