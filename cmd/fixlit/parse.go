package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/fixed/decimal"
	"github.com/calebcase/fixed/digits"
	"github.com/calebcase/fixed/fixed"
	"github.com/calebcase/fixed/literal"
)

var (
	parseBits     int
	parseFrac     int
	parseUnsigned bool
	parsePolicy   string
	parseOutput   string
	parseColor    string
)

var parseCmd = &cobra.Command{
	Use:   "parse <literal>",
	Short: "Decompose a literal and convert it to fixed point",
	Long: `Decompose a literal into its digit runs and exponent, shift the radix point,
and convert the exact value to a binary fixed-point format.

Examples:
  fixlit parse 0_.017_5_e+0_2
  fixlit parse --bits 16 --frac 8 0x7f.ff
  fixlit parse --policy wrapping --unsigned 1e20 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().IntVar(&parseBits, "bits", 32, "Width in bits: 8, 16, 32 or 64")
	parseCmd.Flags().IntVar(&parseFrac, "frac", 16, "Fractional bits")
	parseCmd.Flags().BoolVar(&parseUnsigned, "unsigned", false, "Use an unsigned format")
	parseCmd.Flags().StringVar(&parsePolicy, "policy", "checked", "Overflow policy: checked, saturating, wrapping, unwrapped")
	parseCmd.Flags().StringVar(&parseOutput, "format", "human", "Output format: human, json, yaml")
	parseCmd.Flags().StringVar(&parseColor, "color", "auto", "Color output: auto, always, never")
}

// partReport is the layout of one shifted part.
type partReport struct {
	LeadingZeros  int    `json:"leading_zeros" yaml:"leading_zeros"`
	Part1         string `json:"part1" yaml:"part1"`
	Part2         string `json:"part2" yaml:"part2"`
	TrailingZeros int    `json:"trailing_zeros" yaml:"trailing_zeros"`
}

// report is everything parse prints.
type report struct {
	Literal  string      `json:"literal" yaml:"literal"`
	Negative bool        `json:"negative" yaml:"negative"`
	Radix    int         `json:"radix" yaml:"radix"`
	Int      string      `json:"int" yaml:"int"`
	Frac     string      `json:"frac" yaml:"frac"`
	Exp      int64       `json:"exp" yaml:"exp"`
	IntPart  *partReport `json:"int_part,omitempty" yaml:"int_part,omitempty"`
	FracPart *partReport `json:"frac_part,omitempty" yaml:"frac_part,omitempty"`
	Exact    string      `json:"exact,omitempty" yaml:"exact,omitempty"`
	Format   string      `json:"format" yaml:"format"`
	Policy   string      `json:"policy" yaml:"policy"`
	Raw      string      `json:"raw,omitempty" yaml:"raw,omitempty"`
	Value    string      `json:"value,omitempty" yaml:"value,omitempty"`
	Error    string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func newPartReport(s digits.Shifted) *partReport {
	return &partReport{
		LeadingZeros:  s.LeadingZeros(),
		Part1:         s.Part1().String(),
		Part2:         s.Part2().String(),
		TrailingZeros: s.TrailingZeros(),
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	policy, err := fixed.ParsePolicy(parsePolicy)
	if err != nil {
		return err
	}

	format := fixed.Format{
		Bits:   parseBits,
		Frac:   parseFrac,
		Signed: !parseUnsigned,
	}
	if err := format.Validate(); err != nil {
		return err
	}

	lit, err := literal.Parse(args[0])
	if err != nil {
		return err
	}

	r, convErr := buildReport(lit, format, policy)

	switch parseOutput {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		err = encoder.Encode(r)
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		err = encoder.Encode(r)
		if err == nil {
			err = encoder.Close()
		}
	case "human":
		err = outputHuman(cmd.OutOrStdout(), r)
	default:
		return fmt.Errorf("unknown output format %q", parseOutput)
	}
	if err != nil {
		return err
	}

	return convErr
}

func buildReport(lit literal.Literal, format fixed.Format, policy fixed.Policy) (r report, err error) {
	r = report{
		Literal:  lit.Text,
		Negative: lit.Negative,
		Radix:    lit.Radix,
		Int:      lit.Int.String(),
		Frac:     lit.Frac.String(),
		Exp:      lit.Exp,
		Format:   format.String(),
		Policy:   policy.String(),
	}

	if intPart, fracPart, ok := lit.Shift(); ok {
		r.IntPart = newPartReport(intPart)
		r.FracPart = newPartReport(fracPart)
	}

	if blk, err := decimal.FromLiteral(lit); err == nil {
		r.Exact = blk.String()
	}

	v, err := convert(lit, format, policy)
	if err != nil {
		r.Error = err.Error()

		return r, err
	}

	r.Raw = fmt.Sprintf("0x%0*x", format.Bits/4, v.Raw)
	r.Value = v.Rat().RatString()

	return r, nil
}

// convert turns the overflow panic of the unwrapped policy into an error.
func convert(lit literal.Literal, format fixed.Format, policy fixed.Policy) (v fixed.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			perr, ok := rec.(error)
			if !ok || !fixed.ErrOverflow.Has(perr) {
				panic(rec)
			}
			err = perr
		}
	}()

	return fixed.FromLiteral(lit, format, policy)
}

// styles holds the color formatters for human output.
type styles struct {
	label *color.Color
	value *color.Color
	zeros *color.Color
	err   *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		label: color.New(color.Bold),
		value: color.New(color.FgHiGreen),
		zeros: color.New(color.FgHiBlue),
		err:   color.New(color.Bold, color.FgRed),
	}

	if !enabled {
		s.label.DisableColor()
		s.value.DisableColor()
		s.zeros.DisableColor()
		s.err.DisableColor()
	}

	return s
}

func colorEnabled() bool {
	switch parseColor {
	case "always":
		return true
	case "never":
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
}

func outputHuman(out io.Writer, r report) error {
	s := newStyles(colorEnabled())

	line := func(label, format string, args ...any) {
		fmt.Fprintf(out, "%s %s\n", s.label.Sprintf("%-9s", label), fmt.Sprintf(format, args...))
	}

	line("literal", "%s", s.value.Sprint(r.Literal))
	line("radix", "%d", r.Radix)
	line("digits", "int %q frac %q exp %d", r.Int, r.Frac, r.Exp)

	if r.IntPart != nil {
		line("int", "%s", layout(s, r.IntPart))
		line("frac", "%s", layout(s, r.FracPart))
	} else {
		line("shift", "%s", s.err.Sprint("exponent out of range"))
	}

	if r.Exact != "" {
		line("exact", "%s", r.Exact)
	}

	line("format", "%s (%s)", r.Format, r.Policy)

	if r.Error != "" {
		line("error", "%s", s.err.Sprint(r.Error))

		return nil
	}

	line("raw", "%s", s.value.Sprint(r.Raw))
	line("value", "%s", s.value.Sprint(r.Value))

	return nil
}

// layout renders a part as 0{n} part1 part2 0{n}, omitting empty pieces.
func layout(s *styles, p *partReport) string {
	out := ""
	add := func(piece string) {
		if out != "" {
			out += " "
		}
		out += piece
	}

	if p.LeadingZeros > 0 {
		add(s.zeros.Sprintf("0{%d}", p.LeadingZeros))
	}
	if p.Part1 != "" {
		add(p.Part1)
	}
	if p.Part2 != "" {
		add(p.Part2)
	}
	if p.TrailingZeros > 0 {
		add(s.zeros.Sprintf("0{%d}", p.TrailingZeros))
	}

	if out == "" {
		return "(empty)"
	}

	return out
}
