package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/spf13/cobra"
)

// parseColor reads a hex argument, honoring strict-hex.
func (a *app) parseColor(s string) (colorspace.RGBA, error) {
	if !a.v.GetBool("strict-hex") {
		return colorspace.ParseHex(s).RGBA(), nil
	}
	p, err := colorspace.ParseHexStrict(s)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	return p.RGBA(), nil
}

// parseComponents parses "x,y,z" or "x,y,z,a" with every value in [0,1].
// A missing alpha is 1.
func parseComponents(s string) ([4]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return [4]float64{}, fmt.Errorf("expected 3 or 4 comma-separated values, got %d", len(parts))
	}

	out := [4]float64{0, 0, 0, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [4]float64{}, fmt.Errorf("invalid value %q: %w", p, err)
		}
		if v < 0 || v > 1 {
			return [4]float64{}, fmt.Errorf("value %g out of range 0-1", v)
		}
		out[i] = v
	}
	return out, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [hex]",
		Short: "Show a color in every representation",
		Long: `Show a color as hex, packed value, RGBA, HSLA and HSBA.

The color is given either as a hex argument or with exactly one of
--rgb, --hsl or --hsb, each taking "x,y,z" or "x,y,z,a" in the range 0-1.
Hue is normalized, so 0.5 is 180 degrees.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, _ := cmd.Flags().GetString("rgb")
			hsl, _ := cmd.Flags().GetString("hsl")
			hsb, _ := cmd.Flags().GetString("hsb")

			given := len(args)
			for _, f := range []string{rgb, hsl, hsb} {
				if f != "" {
					given++
				}
			}
			if given != 1 {
				return fmt.Errorf("give exactly one of a hex argument, --rgb, --hsl or --hsb")
			}

			var c colorspace.RGBA
			switch {
			case len(args) == 1:
				var err error
				if c, err = a.parseColor(args[0]); err != nil {
					return err
				}
			default:
				flag, value := "rgb", rgb
				if hsl != "" {
					flag, value = "hsl", hsl
				} else if hsb != "" {
					flag, value = "hsb", hsb
				}
				v, err := parseComponents(value)
				if err != nil {
					return fmt.Errorf("--%s: %w", flag, err)
				}
				switch flag {
				case "rgb":
					c = colorspace.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
				case "hsl":
					c = colorspace.FromHSLA(v[0], v[1], v[2], v[3])
				case "hsb":
					c = colorspace.FromHSBA(v[0], v[1], v[2], v[3])
				}
			}

			return writeJSON(cmd.OutOrStdout(), colorspace.Describe(c))
		},
	}

	cmd.Flags().String("rgb", "", "Normalized RGB components r,g,b[,a]")
	cmd.Flags().String("hsl", "", "HSL components h,s,l[,a]")
	cmd.Flags().String("hsb", "", "HSB components h,s,b[,a]")
	return cmd
}

type adjustOutput struct {
	Input      colorspace.Description `json:"input"`
	Adjustment string                 `json:"adjustment"`
	Amount     float64                `json:"amount"`
	Result     colorspace.Description `json:"result"`
}

func (a *app) newAdjustCmd(name, short string) *cobra.Command {
	adj := colorspace.Adjustment(name)

	cmd := &cobra.Command{
		Use:   name + " <hex>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.parseColor(args[0])
			if err != nil {
				return err
			}

			amount := a.v.GetFloat64("default-amount")
			if cmd.Flags().Changed("amount") {
				amount, _ = cmd.Flags().GetFloat64("amount")
			}
			a.logger.Debug("Adjusting color", "adjustment", name, "input", c.Hex(), "amount", amount)

			return writeJSON(cmd.OutOrStdout(), adjustOutput{
				Input:      colorspace.Describe(c),
				Adjustment: name,
				Amount:     amount,
				Result:     colorspace.Describe(adj.Apply(c, amount)),
			})
		},
	}

	cmd.Flags().Float64("amount", 0, "Lightness change 0-1 (default from --default-amount)")
	return cmd
}

type contrastOutput struct {
	Foreground    string  `json:"foreground"`
	Background    string  `json:"background"`
	ContrastRatio float64 `json:"contrast_ratio"`
	PassesAA      bool    `json:"passes_aa"`
	PassesAAA     bool    `json:"passes_aaa"`
	Distance      float64 `json:"distance"`
}

func (a *app) newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "WCAG contrast ratio and CIEDE2000 distance of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := a.parseColor(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := a.parseColor(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			ratio := colorspace.ContrastRatio(fg, bg)
			return writeJSON(cmd.OutOrStdout(), contrastOutput{
				Foreground:    fg.Hex(),
				Background:    bg.Hex(),
				ContrastRatio: ratio,
				PassesAA:      ratio >= colorspace.ContrastAA,
				PassesAAA:     ratio >= colorspace.ContrastAAA,
				Distance:      colorspace.DistanceCIEDE2000(fg, bg),
			})
		},
	}
}
