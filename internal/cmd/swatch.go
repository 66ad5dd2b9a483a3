package cmd

import (
	"fmt"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/spf13/cobra"
)

func (a *app) newSwatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatch <hex>",
		Short: "Render the preview ramp of a color as a PNG",
		Long: `Render four stacked cells (the color, lighter, darker and its shadow),
each labeled with its hex value in a contrasting color.

Use --out - to write the PNG to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}

			c, err := a.parseColor(args[0])
			if err != nil {
				return err
			}

			width := a.v.GetInt("swatch-width")
			if cmd.Flags().Changed("width") {
				width, _ = cmd.Flags().GetInt("width")
			}
			cellHeight := a.v.GetInt("swatch-height")
			if cmd.Flags().Changed("cell-height") {
				cellHeight, _ = cmd.Flags().GetInt("cell-height")
			}

			img, err := imaging.RenderSwatchImage(c, width, cellHeight)
			if err != nil {
				return err
			}
			data, err := imaging.EncodePNG(img)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write swatch: %w", err)
			}
			a.logger.Info("Swatch written", "path", out, "width", width, "height", img.Bounds().Dy())
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "Output PNG path, or - for stdout (required)")
	cmd.Flags().Int("width", 0, "Swatch width in pixels (default from config swatch-width)")
	cmd.Flags().Int("cell-height", 0, "Height of each cell in pixels (default from config swatch-height)")
	return cmd
}
