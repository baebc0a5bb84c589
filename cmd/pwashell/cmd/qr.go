package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brianly1003/pwashell/internal/share"
)

var (
	qrPNGPath string
	qrPNGSize int
)

// qrCmd prints the app's start URL as a QR code.
var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Show a QR code for the app's start URL",
	Long: `Show a QR code for the manifest's start URL so the app can be
opened on a phone or tablet.

Examples:
  pwashell qr
  pwashell qr --png app.png --size 512`,
	RunE: runQR,
}

func init() {
	qrCmd.Flags().StringVar(&qrPNGPath, "png", "", "write the QR code to a PNG file instead of the terminal")
	qrCmd.Flags().IntVar(&qrPNGSize, "size", 256, "PNG image size in pixels")
}

func runQR(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogging(cfg)

	m, err := loadManifest(context.Background(), cfg)
	if err != nil {
		return err
	}

	gen := share.NewQRGenerator(m)

	if qrPNGPath != "" {
		png, err := gen.GeneratePNG(qrPNGSize)
		if err != nil {
			return fmt.Errorf("failed to generate QR code: %w", err)
		}
		if err := os.WriteFile(qrPNGPath, png, 0644); err != nil {
			return fmt.Errorf("failed to write QR code: %w", err)
		}
		fmt.Printf("Wrote %s\n", qrPNGPath)
		return nil
	}

	out, err := gen.FormatTerminal()
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	fmt.Print(out)
	return nil
}
