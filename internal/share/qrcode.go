// Package share renders the app's start URL as a QR code so it can be opened
// on another device.
package share

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/brianly1003/pwashell/internal/manifest"
)

// QRGenerator generates QR codes for an app manifest.
type QRGenerator struct {
	cfg manifest.Config
}

// NewQRGenerator creates a new QR code generator.
func NewQRGenerator(cfg manifest.Config) *QRGenerator {
	return &QRGenerator{cfg: cfg}
}

// Content returns the text encoded in the QR code.
func (g *QRGenerator) Content() string {
	return g.cfg.StartURL
}

// GenerateTerminal generates a QR code for terminal display.
func (g *QRGenerator) GenerateTerminal() (string, error) {
	qr, err := qrcode.New(g.Content(), qrcode.Medium)
	if err != nil {
		return "", err
	}
	return qr.ToSmallString(false), nil
}

// GeneratePNG generates a PNG image of the QR code.
func (g *QRGenerator) GeneratePNG(size int) ([]byte, error) {
	return qrcode.Encode(g.Content(), qrcode.Medium, size)
}

// FormatTerminal returns the QR code indented with a caption.
func (g *QRGenerator) FormatTerminal() (string, error) {
	qrStr, err := g.GenerateTerminal()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n\n", g.cfg.Title())
	for _, line := range strings.Split(strings.TrimRight(qrStr, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n  %s\n", g.Content())
	return b.String(), nil
}
