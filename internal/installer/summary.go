package installer

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/vantagepanel/bootstrap/internal/config"
	"github.com/vantagepanel/bootstrap/internal/theme"
)

// printComplete renders the closing summary: where the panel will
// listen, the admin account, and a QR code of the panel URL for
// opening it from a phone. generated carries the auto-generated
// admin password when one was accepted, so it is shown exactly once.
func (b *Bootstrap) printComplete(cfg *config.Bootstrap, generated string) {
	host := ""
	if b.publicIP != nil {
		host = b.publicIP()
	}
	if host == "" {
		host = "127.0.0.1"
	}
	panelURL := fmt.Sprintf("https://%s:%d", host, cfg.PanelPort)

	rows := []struct {
		key string
		val string
	}{
		{"Panel URL", panelURL},
		{"Channel", cfg.Channel},
		{"Components", cfg.Components},
		{"Panel version", cfg.PanelVersion},
		{"Admin user", cfg.AdminUser},
		{"Admin email", cfg.AdminEmail},
	}
	if cfg.HasAgent() {
		rows = append(rows, struct{ key, val string }{
			"Agent version", cfg.AgentVersion,
		})
	}

	var content strings.Builder
	for _, row := range rows {
		content.WriteString(theme.SummaryKey.Render(row.key + ":"))
		content.WriteString(theme.SummaryVal.Render(" " + row.val))
		content.WriteString("\n")
	}

	fmt.Fprintln(b.Printer.Out)
	fmt.Fprintln(b.Printer.Out, theme.Title.Render(" Bootstrap Complete "))
	fmt.Fprintln(b.Printer.Out)
	fmt.Fprintln(b.Printer.Out, theme.Box.Padding(1, 2).Render(content.String()))

	if generated != "" {
		fmt.Fprintln(b.Printer.Out)
		b.Printer.Warn("Generated admin password: %s", generated)
		b.Printer.Warn("Store it now; only a hash is kept on disk.")
	}

	if qr := renderQRCode(panelURL); qr != "" {
		fmt.Fprintln(b.Printer.Out)
		fmt.Fprintln(b.Printer.Out, theme.Dim.Render("  Scan to open the panel:"))
		fmt.Fprintln(b.Printer.Out, qr)
	}

	fmt.Fprintln(b.Printer.Out)
	b.Printer.Info("Run the panel install scripts next; they read %s.", b.ConfigDir)
}

// renderQRCode draws a QR code with half-height block characters so
// it fits a terminal.
func renderQRCode(data string) string {
	qr, err := qrcode.New(data, qrcode.Low)
	if err != nil {
		return ""
	}
	bm := qr.Bitmap()
	rows, cols := len(bm), len(bm[0])
	var b strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := bm[y][x]
			bot := y+1 < rows && bm[y+1][x]
			switch {
			case top && bot:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bot:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		if y+2 < rows {
			b.WriteString("\n")
		}
	}
	return b.String()
}
