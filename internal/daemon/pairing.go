package daemon

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matheus3301/wppsearch/internal/wa"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

func printPairing(events <-chan wa.PairingEvent, logger *zap.Logger) {
	for evt := range events {
		switch evt.Type {
		case wa.PairingCode:
			if err := writeQR(os.Stderr, evt.Code); err != nil {
				logger.Warn("cannot render QR code", zap.Error(err))
			}
		case wa.PairingSuccess:
			logger.Info("pairing succeeded")
		default:
			logger.Warn("pairing ended", zap.String("type", string(evt.Type)), zap.String("message", evt.Message))
		}
	}
}

func writeQR(w io.Writer, content string) error {
	qr, err := renderQR(content)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Scan with WhatsApp > Linked devices:\n%s\n", qr)
	return err
}

// renderQR draws content with Unicode half blocks, two bitmap rows per
// terminal line.
func renderQR(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("generate QR: %w", err)
	}

	bitmap := qr.Bitmap()
	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		sb.WriteString("  ")
		for x := range bitmap[y] {
			top := bitmap[y][x] // true = black module
			bot := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String(), nil
}
