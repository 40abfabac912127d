package wa

import (
	"context"

	"github.com/matheus3301/wppsearch/internal/bus"
	"go.mau.fi/whatsmeow"
)

// PairingEventType enumerates pairing event types.
type PairingEventType string

const (
	PairingCode    PairingEventType = "code"
	PairingSuccess PairingEventType = "success"
	PairingFailed  PairingEventType = "failed"
	PairingTimeout PairingEventType = "timeout"
)

// PairingEvent is one step of QR pairing. It is also the payload of bus.KindPairing.
type PairingEvent struct {
	Type    PairingEventType
	Code    string
	Message string
}

// StartPairing begins QR pairing and connects. The returned channel is
// closed once pairing succeeds, fails or times out.
func (a *Adapter) StartPairing(ctx context.Context) (<-chan PairingEvent, error) {
	qrChan, err := a.GetQRChannel(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan PairingEvent, 10)
	emit := func(evt PairingEvent) {
		out <- evt
		a.bus.Emit(bus.KindPairing, evt)
	}

	go func() {
		defer close(out)

		// Connect must be called after GetQRChannel.
		if err := a.Connect(); err != nil {
			emit(PairingEvent{Type: PairingFailed, Message: err.Error()})
			return
		}
		for item := range qrChan {
			if evt, done := pairingEvent(item); evt != nil {
				emit(*evt)
				if done {
					return
				}
			}
		}
	}()

	return out, nil
}

// pairingEvent maps a QR channel item. done reports whether pairing is over.
func pairingEvent(item whatsmeow.QRChannelItem) (evt *PairingEvent, done bool) {
	switch item.Event {
	case "code":
		return &PairingEvent{Type: PairingCode, Code: item.Code}, false
	case "success":
		return &PairingEvent{Type: PairingSuccess, Message: "paired"}, true
	case "timeout":
		return &PairingEvent{Type: PairingTimeout, Message: "QR code timeout"}, true
	}
	if item.Error != nil {
		return &PairingEvent{Type: PairingFailed, Message: item.Error.Error()}, true
	}
	return nil, false
}
