package wa

import (
	"context"
	"fmt"

	"github.com/joaovbs/wab/internal/status"
	"go.mau.fi/whatsmeow"
	"go.uber.org/zap"
)

// PairingEventType enumerates pairing lifecycle events.
type PairingEventType string

const (
	PairingQRCode  PairingEventType = "qr_code"
	PairingSuccess PairingEventType = "success"
	PairingTimeout PairingEventType = "timeout"
	PairingError   PairingEventType = "error"
)

// PairingEvent is one step of the QR pairing flow.
type PairingEvent struct {
	Type    PairingEventType
	Code    string
	Message string
}

// StartQRPairing begins the QR pairing flow. Valid only when not logged in.
// The returned channel emits QR codes as they rotate and closes after a
// terminal event (success, timeout, error) or when ctx is cancelled.
func (s *Session) StartQRPairing(ctx context.Context) (<-chan PairingEvent, error) {
	if s.IsLoggedIn() {
		return nil, ErrAlreadyLoggedIn
	}

	// The QR channel must be requested before Connect.
	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return nil, fmt.Errorf("get QR channel: %w", err)
	}
	_ = s.machine.Transition(status.AuthRequired)
	_ = s.machine.Transition(status.Pairing)

	out := make(chan PairingEvent, 8)
	go func() {
		defer close(out)

		if err := s.Connect(); err != nil {
			out <- PairingEvent{Type: PairingError, Message: err.Error()}
			_ = s.machine.Transition(status.AuthRequired)
			return
		}

		for {
			select {
			case item, ok := <-qrChan:
				if !ok {
					return
				}
				switch item.Event {
				case whatsmeow.QRChannelEventCode:
					out <- PairingEvent{Type: PairingQRCode, Code: item.Code}
				case whatsmeow.QRChannelSuccess.Event:
					s.logger.Info("QR pairing succeeded")
					out <- PairingEvent{Type: PairingSuccess}
					return
				case whatsmeow.QRChannelTimeout.Event:
					s.logger.Warn("QR pairing timed out")
					out <- PairingEvent{Type: PairingTimeout, Message: "pairing timed out"}
					_ = s.machine.Transition(status.AuthRequired)
					return
				default:
					if item.Error != nil {
						s.logger.Warn("QR pairing failed", zap.Error(item.Error))
						out <- PairingEvent{Type: PairingError, Message: item.Error.Error()}
						_ = s.machine.Transition(status.AuthRequired)
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// PairWithCode requests a phone-number pairing code. Valid only when not
// logged in; establishes a connection first if none is up. Completion is
// observed via the Connected event, not this call's return.
func (s *Session) PairWithCode(ctx context.Context, phoneNumber string) (string, error) {
	if s.IsLoggedIn() {
		return "", ErrAlreadyLoggedIn
	}
	if !s.IsConnected() {
		_ = s.machine.Transition(status.AuthRequired)
		if err := s.Connect(); err != nil {
			return "", err
		}
	}
	_ = s.machine.Transition(status.Pairing)

	code, err := s.client.PairPhone(ctx, phoneNumber, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
	if err != nil {
		_ = s.machine.Transition(status.AuthRequired)
		return "", fmt.Errorf("pair phone: %w", err)
	}
	return code, nil
}
