package api

import (
	"context"

	"github.com/joaovbs/wab/internal/domain"
	"github.com/joaovbs/wab/internal/wa"
)

// SessionManager is the slice of the live session the RPC services need.
// *wa.Session satisfies it; tests substitute a fake.
type SessionManager interface {
	Connect() error
	Disconnect()
	Logout(ctx context.Context) error
	IsConnected() bool
	IsLoggedIn() bool
	OwnJID() string
	PhoneNumber() string
	StartQRPairing(ctx context.Context) (<-chan wa.PairingEvent, error)
	PairWithCode(ctx context.Context, phoneNumber string) (string, error)
	SendText(ctx context.Context, chatJID, text string) (*domain.Message, error)
	SendMedia(ctx context.Context, chatJID string, data []byte, mimeType, fileName, caption string) (*domain.Message, error)
	SendReaction(ctx context.Context, chatJID, targetSenderJID, targetMsgID, emoji string) (*domain.Message, error)
	MarkRead(ctx context.Context, chatJID, senderJID string, msgIDs []string) error
}

var _ SessionManager = (*wa.Session)(nil)
