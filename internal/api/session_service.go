package api

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/joaovbs/wab/internal/status"
	"github.com/joaovbs/wab/internal/wa"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// SessionService implements the SessionService gRPC service: connection
// lifecycle and device pairing.
//
// Error taxonomy: state preconditions (not logged in, already logged in, not
// connected) are business refusals and come back as success=false with an
// error_message, not as transport errors. gRPC status codes are reserved for
// malformed requests and daemon faults.
type SessionService struct {
	wabv1.UnimplementedSessionServiceServer

	session SessionManager
	machine *status.Machine
	logger  *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(session SessionManager, machine *status.Machine, logger *zap.Logger) *SessionService {
	return &SessionService{session: session, machine: machine, logger: logger}
}

func (s *SessionService) Connect(_ context.Context, _ *wabv1.ConnectRequest) (*wabv1.ConnectResponse, error) {
	if err := s.session.Connect(); err != nil {
		return &wabv1.ConnectResponse{ErrorMessage: err.Error()}, nil
	}
	return &wabv1.ConnectResponse{Success: true}, nil
}

func (s *SessionService) Disconnect(_ context.Context, _ *wabv1.DisconnectRequest) (*wabv1.DisconnectResponse, error) {
	s.session.Disconnect()
	return &wabv1.DisconnectResponse{Success: true}, nil
}

func (s *SessionService) Logout(ctx context.Context, _ *wabv1.LogoutRequest) (*wabv1.LogoutResponse, error) {
	err := s.session.Logout(ctx)
	switch {
	case err == nil:
		return &wabv1.LogoutResponse{Success: true}, nil
	case errors.Is(err, wa.ErrNotLoggedIn), errors.Is(err, wa.ErrNotConnected):
		return &wabv1.LogoutResponse{ErrorMessage: err.Error()}, nil
	default:
		return nil, grpcstatus.Errorf(codes.Internal, "logout: %v", err)
	}
}

func (s *SessionService) GetConnectionStatus(_ context.Context, _ *wabv1.GetConnectionStatusRequest) (*wabv1.GetConnectionStatusResponse, error) {
	return &wabv1.GetConnectionStatusResponse{
		State:       string(s.machine.Current()),
		Connected:   s.session.IsConnected(),
		LoggedIn:    s.session.IsLoggedIn(),
		OwnJid:      s.session.OwnJID(),
		PhoneNumber: s.session.PhoneNumber(),
	}, nil
}

func (s *SessionService) GetPairingQR(_ *wabv1.GetPairingQRRequest, stream grpc.ServerStreamingServer[wabv1.PairingEvent]) error {
	ch, err := s.session.StartQRPairing(stream.Context())
	if err != nil {
		if errors.Is(err, wa.ErrAlreadyLoggedIn) {
			// Refusals travel inside the stream so the client sees them in
			// the same channel as QR rotation.
			return stream.Send(&wabv1.PairingEvent{
				EventType: string(wa.PairingError),
				Message:   err.Error(),
			})
		}
		return grpcstatus.Errorf(codes.Internal, "start pairing: %v", err)
	}

	for evt := range ch {
		if err := stream.Send(&wabv1.PairingEvent{
			EventType: string(evt.Type),
			QrCode:    evt.Code,
			Message:   evt.Message,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *SessionService) PairWithCode(ctx context.Context, req *wabv1.PairWithCodeRequest) (*wabv1.PairWithCodeResponse, error) {
	if req.GetPhoneNumber() == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "phone_number is required")
	}
	code, err := s.session.PairWithCode(ctx, req.GetPhoneNumber())
	switch {
	case err == nil:
		return &wabv1.PairWithCodeResponse{Success: true, PairingCode: code}, nil
	case errors.Is(err, wa.ErrAlreadyLoggedIn):
		return &wabv1.PairWithCodeResponse{ErrorMessage: err.Error()}, nil
	default:
		return nil, grpcstatus.Errorf(codes.Internal, "pair with code: %v", err)
	}
}
