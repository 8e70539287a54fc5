package api

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/joaovbs/wab/internal/bus"
	"github.com/joaovbs/wab/internal/domain"
	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// streamBufferSize bounds each subscriber. A client that falls further behind
// than this loses events (the bus drops, the daemon logs); it should resync
// via ListChats/ListMessages.
const streamBufferSize = 256

var validKinds = map[domain.EventKind]struct{}{
	domain.KindConnectionStatus: {},
	domain.KindMessageReceived:  {},
	domain.KindMessageSent:      {},
	domain.KindMessageRead:      {},
	domain.KindChatUpdated:      {},
}

// EventService implements the EventService gRPC service: the live event
// stream feeding interactive clients.
type EventService struct {
	wabv1.UnimplementedEventServiceServer

	bus *bus.Bus
}

// NewEventService creates a new event service.
func NewEventService(b *bus.Bus) *EventService {
	return &EventService{bus: b}
}

func (s *EventService) StreamEvents(req *wabv1.StreamEventsRequest, stream grpc.ServerStreamingServer[wabv1.EventEnvelope]) error {
	var kinds []domain.EventKind
	for _, k := range req.GetKinds() {
		kind := domain.EventKind(k)
		if _, ok := validKinds[kind]; !ok {
			return grpcstatus.Errorf(codes.InvalidArgument, "unknown event kind %q", k)
		}
		kinds = append(kinds, kind)
	}

	ch, unsub := s.bus.Subscribe(kinds, streamBufferSize)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			env := eventToEnvelope(evt)
			if env == nil {
				continue
			}
			if err := stream.Send(env); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}
