// Package client wraps gRPC connections to a session daemon.
package client

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	wabv1 "github.com/joaovbs/wab/pb/wabv1"
)

// Client bundles typed service clients sharing one daemon connection.
type Client struct {
	conn    *grpc.ClientConn
	Session wabv1.SessionServiceClient
	Chat    wabv1.ChatServiceClient
	Message wabv1.MessageServiceClient
	Event   wabv1.EventServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:    conn,
		Session: wabv1.NewSessionServiceClient(conn),
		Chat:    wabv1.NewChatServiceClient(conn),
		Message: wabv1.NewMessageServiceClient(conn),
		Event:   wabv1.NewEventServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
