package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a connection to the table via websockets. Each connection gets
// a fresh opaque identity; seats are keyed off it.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// PlayerID is the opaque identity handle for this connection
	PlayerID string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:     conn,
		PlayerID: uuid.New().String(),
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
	}
}

// Send sends a message to the web client. Returns false if the client's
// buffer is full; the frame is dropped rather than blocking the caller.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	return fmt.Sprintf("client:%s", c.PlayerID)
}

// ReceivedMessage is called when the server receives a message from a
// connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
