package pubsub

import (
	"context"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/synnergylabs/conduit/internal/guidepoint"
)

// pumpMessage is one inbound WebSocket frame (or the terminal error that
// ended the read loop).
type pumpMessage struct {
	messageType int
	data        []byte
	err         error
}

// readPump relays every message (and the eventual terminal error) from
// conn onto out, then closes out. Gorilla connections support only one
// concurrent reader, so each side of the bridge gets exactly one of these.
func readPump(conn *websocket.Conn, out chan<- pumpMessage) {
	defer close(out)
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			out <- pumpMessage{err: err}
			return
		}
		out <- pumpMessage{messageType: mt, data: data}
	}
}

// connection bridges one client WebSocket to the chain and ephemeral
// upstream WebSockets, implementing the three-way cooperative multiplexer.
type connection struct {
	id        uuid.UUID
	client    *websocket.Conn
	chain     *websocket.Conn
	ephemeral *websocket.Conn
	resolver  *guidepoint.Resolver
	log       *logrus.Entry
}

func newConnection(client, chain, ephemeral *websocket.Conn, resolver *guidepoint.Resolver, log *logrus.Entry) *connection {
	id := uuid.New()
	return &connection{
		id:        id,
		client:    client,
		chain:     chain,
		ephemeral: ephemeral,
		resolver:  resolver,
		log:       log.WithField("connection", id.String()),
	}
}

// run drives the multiplexer loop until both upstreams are dead or the
// client disconnects. It closes all three connections before returning.
func (c *connection) run(ctx context.Context) {
	defer c.client.Close()
	defer c.chain.Close()
	defer c.ephemeral.Close()

	clientMsgs := make(chan pumpMessage)
	chainMsgs := make(chan pumpMessage)
	ephemeralMsgs := make(chan pumpMessage)

	go readPump(c.client, clientMsgs)
	go readPump(c.chain, chainMsgs)
	go readPump(c.ephemeral, ephemeralMsgs)

	// A channel is set to nil once its upstream dies, so the corresponding
	// select case blocks forever instead of firing on every iteration.
	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-chainMsgs:
			if !ok {
				chainMsgs = nil
				continue
			}
			if msg.err != nil {
				c.log.WithError(msg.err).Debug("chain upstream closed")
				chainMsgs = nil
				if ephemeralMsgs == nil {
					return
				}
				continue
			}
			if err := c.client.WriteMessage(msg.messageType, msg.data); err != nil {
				c.log.WithError(err).Debug("failed to forward chain frame to client")
				return
			}

		case msg, ok := <-ephemeralMsgs:
			if !ok {
				ephemeralMsgs = nil
				continue
			}
			if msg.err != nil {
				c.log.WithError(msg.err).Debug("ephemeral upstream closed")
				ephemeralMsgs = nil
				if chainMsgs == nil {
					return
				}
				continue
			}
			if err := c.client.WriteMessage(msg.messageType, msg.data); err != nil {
				c.log.WithError(err).Debug("failed to forward ephemeral frame to client")
				return
			}

		case msg, ok := <-clientMsgs:
			if !ok {
				return
			}
			if msg.err != nil {
				c.forwardToBoth(websocket.CloseMessage, []byte{})
				return
			}
			if !c.handleClientFrame(ctx, msg) {
				return
			}
		}
	}
}

// handleClientFrame dispatches one client frame per the frame-type rules
// in the router's pub/sub loop. It returns false when the bridge should
// terminate.
func (c *connection) handleClientFrame(ctx context.Context, msg pumpMessage) bool {
	switch msg.messageType {
	case websocket.TextMessage:
		strategy := guidepoint.ParseGuideStrategy(msg.data)
		endpoint := c.resolver.Resolve(ctx, strategy)
		c.forwardByEndpoint(endpoint, msg)
		return true

	case websocket.CloseMessage:
		c.forwardToBoth(websocket.CloseMessage, msg.data)
		return false

	case websocket.PingMessage, websocket.PongMessage:
		c.forwardToBoth(msg.messageType, msg.data)
		return true

	default:
		// Binary or otherwise unrecognized frame: forward to chain only,
		// the safe default.
		if err := c.chain.WriteMessage(msg.messageType, msg.data); err != nil {
			c.log.WithError(err).Debug("failed to forward binary frame to chain")
		}
		return true
	}
}

func (c *connection) forwardByEndpoint(endpoint guidepoint.RequestEndpoint, msg pumpMessage) {
	switch {
	case endpoint.IsChain():
		c.writeTo(c.chain, msg)
	case endpoint.IsEphemeral():
		c.writeTo(c.ephemeral, msg)
	case endpoint.IsBoth():
		c.writeTo(c.chain, msg)
		c.writeTo(c.ephemeral, msg)
	default:
		c.writeTo(c.chain, msg)
	}
}

func (c *connection) forwardToBoth(messageType int, data []byte) {
	_ = c.chain.WriteMessage(messageType, data)
	_ = c.ephemeral.WriteMessage(messageType, data)
}

func (c *connection) writeTo(conn *websocket.Conn, msg pumpMessage) {
	if err := conn.WriteMessage(msg.messageType, msg.data); err != nil {
		c.log.WithError(err).Debug("failed to forward client frame upstream")
	}
}
