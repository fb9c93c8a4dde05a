// Package pubsub accepts client WebSocket subscriptions and multiplexes
// each one across a chain and an ephemeral upstream cluster, mirroring
// the pub/sub half of original_source/director-rpc.
package pubsub

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/synnergylabs/conduit/internal/guidepoint"
)

// Director accepts incoming WebSocket connections and bridges each one to
// freshly dialed chain/ephemeral upstream WebSockets.
type Director struct {
	chainWSURL     string
	ephemeralWSURL string
	resolver       *guidepoint.Resolver
	upgrader       websocket.Upgrader
	log            *logrus.Entry
}

// NewDirector builds a Director dialing chainWSURL/ephemeralWSURL for
// every accepted client connection.
func NewDirector(chainWSURL, ephemeralWSURL string, resolver *guidepoint.Resolver, log *logrus.Entry) *Director {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Director{
		chainWSURL:     chainWSURL,
		ephemeralWSURL: ephemeralWSURL,
		resolver:       resolver,
		upgrader:       websocket.Upgrader{ReadBufferSize: 4096, WriteBufferSize: 4096},
		log:            log.WithField("component", "director.pubsub"),
	}
}

// ServeHTTP upgrades the request to a WebSocket and runs the three-way
// multiplexer for the lifetime of that connection.
func (d *Director) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	client, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.log.WithError(err).Warn("failed to upgrade client connection")
		return
	}

	chain, ephemeral, err := d.dialUpstreams()
	if err != nil {
		d.log.WithError(err).Warn("failed to dial upstream cluster")
		_ = client.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "upstream unavailable"),
			time.Now().Add(time.Second))
		client.Close()
		return
	}

	conn := newConnection(client, chain, ephemeral, d.resolver, d.log)
	conn.run(r.Context())
}

func (d *Director) dialUpstreams() (chain, ephemeral *websocket.Conn, err error) {
	chain, _, err = websocket.DefaultDialer.Dial(d.chainWSURL, nil)
	if err != nil {
		return nil, nil, &UpstreamDialError{Cluster: "chain", Err: err}
	}
	ephemeral, _, err = websocket.DefaultDialer.Dial(d.ephemeralWSURL, nil)
	if err != nil {
		chain.Close()
		return nil, nil, &UpstreamDialError{Cluster: "ephemeral", Err: err}
	}
	return chain, ephemeral, nil
}
