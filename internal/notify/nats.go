package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/nats-io/nats.go"
)

// conn is the subset of *nats.Conn used here.
type conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
	IsConnected() bool
	Close()
}

// NATSNotifier publishes events as JSON on per-recipient subjects.
type NATSNotifier struct {
	nc conn
}

// ConnectNATS dials url. The connection reconnects on its own; Notify fails
// fast while it is down.
func ConnectNATS(url string) (*NATSNotifier, error) {
	nc, err := nats.Connect(url, nats.Name("sharenodes"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("%w: connect %s: %w", common.ErrNotifyFailed, url, err)
	}
	return &NATSNotifier{nc: nc}, nil
}

func (n *NATSNotifier) Notify(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !n.nc.IsConnected() {
		return fmt.Errorf("%w: %w", common.ErrNotifyFailed, nats.ErrConnectionClosed)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", common.ErrNotifyFailed, err)
	}
	if err := n.nc.Publish(Subject(ev.DestinationLogin), data); err != nil {
		return fmt.Errorf("%w: publish: %w", common.ErrNotifyFailed, err)
	}
	return nil
}

// Watch calls fn for every event addressed to login until the returned
// subscription is drained or the connection closes. Undecodable messages are
// skipped.
func (n *NATSNotifier) Watch(login string, fn func(Event)) (*nats.Subscription, error) {
	return n.nc.Subscribe(Subject(login), func(m *nats.Msg) {
		var ev Event
		if err := json.Unmarshal(m.Data, &ev); err != nil {
			return
		}
		fn(ev)
	})
}

func (n *NATSNotifier) Close() {
	n.nc.Close()
}
