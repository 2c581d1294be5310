package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	connected  bool
	publishErr error
	published  map[string][]byte
	handlers   map[string]nats.MsgHandler
	closed     bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{connected: true, published: map[string][]byte{}, handlers: map[string]nats.MsgHandler{}}
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published[subj] = data
	return nil
}

func (f *fakeConn) Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error) {
	f.handlers[subj] = cb
	return &nats.Subscription{Subject: subj}, nil
}

func (f *fakeConn) IsConnected() bool { return f.connected }
func (f *fakeConn) Close()            { f.closed = true }

var ev = Event{
	SenderLogin:      "jdoe",
	DestinationLogin: "asmith",
	ArtifactID:       "6f1c0b2e-81f0-11eb-8dcd-0242ac130003",
	SubmittedAt:      time.Date(2021, 3, 11, 9, 0, 0, 0, time.UTC),
	Note:             "roto fix",
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "sharenodes.transfers.asmith", Subject("asmith"))
}

func TestNATSNotifier_Notify(t *testing.T) {
	fc := newFakeConn()
	n := &NATSNotifier{nc: fc}

	require.NoError(t, n.Notify(context.Background(), ev))

	raw, ok := fc.published["sharenodes.transfers.asmith"]
	require.True(t, ok)
	var got Event
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, ev, got)
}

func TestNATSNotifier_NotifyErrors(t *testing.T) {
	fc := newFakeConn()
	n := &NATSNotifier{nc: fc}

	fc.connected = false
	assert.ErrorIs(t, n.Notify(context.Background(), ev), common.ErrNotifyFailed)

	fc.connected = true
	fc.publishErr = errors.New("slow consumer")
	err := n.Notify(context.Background(), ev)
	assert.ErrorIs(t, err, common.ErrNotifyFailed)
	assert.ErrorContains(t, err, "slow consumer")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, ev), context.Canceled)
}

func TestNATSNotifier_Watch(t *testing.T) {
	fc := newFakeConn()
	n := &NATSNotifier{nc: fc}

	var got []Event
	sub, err := n.Watch("asmith", func(e Event) { got = append(got, e) })
	require.NoError(t, err)
	assert.Equal(t, "sharenodes.transfers.asmith", sub.Subject)

	data, _ := json.Marshal(ev)
	h := fc.handlers["sharenodes.transfers.asmith"]
	h(&nats.Msg{Data: []byte("garbage")})
	h(&nats.Msg{Data: data})

	require.Len(t, got, 1)
	assert.Equal(t, ev.ArtifactID, got[0].ArtifactID)

	n.Close()
	assert.True(t, fc.closed)
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	assert.NoError(t, n.Notify(context.Background(), ev))
	n.Close()
}
