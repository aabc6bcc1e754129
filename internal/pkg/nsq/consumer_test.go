package nsq

import (
	"context"
	"testing"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/broker"
)

type recordingDelegate struct {
	finished int
}

func (d *recordingDelegate) OnFinish(*nsq.Message)                     { d.finished++ }
func (d *recordingDelegate) OnRequeue(*nsq.Message, time.Duration, bool) {}
func (d *recordingDelegate) OnTouch(*nsq.Message)                      {}

func newMessage(body string, delegate nsq.MessageDelegate) *nsq.Message {
	var id nsq.MessageID
	copy(id[:], "0123456789abcdef")
	msg := nsq.NewMessage(id, []byte(body))
	msg.Delegate = delegate
	return msg
}

func TestConsumer_HandlerDefersFinishUntilAck(t *testing.T) {
	c := &Consumer{records: make(chan *broker.Record, 4)}
	delegate := &recordingDelegate{}

	require.NoError(t, c.handler("ticket-created").HandleMessage(newMessage(`{"qrCode":"x"}`, delegate)))
	assert.Equal(t, 0, delegate.finished)

	records, err := c.Poll(context.Background(), 10, time.Millisecond)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ticket-created", records[0].Topic)
	assert.Equal(t, `{"qrCode":"x"}`, string(records[0].Value))

	require.NoError(t, records[0].Ack())
	assert.Equal(t, 1, delegate.finished)
}

func TestConsumer_PollTimeoutAndCancel(t *testing.T) {
	c := &Consumer{records: make(chan *broker.Record, 1)}

	records, err := c.Poll(context.Background(), 10, time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, records)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Poll(ctx, 10, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewProducer_Unreachable(t *testing.T) {
	p, err := NewProducer("127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, p)
}
