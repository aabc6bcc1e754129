package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction
// Returns nil if transaction is not available
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// NoticeError reports err on the transaction in ctx
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// AddAttribute adds a custom attribute to the transaction in ctx
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// WithSegment executes fn within a segment of the transaction in ctx
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	segment := StartSegment(FromContext(ctx), segmentName)
	if segment != nil {
		defer segment.End()
	}
	return fn()
}

// StartMessageTransaction opens a background transaction for one consumed
// record and returns a context carrying it. The returned func ends it.
func StartMessageTransaction(ctx context.Context, app *newrelic.Application, topic, key string) (context.Context, func()) {
	if app == nil {
		return ctx, func() {}
	}

	txn := app.StartTransaction("consume/" + topic)
	txn.AddAttribute("message.topic", topic)
	txn.AddAttribute("message.key", key)
	return newrelic.NewContext(ctx, txn), txn.End
}
