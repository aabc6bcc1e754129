package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

var (
	// ErrUnknownMessageFormat means no known shape's marker fields were present
	ErrUnknownMessageFormat = errors.New("unknown message format")
	// ErrMalformedMessage means the payload was not a JSON object or did not fit its shape
	ErrMalformedMessage = errors.New("malformed message")
)

type rule struct {
	kind    Kind
	markers []string
	decode  func(map[string]interface{}) (Message, error)
}

// rules are evaluated top to bottom; the first whose markers are all present wins
var rules = []rule{
	{
		kind:    KindScheduleUpdate,
		markers: []string{"disruptionId", "severity"},
		decode: func(p map[string]interface{}) (Message, error) {
			var e ScheduleUpdateEvent
			if err := decodeInto(p, &e); err != nil {
				return nil, err
			}
			// a missing eventType is derived; an unknown one is rejected
			if present(p, "eventType") {
				if _, err := ParseEventType(string(e.EventType)); err != nil {
					return nil, err
				}
			} else {
				e.EventType = EventTypeForStatus(e.NewStatus)
			}
			if _, err := ParseSeverity(string(e.Severity)); err != nil {
				return nil, err
			}
			return &e, nil
		},
	},
	{
		kind:    KindTicketValidated,
		markers: []string{"validationId", "validatedAt"},
		decode: func(p map[string]interface{}) (Message, error) {
			var e TicketValidatedEvent
			if err := decodeInto(p, &e); err != nil {
				return nil, err
			}
			return &e, nil
		},
	},
	{
		kind:    KindTicketCreated,
		markers: []string{"qrCode", "purchaseTime"},
		decode: func(p map[string]interface{}) (Message, error) {
			var e TicketCreatedEvent
			if err := decodeInto(p, &e); err != nil {
				return nil, err
			}
			return &e, nil
		},
	},
}

// present treats an explicit null the same as an absent key
func present(payload map[string]interface{}, key string) bool {
	v, ok := payload[key]
	return ok && v != nil
}

// KindOf returns the shape payload matches without decoding it
func KindOf(payload map[string]interface{}) Kind {
	for _, r := range rules {
		if matches(payload, r.markers) {
			return r.kind
		}
	}
	return KindUnknown
}

func matches(payload map[string]interface{}, markers []string) bool {
	for _, m := range markers {
		if !present(payload, m) {
			return false
		}
	}
	return true
}

// Classify recognises payload by its marker fields and decodes it into the
// matching message type. Two shapes sharing both markers resolve to the one
// checked first.
func Classify(payload map[string]interface{}) (Message, error) {
	for _, r := range rules {
		if !matches(payload, r.markers) {
			continue
		}
		msg, err := r.decode(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedMessage, r.kind, err)
		}
		return msg, nil
	}
	return nil, ErrUnknownMessageFormat
}

// Decode parses raw bus bytes as a JSON object and classifies it
func Decode(data []byte) (Message, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: payload is not an object", ErrMalformedMessage)
	}
	return Classify(payload)
}

// Encode serialises a message for the bus
func Encode(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", msg.Kind(), err)
	}
	return data, nil
}

func decodeInto(payload map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(timeHook, tripStatusHook),
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(payload)
}

var (
	timeType       = reflect.TypeOf(time.Time{})
	tripStatusType = reflect.TypeOf(models.TripStatus(""))
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// timeHook accepts RFC 3339 strings, zone-less local timestamps (read as UTC)
// and epoch milliseconds.
func timeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), nil
			}
		}
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC(), nil
		}
		return nil, fmt.Errorf("unparseable time %q", v)
	case float64:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int64:
		return time.UnixMilli(v).UTC(), nil
	case int:
		return time.UnixMilli(int64(v)).UTC(), nil
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return nil, err
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	return data, nil
}

// tripStatusHook rejects statuses outside the known set instead of copying them through
func tripStatusHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != tripStatusType {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	return models.ParseTripStatus(s)
}
