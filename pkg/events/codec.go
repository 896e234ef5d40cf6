package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Metadata keys set on every message built by NewJSONMessage.
const (
	MetadataEventID      = "event_id"
	MetadataEventVersion = "event_version"
)

// ErrPermanent marks a handler failure that retrying cannot fix, such as a
// malformed payload or an event for an item that no longer exists.
var ErrPermanent = errors.New("permanent failure")

// Permanent wraps err so the bus acks the message instead of retrying it.
func Permanent(err error) error {
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// NewJSONMessage marshals payload into a new message tagged with the event's
// id and schema version.
func NewJSONMessage(eventID string, version int, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set(MetadataEventID, eventID)
	msg.Metadata.Set(MetadataEventVersion, strconv.Itoa(version))
	return msg, nil
}

// DecodeJSON unmarshals the message payload into v. A payload that cannot be
// decoded is reported as a Permanent error.
func DecodeJSON(msg *message.Message, v any) error {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return Permanent(fmt.Errorf("events: decode %s: %w", msg.UUID, err))
	}
	return nil
}
