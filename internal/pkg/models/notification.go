package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// NotificationStatus is the delivery state of a notification
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "PENDING"
	NotificationStatusSent      NotificationStatus = "SENT"
	NotificationStatusDelivered NotificationStatus = "DELIVERED"
	NotificationStatusFailed    NotificationStatus = "FAILED"
)

var NotificationStatuses = []NotificationStatus{
	NotificationStatusPending,
	NotificationStatusSent,
	NotificationStatusDelivered,
	NotificationStatusFailed,
}

// ParseNotificationStatus converts a canonical name into a NotificationStatus
func ParseNotificationStatus(s string) (NotificationStatus, error) {
	return parseEnum("notification status", s, NotificationStatuses)
}

func (s NotificationStatus) IsValid() bool {
	_, err := ParseNotificationStatus(string(s))
	return err == nil
}

func (s NotificationStatus) String() string { return string(s) }

func (s NotificationStatus) Value() (driver.Value, error) {
	if _, err := ParseNotificationStatus(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *NotificationStatus) Scan(src interface{}) error {
	v, err := scanEnum("notification status", src, NotificationStatuses)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *NotificationStatus) UnmarshalText(text []byte) error {
	v, err := ParseNotificationStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CanTransitionTo reports whether delivery may advance from s to next.
// PENDING -> SENT|FAILED|DELIVERED, SENT -> DELIVERED|FAILED; FAILED and DELIVERED are terminal.
func (s NotificationStatus) CanTransitionTo(next NotificationStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	switch s {
	case NotificationStatusPending:
		return next != NotificationStatusPending
	case NotificationStatusSent:
		return next == NotificationStatusDelivered || next == NotificationStatusFailed
	}
	return false
}

// NotificationType identifies which event produced a notification
type NotificationType string

const (
	NotificationTypeScheduleUpdate  NotificationType = "SCHEDULE_UPDATE"
	NotificationTypeTicketCreated   NotificationType = "TICKET_CREATED"
	NotificationTypeTicketValidated NotificationType = "TICKET_VALIDATED"
)

var NotificationTypes = []NotificationType{
	NotificationTypeScheduleUpdate,
	NotificationTypeTicketCreated,
	NotificationTypeTicketValidated,
}

// ParseNotificationType converts a canonical name into a NotificationType
func ParseNotificationType(s string) (NotificationType, error) {
	return parseEnum("notification type", s, NotificationTypes)
}

func (s NotificationType) IsValid() bool {
	_, err := ParseNotificationType(string(s))
	return err == nil
}

func (s NotificationType) String() string { return string(s) }

func (s NotificationType) Value() (driver.Value, error) {
	if _, err := ParseNotificationType(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *NotificationType) Scan(src interface{}) error {
	v, err := scanEnum("notification type", src, NotificationTypes)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *NotificationType) UnmarshalText(text []byte) error {
	v, err := ParseNotificationType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// NotificationChannel is the medium a notification is delivered over
type NotificationChannel string

const (
	NotificationChannelInApp NotificationChannel = "IN_APP"
	NotificationChannelEmail NotificationChannel = "EMAIL"
	NotificationChannelSMS   NotificationChannel = "SMS"
	NotificationChannelPush  NotificationChannel = "PUSH"
)

var NotificationChannels = []NotificationChannel{
	NotificationChannelInApp,
	NotificationChannelEmail,
	NotificationChannelSMS,
	NotificationChannelPush,
}

// ParseNotificationChannel converts a canonical name into a NotificationChannel
func ParseNotificationChannel(s string) (NotificationChannel, error) {
	return parseEnum("notification channel", s, NotificationChannels)
}

func (s NotificationChannel) IsValid() bool {
	_, err := ParseNotificationChannel(string(s))
	return err == nil
}

func (s NotificationChannel) String() string { return string(s) }

func (s NotificationChannel) Value() (driver.Value, error) {
	if _, err := ParseNotificationChannel(string(s)); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *NotificationChannel) Scan(src interface{}) error {
	v, err := scanEnum("notification channel", src, NotificationChannels)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *NotificationChannel) UnmarshalText(text []byte) error {
	v, err := ParseNotificationChannel(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// BroadcastRecipient addresses a notification to every passenger
const BroadcastRecipient = "ALL"

// Metadata is a free-form key/value bag stored as JSONB
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Metadata", src)
	}
	out := Metadata{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode metadata: %w", err)
	}
	*m = out
	return nil
}

// Notification is a rendered message addressed to a passenger
type Notification struct {
	NotificationID   string              `json:"notificationId" db:"notification_id"`
	PassengerID      string              `json:"passengerId" db:"passenger_id"`
	NotificationType NotificationType    `json:"notificationType" db:"notification_type"`
	Channel          NotificationChannel `json:"channel" db:"channel"`
	Subject          string              `json:"subject" db:"subject"`
	Message          string              `json:"message" db:"message"`
	Status           NotificationStatus  `json:"status" db:"status"`
	ErrorMessage     *string             `json:"errorMessage,omitempty" db:"error_message"`
	CreatedAt        time.Time           `json:"createdAt" db:"created_at"`
	SentAt           *time.Time          `json:"sentAt,omitempty" db:"sent_at"`
	Metadata         Metadata            `json:"metadata" db:"metadata"`
}
