package eticket

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

func TestRender(t *testing.T) {
	now := time.Date(2025, 10, 1, 7, 0, 0, 0, time.UTC)
	ticket := &models.Ticket{
		TicketID:    "ticket-1",
		PassengerID: "passenger-1",
		TripID:      "trip-1",
		RouteNumber: "R12",
		Fare:        15.5,
		Status:      models.TicketStatusPaid,
		QRCode:      "TKT-ABC",
		PurchasedAt: now,
		ValidUntil:  now.Add(24 * time.Hour),
	}

	data, name, err := Render(ticket)
	require.NoError(t, err)
	assert.Equal(t, "ETICKET_ticket-1.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
