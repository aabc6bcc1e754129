// Package eticket renders printable tickets.
package eticket

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
)

// Render builds a one page A4 e-ticket and returns the PDF bytes with a
// suggested filename
func Render(ticket *models.Ticket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+ticket.TicketID, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRANSIT E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket      : %s", ticket.TicketID),
		fmt.Sprintf("Passenger   : %s", ticket.PassengerID),
		fmt.Sprintf("Route       : %s", orDash(ticket.RouteNumber)),
		fmt.Sprintf("Trip        : %s", ticket.TripID),
		fmt.Sprintf("Fare        : %.2f", ticket.Fare),
		fmt.Sprintf("Status      : %s", ticket.Status),
		fmt.Sprintf("Purchased   : %s", ticket.PurchasedAt.UTC().Format(time.RFC1123)),
		fmt.Sprintf("Valid until : %s", ticket.ValidUntil.UTC().Format(time.RFC1123)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Courier", "B", 14)
	pdf.Cell(0, 10, ticket.QRCode)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Valid for one passenger on the trip above. Present this code to the validator when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render e-ticket: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("ETICKET_%s.pdf", ticket.TicketID), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
