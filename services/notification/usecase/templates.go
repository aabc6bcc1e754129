package usecase

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

const frameWidth = 50

var funcs = template.FuncMap{
	"border": func() string { return "+" + strings.Repeat("-", frameWidth-2) + "+" },
	"title": func(s string) string {
		pad := frameWidth - 2 - len(s)
		if pad < 0 {
			pad = 0
		}
		return "|" + strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2) + "|"
	},
	"clock": func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04 MST") },
	"money": func(v float64) string { return fmt.Sprintf("N$ %.2f", v) },
}

var (
	scheduleUpdateTmpl = template.Must(template.New("schedule_update").Funcs(funcs).Parse(`{{border}}
{{title "SCHEDULE UPDATE"}}
{{border}}
  Route:      {{.RouteNumber}}
  Trip:       {{.TripID}}
  Event:      {{.EventType}} ({{.Severity}})
  Status:     {{.PreviousStatus}} -> {{.NewStatus}}
{{- if gt .DelayMinutes 0}}
  Delay:      {{.DelayMinutes}} min
{{- end}}
{{- if .Reason}}
  Reason:     {{.Reason}}
{{- end}}
  Reported:   {{clock .Timestamp}}
{{border}}`))

	ticketCreatedTmpl = template.Must(template.New("ticket_created").Funcs(funcs).Parse(`{{border}}
{{title "TICKET PURCHASED"}}
{{border}}
  Ticket:     {{.TicketID}}
  Route:      {{.RouteNumber}}
  Trip:       {{.TripID}}
  Fare:       {{money .Fare}}
  Purchased:  {{clock .PurchaseTime}}
  Valid to:   {{clock .ValidUntil}}
  QR code:    {{.QRCode}}
{{border}}`))

	ticketValidatedTmpl = template.Must(template.New("ticket_validated").Funcs(funcs).Parse(`{{border}}
{{title "TICKET VALIDATED"}}
{{border}}
  Ticket:     {{.TicketID}}
  Route:      {{.RouteNumber}}
  Trip:       {{.TripID}}
  Validated:  {{clock .ValidatedAt}}
  Enjoy your ride!
{{border}}`))
)

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
