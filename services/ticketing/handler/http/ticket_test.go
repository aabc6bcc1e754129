package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/apperror"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/constants"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/middleware"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/models"
	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/validator"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing/mocks"
)

func setup(t *testing.T) (*echo.Echo, *TicketHandler, *mocks.MockTicketUC) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTicketUC(ctrl)
	e := echo.New()
	e.Validator = validator.New()
	return e, NewTicketHandler(uc), uc
}

type call struct {
	method    string
	body      string
	subject   string
	paramName string
	paramVal  string
}

func do(e *echo.Echo, cl call, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(cl.method, "/", strings.NewReader(cl.body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if cl.paramName != "" {
		c.SetParamNames(cl.paramName)
		c.SetParamValues(cl.paramVal)
	}
	if cl.subject != "" {
		c.Set(middleware.ContextPassengerID, cl.subject)
	}
	_ = handler(c)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body struct {
		ErrorCode string `json:"errorCode"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.ErrorCode
}

func TestPurchase_DefaultsPassengerToSubject(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().Purchase(gomock.Any(), &models.PurchaseTicketRequest{PassengerID: "p-1", TripID: "t-1"}).
		Return(&models.Ticket{TicketID: "tk-1", Status: models.TicketStatusCreated}, nil)

	rec := do(e, call{method: http.MethodPost, body: `{"tripId":"t-1"}`, subject: "p-1"}, h.Purchase)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPurchase_ForAnotherPassengerForbidden(t *testing.T) {
	e, h, _ := setup(t)

	rec := do(e, call{method: http.MethodPost, body: `{"passengerId":"p-2","tripId":"t-1"}`, subject: "p-1"}, h.Purchase)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPurchase_NoSeats(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().Purchase(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation(constants.ErrCodeNoSeats, "Trip t-1 has no seats available"))

	rec := do(e, call{method: http.MethodPost, body: `{"tripId":"t-1"}`, subject: "p-1"}, h.Purchase)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeNoSeats, errorCode(t, rec))
}

func TestGetTicket_Ownership(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().GetTicket(gomock.Any(), "tk-1").Return(&models.Ticket{TicketID: "tk-1", PassengerID: "p-1"}, nil).Times(2)

	rec := do(e, call{method: http.MethodGet, subject: "p-1", paramName: "ticketID", paramVal: "tk-1"}, h.GetTicket)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, call{method: http.MethodGet, subject: "p-2", paramName: "ticketID", paramVal: "tk-1"}, h.GetTicket)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetTicket_NotFound(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().GetTicket(gomock.Any(), "nope").
		Return(nil, apperror.NotFound(constants.ErrCodeTicketNotFound, "Ticket nope not found"))

	rec := do(e, call{method: http.MethodGet, subject: "p-1", paramName: "ticketID", paramVal: "nope"}, h.GetTicket)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.ErrCodeTicketNotFound, errorCode(t, rec))
}

func TestTicketPDF(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().GetTicket(gomock.Any(), "tk-1").Return(&models.Ticket{TicketID: "tk-1", PassengerID: "p-1"}, nil)
	uc.EXPECT().TicketPDF(gomock.Any(), "tk-1").Return([]byte("%PDF-1.3"), "ETICKET_tk-1.pdf", nil)

	rec := do(e, call{method: http.MethodGet, subject: "p-1", paramName: "ticketID", paramVal: "tk-1"}, h.TicketPDF)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "ETICKET_tk-1.pdf")
}

func TestConfirmPayment_AlreadyPaid(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().GetTicket(gomock.Any(), "tk-1").Return(&models.Ticket{TicketID: "tk-1", PassengerID: "p-1"}, nil)
	uc.EXPECT().ConfirmPayment(gomock.Any(), "tk-1", "X").
		Return(nil, apperror.Validation(constants.ErrCodeInvalidTicketStatus, "Ticket tk-1 is PAID, expected CREATED"))

	rec := do(e, call{method: http.MethodPost, body: `{"paymentId":"X"}`, subject: "p-1", paramName: "ticketID", paramVal: "tk-1"}, h.ConfirmPayment)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeInvalidTicketStatus, errorCode(t, rec))
}

func TestPayTicket_Declined(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().GetTicket(gomock.Any(), "tk-1").Return(&models.Ticket{TicketID: "tk-1", PassengerID: "p-1"}, nil)
	uc.EXPECT().PayTicket(gomock.Any(), "tk-1", models.PaymentMethodCard).Return(&models.PayTicketResponse{
		Ticket:  &models.Ticket{TicketID: "tk-1", Status: models.TicketStatusCreated},
		Payment: &models.PaymentResponse{Status: models.PaymentStatusFailed, FailureReason: "Card declined"},
	}, nil)

	rec := do(e, call{method: http.MethodPost, body: `{"paymentMethod":"CARD"}`, subject: "p-1", paramName: "ticketID", paramVal: "tk-1"}, h.PayTicket)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Card declined")
}

func TestValidateTicket_Expired(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().ValidateTicket(gomock.Any(), "tk-1").
		Return(nil, apperror.Validation(constants.ErrCodeTicketExpired, "Ticket tk-1 expired"))

	rec := do(e, call{method: http.MethodPost, subject: "p-9", paramName: "ticketID", paramVal: "tk-1"}, h.ValidateTicket)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constants.ErrCodeTicketExpired, errorCode(t, rec))
}

func TestListByPassenger_Ownership(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().ListTicketsByPassenger(gomock.Any(), "p-1").Return([]*models.Ticket{}, nil)

	rec := do(e, call{method: http.MethodGet, subject: "p-1", paramName: "passengerID", paramVal: "p-1"}, h.ListByPassenger)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, call{method: http.MethodGet, subject: "p-1", paramName: "passengerID", paramVal: "p-2"}, h.ListByPassenger)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExpireTickets(t *testing.T) {
	e, h, uc := setup(t)

	uc.EXPECT().ExpireStale(gomock.Any()).Return(&models.ExpireTicketsResponse{Expired: 3}, nil)

	rec := do(e, call{method: http.MethodPost}, h.ExpireTickets)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expired":3`)
}
