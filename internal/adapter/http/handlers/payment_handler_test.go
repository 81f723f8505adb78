package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment_gateway_client/internal/adapter/http/handlers/mocks"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPaymentHandler_Authorise(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		r := gin.New()
		r.POST("/v1/payments/authorise", h.Authorise)

		w := doJSON(r, http.MethodPost, "/v1/payments/authorise", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		authCode := "65496"
		gw.EXPECT().AuthoriseRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.AuthoriseRequest) (entities.AuthorisationResult, error) {
				if req.Reference != "order-1" || req.Amount == nil || req.Amount.Value != 1050 || req.Method.Card == nil {
					t.Fatalf("unexpected request %+v", req)
				}
				return entities.AuthorisationResult{PSPReference: "8813760397300101", ResultCode: "Authorised", AuthCode: &authCode}, nil
			})

		r := gin.New()
		r.POST("/v1/payments/authorise", h.Authorise)

		w := doJSON(r, http.MethodPost, "/v1/payments/authorise", `{"reference":"order-1","amount":{"currency":"EUR","value":1050},`+
			`"shopper":{"reference":"shopper-1"},"card":{"holder_name":"A","number":"4111111111111111","expiry_month":"03","expiry_year":"2030"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["authorised"] != true || body["psp_reference"] != "8813760397300101" || body["auth_code"] != "65496" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().AuthoriseRequest(gomock.Any(), gomock.Any()).
			Return(entities.AuthorisationResult{}, entities.NewValidationError("card details and stored detail reference are mutually exclusive", "card", "selectedRecurringDetailReference"))

		r := gin.New()
		r.POST("/v1/payments/authorise", h.Authorise)

		w := doJSON(r, http.MethodPost, "/v1/payments/authorise", `{"reference":"order-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_REQUEST" || len(body.Fields) != 2 {
			t.Fatalf("unexpected error body %+v", body)
		}
	})

	t.Run("gateway fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().AuthoriseRequest(gomock.Any(), gomock.Any()).
			Return(entities.AuthorisationResult{}, &entities.FaultError{Code: "100", Message: "Invalid request"})

		r := gin.New()
		r.POST("/v1/payments/authorise", h.Authorise)

		w := doJSON(r, http.MethodPost, "/v1/payments/authorise", `{"reference":"order-1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "GATEWAY_FAULT_100" || body.Message != "Invalid request" {
			t.Fatalf("unexpected error body %+v", body)
		}
	})
}

func TestPaymentHandler_AuthoriseStored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recurring without detail reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().AuthoriseRecurring(gomock.Any(), "order-2", entities.Amount{Currency: "USD", Value: 500}, entities.Shopper{Reference: "shopper-1"}, (*string)(nil)).
			Return(entities.AuthorisationResult{PSPReference: "p", ResultCode: "Authorised"}, nil)

		r := gin.New()
		r.POST("/v1/payments/authorise-recurring", h.AuthoriseRecurring)

		w := doJSON(r, http.MethodPost, "/v1/payments/authorise-recurring", `{"reference":"order-2","amount":{"currency":"usd","value":500},"shopper":{"reference":"shopper-1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("one-click passes cvc", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().AuthoriseOneClick(gomock.Any(), "order-3", gomock.Any(), gomock.Any(), "737", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.Amount, _ entities.Shopper, _ string, ref *string) (entities.AuthorisationResult, error) {
				if ref == nil || *ref != "8313147988756818" {
					t.Fatalf("unexpected detail reference %v", ref)
				}
				return entities.AuthorisationResult{PSPReference: "p", ResultCode: "Refused"}, nil
			})

		r := gin.New()
		r.POST("/v1/payments/authorise-oneclick", h.AuthoriseOneClick)

		w := doJSON(r, http.MethodPost, "/v1/payments/authorise-oneclick", `{"reference":"order-3","amount":{"currency":"EUR","value":100},`+
			`"shopper":{"reference":"shopper-1"},"cvc":"737","selected_recurring_detail_reference":"8313147988756818"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["authorised"] != false || body["result_code"] != "Refused" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestPaymentHandler_Modifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("capture accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().Capture(gomock.Any(), "8813760397300101", entities.Amount{Currency: "EUR", Value: 1050}).
			Return(entities.ModificationResult{Modification: entities.ModificationCapture, PSPReference: "8513760397300102", Response: "[capture-received]"}, nil)

		r := gin.New()
		r.POST("/v1/payments/capture", h.Capture)

		w := doJSON(r, http.MethodPost, "/v1/payments/capture", `{"psp_reference":" 8813760397300101 ","amount":{"currency":"EUR","value":1050}}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["received"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("cancel timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().Cancel(gomock.Any(), "p").
			Return(entities.ModificationResult{}, &entities.TransportError{Kind: entities.TransportTimeout, Err: context.DeadlineExceeded})

		r := gin.New()
		r.POST("/v1/payments/cancel", h.Cancel)

		w := doJSON(r, http.MethodPost, "/v1/payments/cancel", `{"psp_reference":"p"}`)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("refund and cancel-or-refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mocks.NewMockIGateway(ctrl)
		h := NewPaymentHandler(gw, nil)

		gw.EXPECT().Refund(gomock.Any(), "p", gomock.Any()).
			Return(entities.ModificationResult{Modification: entities.ModificationRefund, Response: "[refund-received]"}, nil)
		gw.EXPECT().CancelOrRefund(gomock.Any(), "p").
			Return(entities.ModificationResult{}, errors.New("boom"))

		r := gin.New()
		r.POST("/v1/payments/refund", h.Refund)
		r.POST("/v1/payments/cancel-or-refund", h.CancelOrRefund)

		if w := doJSON(r, http.MethodPost, "/v1/payments/refund", `{"psp_reference":"p","amount":{"currency":"EUR","value":1}}`); w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPost, "/v1/payments/cancel-or-refund", `{"psp_reference":"p"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapGatewayError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation", err: entities.MissingField("reference"), status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "configuration", err: &entities.ConfigurationError{Missing: []string{"username"}}, status: http.StatusInternalServerError, code: "GATEWAY_NOT_CONFIGURED"},
		{name: "authentication", err: entities.ErrAuthentication, status: http.StatusUnauthorized, code: "GATEWAY_UNAUTHORIZED"},
		{name: "fault", err: &entities.FaultError{Code: "803", Message: "PaymentDetail not found"}, status: http.StatusBadGateway, code: "GATEWAY_FAULT_803"},
		{name: "timeout", err: &entities.TransportError{Kind: entities.TransportTimeout}, status: http.StatusGatewayTimeout, code: "GATEWAY_TIMEOUT"},
		{name: "connection", err: &entities.TransportError{Kind: entities.TransportConnection}, status: http.StatusBadGateway, code: "GATEWAY_UNAVAILABLE"},
		{name: "parse", err: &entities.ParseError{Action: "authorise", Err: errors.New("x")}, status: http.StatusBadGateway, code: "GATEWAY_INVALID_REPLY"},
		{name: "other", err: errors.New("x"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapGatewayError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
