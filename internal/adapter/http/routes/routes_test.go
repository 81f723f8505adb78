package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment_gateway_client/internal/adapter/http/handlers/mocks"
	"payment_gateway_client/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockIGateway(ctrl)
	notifications := mocks.NewMockINotificationUseCase(ctrl)
	router := NewRouter(Dependencies{Gateway: gw, Notifications: notifications})

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
			t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("swagger document", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/payments/authorise") {
			t.Fatalf("unexpected swagger response %d", w.Code)
		}
	})

	t.Run("gateway routes are registered", func(t *testing.T) {
		want := map[string]bool{
			"POST /v1/payments/authorise":                     false,
			"POST /v1/payments/authorise-recurring":           false,
			"POST /v1/payments/authorise-oneclick":            false,
			"POST /v1/payments/capture":                       false,
			"POST /v1/payments/refund":                        false,
			"POST /v1/payments/cancel":                        false,
			"POST /v1/payments/cancel-or-refund":              false,
			"GET /v1/recurring/:shopper_reference/details":    false,
			"DELETE /v1/recurring/:shopper_reference/details": false,
			"POST /v1/notifications":                          false,
			"GET /v1/notifications/:psp_reference":            false,
		}
		for _, r := range router.Routes() {
			key := r.Method + " " + r.Path
			if _, ok := want[key]; ok {
				want[key] = true
			}
		}
		for route, found := range want {
			if !found {
				t.Errorf("route %s not registered", route)
			}
		}
	})

	t.Run("list stored details through the router", func(t *testing.T) {
		gw.EXPECT().ListStoredDetails(gomock.Any(), "shopper-1").Return([]entities.StoredDetail{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/recurring/shopper-1/details", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
