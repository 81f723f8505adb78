package usecase

import (
	"context"
	"testing"
	"time"

	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/domain/entities"
	mock_interfaces "payment_gateway_client/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecurringUseCase_ListStoredDetails(t *testing.T) {
	t.Run("details are mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
		transport.EXPECT().Send(gomock.Any(), testRecurringURL, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ config.Credentials, doc []byte) ([]byte, error) {
				ref, _ := elementText(doc, "shopperReference")
				require.Equal(t, "shopper-1", ref)
				contract, _ := elementText(doc, "contract")
				require.Equal(t, "RECURRING", contract)
				return recurringReply("listRecurringDetails", `<ns1:result>`+
					`<ns1:creationDate>2024-01-10T10:00:00.000Z</ns1:creationDate>`+
					`<ns1:details>`+
					`<ns1:RecurringDetail>`+
					`<ns1:card><ns1:expiryMonth>3</ns1:expiryMonth><ns1:expiryYear>2030</ns1:expiryYear>`+
					`<ns1:holderName>Adyen Test</ns1:holderName><ns1:number>1111</ns1:number></ns1:card>`+
					`<ns1:creationDate>2024-01-10T10:00:00.000Z</ns1:creationDate>`+
					`<ns1:recurringDetailReference>8313147988756818</ns1:recurringDetailReference>`+
					`<ns1:variant>visa</ns1:variant>`+
					`</ns1:RecurringDetail>`+
					`<ns1:RecurringDetail>`+
					`<ns1:recurringDetailReference>8413147988756819</ns1:recurringDetailReference>`+
					`<ns1:variant>mc</ns1:variant>`+
					`</ns1:RecurringDetail>`+
					`</ns1:details>`+
					`<ns1:shopperReference>shopper-1</ns1:shopperReference>`+
					`</ns1:result>`), nil
			})

		uc := NewRecurringUseCase(newTestConfig(), transport, nil)
		details, err := uc.ListStoredDetails(context.Background(), entities.ListStoredDetailsRequest{ShopperReference: "shopper-1"})
		require.NoError(t, err)
		require.Len(t, details, 2)

		require.Equal(t, "8313147988756818", details[0].Reference)
		require.Equal(t, "visa", details[0].Variant)
		require.NotNil(t, details[0].Card)
		require.Equal(t, "1111", details[0].Card.Number)
		require.Equal(t, time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), details[0].CreatedAt.UTC())

		require.Equal(t, "8413147988756819", details[1].Reference)
		require.Nil(t, details[1].Card)
		require.True(t, details[1].CreatedAt.IsZero())
	})

	t.Run("no stored details is an empty list", func(t *testing.T) {
		for name, body := range map[string]string{
			"absent": `<ns1:result><ns1:shopperReference>shopper-2</ns1:shopperReference></ns1:result>`,
			"empty":  `<ns1:result><ns1:details/></ns1:result>`,
			"nil":    `<ns1:result><ns1:details xsi:nil="true"/></ns1:result>`,
		} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
				transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(recurringReply("listRecurringDetails", body), nil)

				details, err := NewRecurringUseCase(newTestConfig(), transport, nil).
					ListStoredDetails(context.Background(), entities.ListStoredDetailsRequest{ShopperReference: "shopper-2"})
				require.NoError(t, err)
				require.NotNil(t, details)
				require.Empty(t, details)
			})
		}
	})

	t.Run("detail without reference is a parse error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
		transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(recurringReply("listRecurringDetails", `<ns1:result><ns1:details><ns1:RecurringDetail><ns1:variant>visa</ns1:variant></ns1:RecurringDetail></ns1:details></ns1:result>`), nil)

		_, err := NewRecurringUseCase(newTestConfig(), transport, nil).
			ListStoredDetails(context.Background(), entities.ListStoredDetailsRequest{ShopperReference: "s"})
		require.ErrorIs(t, err, entities.ErrParse)
	})

	t.Run("missing shopper reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
		transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := NewRecurringUseCase(newTestConfig(), transport, nil).
			ListStoredDetails(context.Background(), entities.ListStoredDetailsRequest{})
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, []string{"shopperReference"}, ve.Fields)
	})
}

func TestRecurringUseCase_DisableStoredDetails(t *testing.T) {
	cases := []struct {
		name     string
		detail   *string
		present  bool
		sent     string
		response string
	}{
		{name: "nil disables all", detail: nil, present: false, response: entities.AllDetailsDisabledToken},
		{name: "explicit reference", detail: strPtr("8313147988756818"), present: true, sent: "8313147988756818", response: entities.DetailDisabledToken},
		{name: "empty reference is still sent", detail: strPtr(""), present: true, sent: "", response: entities.DetailDisabledToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
			transport.EXPECT().Send(gomock.Any(), testRecurringURL, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ config.Credentials, doc []byte) ([]byte, error) {
					got, ok := elementText(doc, "recurringDetailReference")
					require.Equal(t, tc.present, ok)
					require.Equal(t, tc.sent, got)
					return recurringReply("disable", `<ns1:result><ns1:response>`+tc.response+`</ns1:response></ns1:result>`), nil
				})

			res, err := NewRecurringUseCase(newTestConfig(), transport, nil).DisableStoredDetails(context.Background(),
				entities.DisableStoredDetailsRequest{ShopperReference: "shopper-1", DetailReference: tc.detail})
			require.NoError(t, err)
			require.True(t, res.Disabled())
			require.Equal(t, tc.response, res.Response)
		})
	}

	t.Run("fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transport := mock_interfaces.NewMockIGatewayTransport(ctrl)
		transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(faultReply("803", "PaymentDetail not found"), nil)

		_, err := NewRecurringUseCase(newTestConfig(), transport, nil).DisableStoredDetails(context.Background(),
			entities.DisableStoredDetailsRequest{ShopperReference: "shopper-1", DetailReference: strPtr("x")})
		var fault *entities.FaultError
		require.ErrorAs(t, err, &fault)
		require.Equal(t, "803", fault.Code)
	})
}
