package entities

import (
	"errors"
	"testing"
)

func TestPaymentMethodInput_Resolve(t *testing.T) {
	card := &Card{HolderName: "A", Number: "4111111111111111", ExpiryMonth: "03", ExpiryYear: "2030"}
	stored := "8313147988756818"

	t.Run("card payment", func(t *testing.T) {
		m, err := PaymentMethodInput{Card: card, EnableRecurring: true}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cp, ok := m.(CardPayment)
		if !ok || !cp.EnableRecurring || cp.Card.Number != card.Number {
			t.Fatalf("unexpected method %#v", m)
		}
	})

	t.Run("incomplete card", func(t *testing.T) {
		_, err := PaymentMethodInput{Card: &Card{Number: "4111"}}.Resolve()
		var ve *ValidationError
		if !errors.As(err, &ve) || len(ve.Fields) != 3 {
			t.Fatalf("expected three missing card fields, got %v", err)
		}
	})

	t.Run("card and stored reference are exclusive", func(t *testing.T) {
		for _, contract := range []Contract{ContractNone, ContractRecurring, ContractOneClick} {
			_, err := PaymentMethodInput{Contract: contract, Card: card, StoredDetailReference: &stored, CVC: "737"}.Resolve()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("contract %q: expected validation error, got %v", contract, err)
			}
		}
	})

	t.Run("recurring defaults to latest", func(t *testing.T) {
		m, err := PaymentMethodInput{Contract: ContractRecurring}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != (RecurringPayment{DetailReference: LatestDetailReference}) {
			t.Fatalf("unexpected method %#v", m)
		}
	})

	t.Run("recurring rejects card", func(t *testing.T) {
		_, err := PaymentMethodInput{Contract: ContractRecurring, Card: card}.Resolve()
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("one-click", func(t *testing.T) {
		m, err := PaymentMethodInput{Contract: ContractOneClick, StoredDetailReference: &stored, CVC: "737"}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != (OneClickPayment{DetailReference: stored, CVC: "737"}) {
			t.Fatalf("unexpected method %#v", m)
		}
	})

	t.Run("stored reference without contract", func(t *testing.T) {
		m, err := PaymentMethodInput{StoredDetailReference: &stored}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != (RecurringPayment{DetailReference: stored}) {
			t.Fatalf("unexpected method %#v", m)
		}

		m, err = PaymentMethodInput{StoredDetailReference: &stored, CVC: "737"}.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != (OneClickPayment{DetailReference: stored, CVC: "737"}) {
			t.Fatalf("unexpected method %#v", m)
		}
	})

	t.Run("neither card nor stored reference", func(t *testing.T) {
		_, err := PaymentMethodInput{CVC: "737"}.Resolve()
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("one-click needs cvc", func(t *testing.T) {
		_, err := PaymentMethodInput{Contract: ContractOneClick}.Resolve()
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Fields[0] != "card.cvc" {
			t.Fatalf("expected card.cvc error, got %v", err)
		}
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, err := PaymentMethodInput{Contract: "PAYOUT"}.Resolve()
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestAuthorisationResult_Predicates(t *testing.T) {
	cases := []struct {
		code                         string
		authorised, refused, pending bool
	}{
		{code: "Authorised", authorised: true},
		{code: "Refused", refused: true},
		{code: "Pending", pending: true},
		{code: "AUTHORISED"},
		{code: ""},
		{code: "Error"},
	}
	for _, tc := range cases {
		r := AuthorisationResult{ResultCode: tc.code}
		if r.Authorised() != tc.authorised || r.Refused() != tc.refused || r.Pending() != tc.pending {
			t.Errorf("code %q: got authorised=%v refused=%v pending=%v", tc.code, r.Authorised(), r.Refused(), r.Pending())
		}
	}
}

func TestModification(t *testing.T) {
	if got := ModificationCancelOrRefund.ReceivedToken(); got != "[cancelOrRefund-received]" {
		t.Fatalf("unexpected token %q", got)
	}
	if !ModificationCapture.RequiresAmount() || !ModificationRefund.RequiresAmount() {
		t.Fatalf("capture and refund carry an amount")
	}
	if ModificationCancel.RequiresAmount() || ModificationCancelOrRefund.RequiresAmount() {
		t.Fatalf("cancel does not carry an amount")
	}

	r := ModificationResult{Modification: ModificationRefund, Response: "[refund-received]"}
	if !r.Received() {
		t.Fatalf("expected received")
	}
	r.Response = "[Refund-Received]"
	if r.Received() {
		t.Fatalf("token comparison is case-sensitive")
	}
}

func TestAmount_Validate(t *testing.T) {
	cases := []struct {
		amount Amount
		ok     bool
	}{
		{amount: NewAmount("eur", 1050), ok: true},
		{amount: NewAmount("JPY", 0), ok: true},
		{amount: Amount{Currency: "EU", Value: 1}},
		{amount: Amount{Currency: "E1R", Value: 1}},
		{amount: NewAmount("USD", -5)},
	}
	for _, tc := range cases {
		err := tc.amount.Validate("amount")
		if (err == nil) != tc.ok {
			t.Errorf("%v: unexpected result %v", tc.amount, err)
		}
	}
}

func TestDisableResult_Disabled(t *testing.T) {
	if !(DisableResult{Response: DetailDisabledToken}).Disabled() {
		t.Fatalf("detail token")
	}
	if !(DisableResult{Response: AllDetailsDisabledToken}).Disabled() {
		t.Fatalf("all details token")
	}
	if (DisableResult{Response: "[detail-disabled]"}).Disabled() {
		t.Fatalf("unknown token accepted")
	}
}
