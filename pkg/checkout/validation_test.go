package checkout

import "testing"

func validShipping() ShippingForm {
	return ShippingForm{
		FirstName: "Alex",
		LastName:  "Carter",
		Email:     "alex@example.com",
		Phone:     "555-0100",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62704",
	}
}

func TestValidateShippingAccepts(t *testing.T) {
	t.Parallel()

	if errs := ValidateShipping(validShipping()); !errs.Ok() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateShippingRejectsEmptyFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		field  string
		mutate func(*ShippingForm)
	}{
		{"first_name", func(f *ShippingForm) { f.FirstName = "  " }},
		{"last_name", func(f *ShippingForm) { f.LastName = "" }},
		{"phone", func(f *ShippingForm) { f.Phone = "" }},
		{"address", func(f *ShippingForm) { f.Address = "" }},
		{"city", func(f *ShippingForm) { f.City = "" }},
		{"state", func(f *ShippingForm) { f.State = "" }},
		{"zip_code", func(f *ShippingForm) { f.ZipCode = "" }},
	}

	for _, tc := range cases {
		form := validShipping()
		tc.mutate(&form)
		errs := ValidateShipping(form)
		if errs.Ok() {
			t.Fatalf("expected error for empty %s", tc.field)
		}
		if _, ok := errs[tc.field]; !ok {
			t.Fatalf("expected %s to carry an error, got %v", tc.field, errs)
		}
	}
}

func TestValidateShippingRequiresAtSignInEmail(t *testing.T) {
	t.Parallel()

	form := validShipping()
	form.Email = "not-an-email"
	errs := ValidateShipping(form)
	if errs["email"] != "Valid email is required" {
		t.Fatalf("unexpected email error: %v", errs)
	}
}

func TestValidatePaymentAcceptsKnownVector(t *testing.T) {
	t.Parallel()

	form := PaymentForm{
		CardNumber: "4242 4242 4242 4242",
		CardExpiry: "12/29",
		CardCVC:    "123",
	}
	if errs := ValidatePayment(form); !errs.Ok() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidatePaymentCardNumberBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		number string
		ok     bool
	}{
		{"4242424242424", true},
		{"4242424242424242424", true},
		{"424242424242", false},
		{"42424242424242424242", false},
		{"4242-4242-4242-4242", false},
	}

	for _, tc := range cases {
		errs := ValidatePayment(PaymentForm{CardNumber: tc.number, CardExpiry: "12/29", CardCVC: "123"})
		if got := errs.Ok(); got != tc.ok {
			t.Fatalf("card %q: expected ok=%v, got %v", tc.number, tc.ok, errs)
		}
	}
}

func TestValidatePaymentExpiryAndCVC(t *testing.T) {
	t.Parallel()

	errs := ValidatePayment(PaymentForm{CardNumber: "4242424242424242", CardExpiry: "1/29", CardCVC: "12"})
	if errs["card_expiry"] != "Use MM/YY format" {
		t.Fatalf("unexpected expiry error: %v", errs)
	}
	if errs["card_cvc"] != "Valid CVC is required" {
		t.Fatalf("unexpected cvc error: %v", errs)
	}

	errs = ValidatePayment(PaymentForm{CardNumber: "4242424242424242", CardExpiry: "12/29", CardCVC: "1234"})
	if !errs.Ok() {
		t.Fatalf("4-digit cvc should pass, got %v", errs)
	}
}
