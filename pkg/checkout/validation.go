package checkout

import (
	"regexp"
	"strings"
)

// ShippingForm is the fixed field set collected on the first checkout step.
type ShippingForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// PaymentForm is the fixed field set collected on the second checkout step.
type PaymentForm struct {
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVC    string `json:"card_cvc"`
}

// FieldErrors maps a form field to its validation message.
type FieldErrors map[string]string

// Ok reports whether validation passed.
func (f FieldErrors) Ok() bool {
	return len(f) == 0
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateShipping checks the shipping step: every field must be non-empty
// after trimming and the email must contain an "@". Pure format checks,
// no address verification.
func ValidateShipping(form ShippingForm) FieldErrors {
	errs := FieldErrors{}

	requireField(errs, "first_name", form.FirstName, "First name is required")
	requireField(errs, "last_name", form.LastName, "Last name is required")
	if !strings.Contains(form.Email, "@") {
		errs["email"] = "Valid email is required"
	}
	requireField(errs, "phone", form.Phone, "Phone number is required")
	requireField(errs, "address", form.Address, "Address is required")
	requireField(errs, "city", form.City, "City is required")
	requireField(errs, "state", form.State, "State is required")
	requireField(errs, "zip_code", form.ZipCode, "ZIP code is required")

	return errs
}

// ValidatePayment checks the payment step: card number (spaces stripped)
// must be 13-19 digits, expiry must be MM/YY, CVC must be 3-4 digits.
// Format checks only; no Luhn, no expiry freshness.
func ValidatePayment(form PaymentForm) FieldErrors {
	errs := FieldErrors{}

	digits := strings.ReplaceAll(form.CardNumber, " ", "")
	if !cardNumberPattern.MatchString(digits) {
		errs["card_number"] = "Valid card number is required"
	}
	if !cardExpiryPattern.MatchString(form.CardExpiry) {
		errs["card_expiry"] = "Use MM/YY format"
	}
	if !cardCVCPattern.MatchString(form.CardCVC) {
		errs["card_cvc"] = "Valid CVC is required"
	}

	return errs
}

func requireField(errs FieldErrors, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}
