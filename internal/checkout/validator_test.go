package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/pkg/errors"
)

func validSubmission() domain.CheckoutSubmission {
	return domain.CheckoutSubmission{
		Address: domain.Address{
			Street:  "123 Main Street",
			City:    "Anytown",
			State:   "CA",
			ZipCode: "90210",
			Country: "USA",
		},
		PaymentMethod: domain.PaymentMethodPayPal,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(*errors.ErrValidation)
	require.True(t, ok, "expected *errors.ErrValidation, got %T", err)
	return vErr.Fields
}

func TestValidateAcceptsValidSubmission(t *testing.T) {
	assert.NoError(t, Validate(validSubmission()))
}

func TestValidateAddressRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.CheckoutSubmission)
		wantField string
	}{
		{"street required", func(s *domain.CheckoutSubmission) { s.Address.Street = "" }, FieldStreet},
		{"street too short", func(s *domain.CheckoutSubmission) { s.Address.Street = "1 St" }, FieldStreet},
		{"city required", func(s *domain.CheckoutSubmission) { s.Address.City = "A" }, FieldCity},
		{"state required", func(s *domain.CheckoutSubmission) { s.Address.State = "" }, FieldState},
		{"zip too short", func(s *domain.CheckoutSubmission) { s.Address.ZipCode = "9021" }, FieldZipCode},
		{"country required", func(s *domain.CheckoutSubmission) { s.Address.Country = "U" }, FieldCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			fields := fieldErrors(t, Validate(s))
			assert.Contains(t, fields, tt.wantField)
			assert.Len(t, fields, 1)
		})
	}
}

func TestValidateApartmentOptional(t *testing.T) {
	s := validSubmission()
	s.Address.Apartment = ""
	assert.NoError(t, Validate(s))

	s.Address.Apartment = "Apt 4B"
	assert.NoError(t, Validate(s))
}

func TestValidatePaymentMethodMissingVsInvalid(t *testing.T) {
	s := validSubmission()
	s.PaymentMethod = ""
	fields := fieldErrors(t, Validate(s))
	assert.Equal(t, "Please select a payment method.", fields[FieldPaymentMethod])

	s.PaymentMethod = "bitcoin"
	fields = fieldErrors(t, Validate(s))
	assert.Equal(t, "Unsupported payment method.", fields[FieldPaymentMethod])
}

func TestValidateCardRequiredOnlyForCardPayments(t *testing.T) {
	// PayPal with empty card fields passes.
	s := validSubmission()
	s.PaymentMethod = domain.PaymentMethodPayPal
	assert.NoError(t, Validate(s))

	// The identical submission paying by card fails with the single
	// combined card-details error.
	s.PaymentMethod = domain.PaymentMethodCard
	fields := fieldErrors(t, Validate(s))
	assert.Contains(t, fields, CardDetailsPath)
	assert.Len(t, fields, 1)
}

func TestValidateCardFieldsIgnoredForOtherMethods(t *testing.T) {
	s := validSubmission()
	s.PaymentMethod = domain.PaymentMethodCOD
	s.CardDetails = domain.CardDetails{CardNumber: "bad", CardExpiry: "99/99", CardCvc: "x"}
	assert.NoError(t, Validate(s))
}

func TestValidateCardDetails(t *testing.T) {
	valid := domain.CardDetails{
		CardNumber: "4242424242424242",
		CardExpiry: "12/27",
		CardCvc:    "123",
	}

	tests := []struct {
		name   string
		mutate func(*domain.CardDetails)
		wantOK bool
	}{
		{"valid 16 digit card", func(c *domain.CardDetails) {}, true},
		{"valid 13 digit number", func(c *domain.CardDetails) { c.CardNumber = "4242424242424" }, true},
		{"valid 19 digit number", func(c *domain.CardDetails) { c.CardNumber = "4242424242424242424" }, true},
		{"number too short", func(c *domain.CardDetails) { c.CardNumber = "424242424242" }, false},
		{"number too long", func(c *domain.CardDetails) { c.CardNumber = "42424242424242424242" }, false},
		{"number missing", func(c *domain.CardDetails) { c.CardNumber = "" }, false},
		{"expiry month 00", func(c *domain.CardDetails) { c.CardExpiry = "00/27" }, false},
		{"expiry month 13", func(c *domain.CardDetails) { c.CardExpiry = "13/27" }, false},
		{"expiry wrong format", func(c *domain.CardDetails) { c.CardExpiry = "1/27" }, false},
		{"expiry missing", func(c *domain.CardDetails) { c.CardExpiry = "" }, false},
		{"cvc 4 digits", func(c *domain.CardDetails) { c.CardCvc = "1234" }, true},
		{"cvc too short", func(c *domain.CardDetails) { c.CardCvc = "12" }, false},
		{"cvc too long", func(c *domain.CardDetails) { c.CardCvc = "12345" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			s.PaymentMethod = domain.PaymentMethodCard
			s.CardDetails = valid
			tt.mutate(&s.CardDetails)

			err := Validate(s)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				fields := fieldErrors(t, err)
				assert.Equal(t,
					"Please provide valid card details if 'Credit/Debit Card' is selected.",
					fields[CardDetailsPath])
			}
		})
	}
}

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	s := domain.CheckoutSubmission{PaymentMethod: domain.PaymentMethodCard}
	fields := fieldErrors(t, Validate(s))
	for _, f := range []string{FieldStreet, FieldCity, FieldState, FieldZipCode, FieldCountry, CardDetailsPath} {
		assert.Contains(t, fields, f)
	}
}
