package shop

import (
	"fmt"
	"strings"

	"github.com/storefrontclub/storefront/internal/phone"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateConfig checks a storefront configuration after load. Findings are
// logged, not fatal: a shop with a sloppy config still serves, degraded.
func ValidateConfig(cfg Config) []ValidationError {
	var errors []ValidationError

	if cfg.Slug == "" {
		errors = append(errors, ValidationError{
			Field:   "slug",
			Message: "slug is required",
		})
	}
	if strings.TrimSpace(cfg.Name) == "" {
		errors = append(errors, ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	for i, p := range cfg.ContactPersons {
		digits := phone.Digits(p.PhoneE164)
		if len(digits) != 12 || !strings.HasPrefix(digits, phone.CountryCode) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("contact_persons[%d].phone_e164", i),
				Message: "must be 12 digits with the 91 country code",
			})
		}
		if p.WhatsAppE164 != p.PhoneE164 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("contact_persons[%d].whatsapp_e164", i),
				Message: "must match phone_e164",
			})
		}
	}

	if cfg.Payment.UpiID != "" && !strings.Contains(cfg.Payment.UpiID, "@") {
		errors = append(errors, ValidationError{
			Field:   "payment.upi_id",
			Message: "must have the handle@bank shape",
		})
	}

	return errors
}
