package phone

import (
	"net/url"
	"strings"
)

// Indian country code used for all numbers handled by the storefront.
const CountryCode = "91"

// Digits strips everything except ASCII digits from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders a phone number as "+91 XXXXX XXXXX" when it is a plain
// 10-digit local number. Anything else is returned unchanged.
func Format(raw string) string {
	cleaned := Digits(raw)
	if len(cleaned) == 10 {
		return "+" + CountryCode + " " + cleaned[:5] + " " + cleaned[5:]
	}
	return raw
}

// FormatDisplay renders a phone number as "XXXXX XXXXX" without the country
// code. 12-digit numbers carrying the 91 prefix are stripped first. Input
// that is neither 10 nor 91-prefixed 12 digits is returned unchanged.
func FormatDisplay(raw string) string {
	cleaned := Digits(raw)
	if len(cleaned) == 10 {
		return cleaned[:5] + " " + cleaned[5:]
	}
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, CountryCode) {
		return cleaned[2:7] + " " + cleaned[7:]
	}
	return raw
}

// TelLink builds a tel: deep link. A 12-digit number starting with 91 is
// used as-is, a 10-digit number gets the country code prepended. Anything
// else still yields a link; malformed input degrades, it never fails.
func TelLink(raw string) string {
	cleaned := Digits(raw)
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, CountryCode) {
		return "tel:+" + cleaned
	}
	if len(cleaned) == 10 {
		return "tel:+" + CountryCode + cleaned
	}
	return "tel:+" + cleaned
}

// WhatsAppLink builds a wa.me chat link for an E.164 number (digits only,
// e.g. 919419141495) with a pre-filled message.
func WhatsAppLink(e164, message string) string {
	cleaned := Digits(e164)
	return "https://wa.me/" + cleaned + "?text=" + url.QueryEscape(message)
}
