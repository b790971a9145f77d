// Package vcard serializes a business identity into a vCard 3.0 record
// suitable for a client-side .vcf download.
package vcard

import (
	"strings"

	"github.com/storefrontclub/storefront/internal/phone"
)

// ContentType is the MIME type served with a generated card.
const ContentType = "text/vcard; charset=utf-8"

// Card is the business identity serialized into a contact card. Email and
// address are passed through without format validation.
type Card struct {
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Title        string   `json:"title,omitempty"`
	Phones       []string `json:"phones"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Website      string   `json:"website"`
}

// Generate renders the card as CRLF-joined vCard 3.0 text. The first phone
// is typed WORK, the rest VOICE; all numbers are emitted as +91<digits>.
// Commas in the address become semicolons per the structured ADR field.
func Generate(c Card) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + c.Name,
		"ORG:" + c.Organization,
	}

	if c.Title != "" {
		lines = append(lines, "TITLE:"+c.Title)
	}

	for i, p := range c.Phones {
		kind := "VOICE"
		if i == 0 {
			kind = "WORK"
		}
		lines = append(lines, "TEL;TYPE="+kind+":+"+phone.CountryCode+phone.Digits(p))
	}

	lines = append(lines,
		"EMAIL;TYPE=INTERNET:"+c.Email,
		"ADR;TYPE=WORK:;;"+strings.ReplaceAll(c.Address, ",", ";")+";;",
		"URL:"+c.Website,
		"END:VCARD",
	)

	return strings.Join(lines, "\r\n")
}

// Filename derives the download name from the organization, spaces replaced
// with dashes.
func Filename(organization string) string {
	return strings.ReplaceAll(organization, " ", "-") + "-contact.vcf"
}
