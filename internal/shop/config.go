// Package shop holds the parameterized storefront configuration and the
// HTTP surface built on it. One config struct drives every storefront
// variant; there are no forked per-shop templates.
package shop

import (
	"strings"

	"github.com/storefrontclub/storefront/internal/gallery"
	"github.com/storefrontclub/storefront/internal/payment"
	"github.com/storefrontclub/storefront/internal/phone"
	"github.com/storefrontclub/storefront/internal/vcard"
)

// ContactPerson is one reachable person of the shop. Phone numbers are
// stored twice: the 12-digit 91-prefixed E.164 digits and the display form.
// WhatsApp uses the same number as voice.
type ContactPerson struct {
	Label        string `json:"label"`
	PhoneE164    string `json:"phone_e164"`
	PhoneDisplay string `json:"phone_display"`
	WhatsAppE164 string `json:"whatsapp_e164"`
}

// TelLink builds the tel: deep link for this person.
func (p ContactPerson) TelLink() string {
	return phone.TelLink(p.PhoneE164)
}

// WhatsAppLink builds the chat deep link for this person.
func (p ContactPerson) WhatsAppLink(message string) string {
	return phone.WhatsAppLink(p.WhatsAppE164, message)
}

// WhatsApp holds the default outreach settings.
type WhatsApp struct {
	DefaultPhone   string `json:"default_phone"`
	DefaultMessage string `json:"default_message"`
}

// Contact is the shop's address block.
type Contact struct {
	Email      string `json:"email"`
	Address    string `json:"address"`
	MapQuery   string `json:"map_query,omitempty"`
	StoreHours string `json:"store_hours,omitempty"`
}

// SocialLink is one entry of the social icon row.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Config is the full parameterization of one storefront.
type Config struct {
	Slug           string           `json:"slug"`
	Name           string           `json:"name"`
	Tagline        string           `json:"tagline,omitempty"`
	URL            string           `json:"url"`
	Contact        Contact          `json:"contact"`
	ContactPersons []ContactPerson  `json:"contact_persons"`
	WhatsApp       WhatsApp         `json:"whatsapp"`
	Payment        payment.Identity `json:"payment"`
	PlaceID        string           `json:"place_id,omitempty"`
	Gallery        gallery.Gallery  `json:"gallery"`
	TrustBadges    []string         `json:"trust_badges,omitempty"`
	Social         []SocialLink     `json:"social,omitempty"`
}

// VCard builds the downloadable contact card for the shop.
func (c Config) VCard() vcard.Card {
	phones := make([]string, 0, len(c.ContactPersons))
	for _, p := range c.ContactPersons {
		phones = append(phones, strings.TrimPrefix(phone.Digits(p.PhoneE164), phone.CountryCode))
	}
	return vcard.Card{
		Name:         c.Name,
		Organization: c.Name,
		Title:        c.Tagline,
		Phones:       phones,
		Email:        c.Contact.Email,
		Address:      c.Contact.Address,
		Website:      c.URL,
	}
}
