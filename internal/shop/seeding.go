package shop

import (
	"github.com/storefrontclub/storefront/internal/catalog"
	"github.com/storefrontclub/storefront/internal/gallery"
	"github.com/storefrontclub/storefront/internal/payment"
)

// Bundled resolves a shop slug to its bundled configuration and catalog.
func Bundled(slug string) (Config, *catalog.Catalog, bool) {
	switch slug {
	case "honeys-fresh-n-frozen":
		return Seafood(), catalog.Seafood(), true
	case "mera-halwai":
		return Catering(), catalog.Catering(), true
	}
	return Config{}, nil, false
}

// Seafood is the bundled configuration of the seafood storefront.
func Seafood() Config {
	return Config{
		Slug:    "honeys-fresh-n-frozen",
		Name:    "Honey's Fresh N Frozen",
		Tagline: "Fresh and frozen fish, chicken and mutton since 1968",
		URL:     "https://honeymoneyfish.co",
		Contact: Contact{
			Email:      "hello@honeymoneyfish.co",
			Address:    "Shop 12, Gandhi Nagar, Jammu, Jammu and Kashmir 180004",
			MapQuery:   "Honeys Fresh N Frozen Gandhi Nagar Jammu",
			StoreHours: "Monday - Sunday: 07:00 AM to 06:30 PM",
		},
		ContactPersons: []ContactPerson{
			{Label: "Honey", PhoneE164: "919419141495", PhoneDisplay: "94191 41495", WhatsAppE164: "919419141495"},
			{Label: "Money", PhoneE164: "919419110195", PhoneDisplay: "94191 10195", WhatsAppE164: "919419110195"},
			{Label: "Office", PhoneE164: "919419108405", PhoneDisplay: "94191 08405", WhatsAppE164: "919419108405"},
		},
		WhatsApp: WhatsApp{
			DefaultPhone:   "919419141495",
			DefaultMessage: "Hello Honey's Fresh N Frozen, I want to place an order. Please share today's availability and rates.",
		},
		Payment: payment.Identity{
			UpiID:         "honeyashrama@oksbi",
			UpiName:       "Honey's Fresh N Frozen",
			UpiQRImageURL: "/shops/honeys-fresh-n-frozen/assets/qr/scan.png",
			Bank: &payment.Bank{
				BankName:            "Jammu and Kashmir Bank",
				AccountNumberMasked: "0045010100002437",
				IFSC:                "JAKA0TARGET",
				AccountHolder:       "HONEY S FRESH N FROZEN PROP SHIVANI MAHAJAN",
			},
		},
		PlaceID: "ChIJhfkr9kjtHDkR0s9vDFQ6hm0",
		Gallery: gallery.Gallery{
			Images: []string{
				"/shops/honeys-fresh-n-frozen/gallery/storefront.jpg",
				"/shops/honeys-fresh-n-frozen/gallery/counter.jpg",
				"/shops/honeys-fresh-n-frozen/gallery/boneless-prep.jpg",
				"/shops/honeys-fresh-n-frozen/gallery/delivery.jpg",
			},
		},
		TrustBadges: []string{
			"58+ Years in Business",
			"4.7★ Rated on Justdial",
			"Boneless Fish Pioneers in J&K",
		},
		Social: []SocialLink{
			{Label: "Instagram", URL: "https://instagram.com/honeysfreshnfrozen"},
			{Label: "Facebook", URL: "https://facebook.com/honeysfreshnfrozen"},
		},
	}
}

// Catering is the bundled configuration of the catering marketplace
// storefront. Same model, different parameterization.
func Catering() Config {
	return Config{
		Slug:    "mera-halwai",
		Name:    "Mera Halwai",
		Tagline: "Book caterers, connect instantly, grow your business.",
		URL:     "https://merahalwai.vercel.app",
		Contact: Contact{
			Email:      "hello@merahalwai.com",
			Address:    "House number 1034 Mahaveer Nagar 2nd, Kota, Rajasthan 324005",
			MapQuery:   "House number 1034 Mahaveer Nagar 2nd Kota Rajasthan 324005",
			StoreHours: "Monday - Sunday: 07:00 AM to 06:30 PM",
		},
		ContactPersons: []ContactPerson{
			{Label: "Office", PhoneE164: "917300321034", PhoneDisplay: "73003 21034", WhatsAppE164: "917300321034"},
		},
		WhatsApp: WhatsApp{
			DefaultPhone:   "917300321034",
			DefaultMessage: "Hello Mera Halwai, I would like to book catering. Please share packages and availability.",
		},
		Payment: payment.Identity{
			UpiID:   "merahalwai@okhdfcbank",
			UpiName: "Mera Halwai",
		},
		Gallery: gallery.Gallery{
			Images: []string{
				"/shops/mera-halwai/gallery/stall.jpg",
				"/shops/mera-halwai/gallery/thali.jpg",
				"/shops/mera-halwai/gallery/event.jpg",
			},
		},
		TrustBadges: []string{
			"500+ Events Served",
			"Verified Caterers",
		},
	}
}
