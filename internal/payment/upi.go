package payment

import (
	"net/url"
	"strconv"
	"strings"
)

// App identifies which payment app a deep link targets. Every app receives
// the same query parameters so the payee is pre-filled identically; only the
// scheme differs.
type App string

const (
	AppUPI     App = "upi"
	AppPaytm   App = "paytm"
	AppGPay    App = "gpay"
	AppPhonePe App = "phonepe"
)

// Scheme prefixes per app. The generic UPI scheme is the fallback every
// other app degrades to.
var schemes = map[App]string{
	AppUPI:     "upi://pay",
	AppPaytm:   "paytmmp://pay",
	AppGPay:    "tez://upi/pay",
	AppPhonePe: "phonepe://pay",
}

// Apps lists the supported payment apps in display order.
func Apps() []App {
	return []App{AppUPI, AppPaytm, AppGPay, AppPhonePe}
}

// BuildUpiURI builds the generic upi://pay deep link. The payee id keeps its
// handle@bank shape but the @ is percent-encoded in the query. An amount of
// zero or less is omitted so the payer chooses the amount in the app.
func BuildUpiURI(payeeID, payeeName string, amount float64) string {
	return BuildAppURI(AppUPI, payeeID, payeeName, amount)
}

// BuildAppURI builds the deep link for a specific payment app. Unknown apps
// fall back to the generic UPI scheme.
func BuildAppURI(app App, payeeID, payeeName string, amount float64) string {
	scheme, ok := schemes[app]
	if !ok {
		scheme = schemes[AppUPI]
	}
	return scheme + "?" + upiQuery(payeeID, payeeName, amount)
}

// upiQuery keeps the parameter order pa, pn, cu, am. Payment apps are not
// supposed to care about ordering, but the links are user-visible and the
// stable order keeps them diffable.
func upiQuery(payeeID, payeeName string, amount float64) string {
	var b strings.Builder
	b.WriteString("pa=")
	b.WriteString(url.QueryEscape(payeeID))
	b.WriteString("&pn=")
	b.WriteString(url.QueryEscape(payeeName))
	b.WriteString("&cu=INR")
	if amount > 0 {
		b.WriteString("&am=")
		b.WriteString(strconv.FormatFloat(amount, 'f', -1, 64))
	}
	return b.String()
}

// QRCodeURL derives a third-party QR render URL for a UPI deep link. Used
// when the shop has no static QR image asset configured.
func QRCodeURL(upiURI string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=" +
		url.QueryEscape(upiURI) + "&bgcolor=ffffff&color=000000&margin=1"
}

// QRFilename names the downloaded QR image after the payee id, with the @
// replaced so the name is filesystem-safe.
func QRFilename(payeeID string) string {
	return "upi-qr-" + strings.ReplaceAll(payeeID, "@", "-") + ".png"
}
