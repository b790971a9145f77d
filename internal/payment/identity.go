package payment

import "strings"

// Identity holds the payee configuration of a shop. Immutable after load.
type Identity struct {
	UpiID         string `json:"upi_id"`
	UpiName       string `json:"upi_name"`
	UpiQRImageURL string `json:"upi_qr_image_url,omitempty"`
	Bank          *Bank  `json:"bank,omitempty"`
}

// Bank holds optional bank transfer details shown alongside UPI.
type Bank struct {
	BankName            string `json:"bank_name"`
	AccountNumberMasked string `json:"account_number_masked"`
	IFSC                string `json:"ifsc"`
	AccountHolder       string `json:"account_holder"`
	BranchName          string `json:"branch_name,omitempty"`
}

// QRURL returns the static QR asset when configured, otherwise a rendered QR
// for the generic UPI link.
func (id Identity) QRURL(amount float64) string {
	if id.UpiQRImageURL != "" {
		return id.UpiQRImageURL
	}
	return QRCodeURL(BuildUpiURI(id.UpiID, id.UpiName, amount))
}

// DetailsText renders the copyable multi-line bank block.
func (b *Bank) DetailsText() string {
	if b == nil {
		return ""
	}
	var lines []string
	lines = append(lines, "Bank: "+b.BankName)
	if b.BranchName != "" {
		lines = append(lines, "Branch: "+b.BranchName)
	}
	lines = append(lines,
		"Account: "+b.AccountNumberMasked,
		"IFSC: "+b.IFSC,
		"Holder: "+b.AccountHolder,
	)
	return strings.Join(lines, "\n")
}
