package services

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildShareMessage composes the plain-text message that accompanies a share
// link over WhatsApp or email.
func BuildShareMessage(q Quotation, c CompanyProfile, shareURL string) string {
	return fmt.Sprintf(
		"Hello %s,\n\nHere is your quotation %s for a total of %s%.2f.\n\nView it here: %s\n\nThank you,\n%s",
		q.ClientName,
		q.QuotationID,
		CurrencySymbol(q.Currency),
		q.GrandTotal,
		shareURL,
		c.Name,
	)
}

// WhatsAppShareURL builds a WhatsApp deep link that opens a chat prefilled
// with the share message.
func WhatsAppShareURL(message string) string {
	return "https://api.whatsapp.com/send?text=" + url.QueryEscape(message)
}

// MailtoShareURL builds a mailto link addressed to the client with the
// quotation number as subject and the share message as body.
func MailtoShareURL(q Quotation, message string) string {
	params := url.Values{}
	params.Set("subject", "Quotation "+q.QuotationID)
	params.Set("body", message)
	// url.Values encodes spaces as "+", which mail clients misread in
	// mailto URLs; percent-encoding is required there.
	return "mailto:" + q.ClientEmail + "?" + strings.ReplaceAll(params.Encode(), "+", "%20")
}
