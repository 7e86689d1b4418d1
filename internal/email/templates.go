package email

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Plain-text notification bodies. The generated document identifiers are
// included verbatim; downstream systems parse them, so they must never be
// reformatted here.

// InquiryReceived acknowledges a marketing-site inquiry
func InquiryReceived(name, serviceInterest string) (subject, text string) {
	subject = "We received your inquiry"
	text = fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out about %s. One of our team members will get back to you within one business day.\n",
		name, serviceInterest,
	)
	return subject, text
}

// QuotationSent notifies a client that a quotation is ready
func QuotationSent(clientName, quotationID string, total decimal.Decimal, currency string) (subject, text string) {
	subject = fmt.Sprintf("Quotation %s", quotationID)
	text = fmt.Sprintf(
		"Hi %s,\n\nYour quotation %s for %s %s is ready. Please review it and let us know if you have any questions.\n",
		clientName, quotationID, total.StringFixed(2), currency,
	)
	return subject, text
}

// InvoiceFinalized notifies a client that an invoice is due
func InvoiceFinalized(clientName, invoiceID string, total decimal.Decimal, currency string, paymentLink, upiAddress string) (subject, text string) {
	subject = fmt.Sprintf("Invoice %s", invoiceID)
	text = fmt.Sprintf(
		"Hi %s,\n\nInvoice %s for %s %s has been issued.\n",
		clientName, invoiceID, total.StringFixed(2), currency,
	)
	if paymentLink != "" {
		text += fmt.Sprintf("\nPay by card: %s\n", paymentLink)
	}
	if upiAddress != "" {
		text += fmt.Sprintf("\nPay by UPI or bank transfer to %s, quoting %s as the reference.\n", upiAddress, invoiceID)
	}
	return subject, text
}

// PaymentReceived confirms a recorded payment
func PaymentReceived(clientName, invoiceID string, amount decimal.Decimal, currency string) (subject, text string) {
	subject = fmt.Sprintf("Payment received for %s", invoiceID)
	text = fmt.Sprintf(
		"Hi %s,\n\nWe received your payment of %s %s against invoice %s. Thank you.\n",
		clientName, amount.StringFixed(2), currency, invoiceID,
	)
	return subject, text
}
