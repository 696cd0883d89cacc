package document

import (
	"fmt"

	"legaldesk/internal/domain/invoice"
	"legaldesk/internal/domain/record"
)

const InvoiceTitle = "Invoice"

// InvoiceBody is the printable text of an invoice.
func InvoiceBody(inv invoice.Invoice, advocate, enrollmentID string) string {
	return fmt.Sprintf(
		"OFFICIAL INVOICE\nAdvocate: %s\nEnrollment: %s\nClient: %s\nAmount: Rs. %.2f\nDate: %s",
		advocate, enrollmentID, inv.ClientName, inv.Amount, inv.Date.Format(record.DateLayout),
	)
}

// RenderInvoice renders an invoice through r.
func RenderInvoice(r Renderer, inv invoice.Invoice, advocate, enrollmentID string) ([]byte, error) {
	return r.Render(InvoiceBody(inv, advocate, enrollmentID), InvoiceTitle)
}
