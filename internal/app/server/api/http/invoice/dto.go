package invoice

import "legaldesk/internal/domain/invoice"

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	ClientName string  `json:"client_name" example:"R. Mehta"`
	Amount     float64 `json:"amount" minimum:"0" example:"15000"`
}

type createOutput struct {
	Body invoice.Invoice
}

type historyOutput struct {
	Body HistoryResponse
}

type HistoryResponse struct {
	Invoices []invoice.Invoice `json:"invoices"`
}

type pdfInput struct {
	ID int64 `path:"id" example:"1" doc:"Invoice id"`
}

type pdfOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
