package research

import "legaldesk/internal/domain/draft"

type scanInput struct {
	Body ScanRequest
}

type ScanRequest struct {
	Image    []byte `json:"image" contentEncoding:"base64" doc:"Scanned page, base64 encoded"`
	MimeType string `json:"mime_type" enum:"image/png,image/jpeg,image/jpg"`
}

type citationsInput struct {
	Body CitationsRequest
}

type CitationsRequest struct {
	Query string         `json:"query" example:"anticipatory bail after chargesheet"`
	Scope draft.Category `json:"scope" enum:"Civil,Criminal"`
}

type textOutput struct {
	Body TextResponse
}

type TextResponse struct {
	Text string `json:"text"`
}
