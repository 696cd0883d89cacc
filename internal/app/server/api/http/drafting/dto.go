package drafting

import (
	"legaldesk/internal/domain/draft"
	"legaldesk/internal/domain/session"
)

type catalogOutput struct {
	Body CatalogResponse
}

type CatalogResponse struct {
	Categories []draft.CategoryInfo `json:"categories"`
}

type bufferOutput struct {
	Body session.Buffer
}

type editInput struct {
	Body EditRequest
}

// EditRequest overwrites the editor. Category and doc type are only changed
// when category is given.
type EditRequest struct {
	Category draft.Category `json:"category,omitempty" required:"false" enum:"Civil,Criminal"`
	DocType  string         `json:"doc_type,omitempty" required:"false"`
	Content  string         `json:"content"`
}

type templateInput struct {
	Body TemplateRequest
}

type TemplateRequest struct {
	Category draft.Category `json:"category" enum:"Civil,Criminal"`
	DocType  string         `json:"doc_type,omitempty" required:"false" doc:"Defaults to the first type of the category"`
}

type pdfOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type sendInput struct {
	Body SendRequest
}

type SendRequest struct {
	To string `json:"to" required:"false" example:"client@example.com"`
}

type sendOutput struct {
	Body SendResponse
}

// SendResponse carries the delivery outcome. A failed delivery is not an
// HTTP error.
type SendResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type analysisOutput struct {
	Body AnalysisResponse
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

type saveOutput struct {
	Body draft.Draft
}

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Drafts []draft.Draft `json:"drafts"`
}
