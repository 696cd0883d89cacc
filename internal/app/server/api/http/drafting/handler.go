package drafting

import (
	"context"
	"fmt"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/apierr"
	"legaldesk/internal/app/server/api/http/middleware/auth"
	"legaldesk/internal/domain/advisory"
	"legaldesk/internal/domain/delivery"
	"legaldesk/internal/domain/document"
	"legaldesk/internal/domain/draft"
	"legaldesk/internal/domain/session"
)

const sendBody = "Attached is your document."

// Editor is the buffer half of session.Controller.
type Editor interface {
	Buffer(s *session.Session) (session.Buffer, error)
	Edit(s *session.Session, content string) (session.Buffer, error)
	SetDocType(s *session.Session, category draft.Category, docType string) (session.Buffer, error)
	LoadTemplate(s *session.Session, category draft.Category, docType string) (session.Buffer, error)
}

type Handler struct {
	editor     Editor
	drafts     draft.Servicer
	renderer   document.Renderer
	sender     delivery.Sender
	advisor    advisory.Advisor
	log        *slog.Logger
	middleware huma.Middlewares
}

type Deps struct {
	Editor   Editor
	Drafts   draft.Servicer
	Renderer document.Renderer
	Sender   delivery.Sender
	// Advisor may be nil when no provider is configured.
	Advisor advisory.Advisor
}

func NewHandler(deps Deps, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		editor:     deps.Editor,
		drafts:     deps.Drafts,
		renderer:   deps.Renderer,
		sender:     deps.Sender,
		advisor:    deps.Advisor,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.catalogOp(), h.catalog)
	huma.Register(api, h.bufferOp(), h.buffer)
	huma.Register(api, h.editOp(), h.edit)
	huma.Register(api, h.templateOp(), h.template)
	huma.Register(api, h.pdfOp(), h.pdf)
	huma.Register(api, h.sendOp(), h.send)
	huma.Register(api, h.analysisOp(), h.analysis)
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) catalog(_ context.Context, _ *struct{}) (*catalogOutput, error) {
	return &catalogOutput{Body: CatalogResponse{Categories: draft.Catalog()}}, nil
}

func (h *Handler) buffer(ctx context.Context, _ *struct{}) (*bufferOutput, error) {
	s, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	buf, err := h.editor.Buffer(s)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &bufferOutput{Body: buf}, nil
}

func (h *Handler) edit(ctx context.Context, input *editInput) (*bufferOutput, error) {
	s, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	if input.Body.Category != "" {
		docType := input.Body.DocType
		if docType == "" {
			docType = draft.DefaultDocType(input.Body.Category)
		}
		if _, err := h.editor.SetDocType(s, input.Body.Category, docType); err != nil {
			return nil, apierr.From(h.log, err)
		}
	}

	buf, err := h.editor.Edit(s, input.Body.Content)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &bufferOutput{Body: buf}, nil
}

func (h *Handler) template(ctx context.Context, input *templateInput) (*bufferOutput, error) {
	s, err := h.session(ctx)
	if err != nil {
		return nil, err
	}

	buf, err := h.editor.LoadTemplate(s, input.Body.Category, input.Body.DocType)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &bufferOutput{Body: buf}, nil
}

func (h *Handler) pdf(ctx context.Context, _ *struct{}) (*pdfOutput, error) {
	buf, data, err := h.render(ctx)
	if err != nil {
		return nil, err
	}

	return &pdfOutput{
		ContentType:        "application/pdf",
		ContentDisposition: contentDisposition(buf.DocType + ".pdf"),
		Body:               data,
	}, nil
}

func (h *Handler) send(ctx context.Context, input *sendInput) (*sendOutput, error) {
	buf, data, err := h.render(ctx)
	if err != nil {
		return nil, err
	}

	ok, msg := h.sender.Send(ctx, input.Body.To, "Legal Doc: "+buf.DocType, sendBody, data, buf.DocType)
	return &sendOutput{Body: SendResponse{OK: ok, Message: msg}}, nil
}

func (h *Handler) analysis(ctx context.Context, _ *struct{}) (*analysisOutput, error) {
	s, err := h.session(ctx)
	if err != nil {
		return nil, err
	}
	if h.advisor == nil {
		return nil, huma.Error503ServiceUnavailable("AI advisory is not configured")
	}

	buf, err := h.editor.Buffer(s)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	text, err := h.advisor.Analyze(ctx, buf.Content, string(buf.Category))
	if err != nil {
		return nil, apierr.Upstream(h.log, err)
	}
	return &analysisOutput{Body: AnalysisResponse{Analysis: text}}, nil
}

func (h *Handler) save(ctx context.Context, _ *struct{}) (*saveOutput, error) {
	s, err := h.session(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.Identity()
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	buf, err := h.editor.Buffer(s)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	d, err := h.drafts.Save(ctx, id.Username, buf.Category, buf.DocType, buf.Content)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &saveOutput{Body: d}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.drafts.List(ctx, id.Username)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if items == nil {
		items = []draft.Draft{}
	}
	return &listOutput{Body: ListResponse{Drafts: items}}, nil
}

func (h *Handler) session(ctx context.Context) (*session.Session, error) {
	s, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	return s, nil
}

// render turns the current buffer into a PDF titled with its doc type.
func (h *Handler) render(ctx context.Context) (session.Buffer, []byte, error) {
	s, err := h.session(ctx)
	if err != nil {
		return session.Buffer{}, nil, err
	}

	buf, err := h.editor.Buffer(s)
	if err != nil {
		return session.Buffer{}, nil, apierr.From(h.log, err)
	}

	data, err := h.renderer.Render(buf.Content, buf.DocType)
	if err != nil {
		return session.Buffer{}, nil, apierr.From(h.log, fmt.Errorf("render pdf: %w", err))
	}
	return buf, data, nil
}

func contentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, url.PathEscape(filename))
}
