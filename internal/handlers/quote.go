package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/diewo77/go-quotes/auth"
	"github.com/diewo77/go-quotes/httpx"
	"github.com/diewo77/go-quotes/internal/export"
	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/internal/pdf"
	"github.com/diewo77/go-quotes/internal/quoting"
	"github.com/diewo77/go-quotes/internal/services"
)

// QuoteHandler exposes the quote service as a JSON API.
type QuoteHandler struct {
	svc      *services.QuoteService
	renderer *pdf.Renderer
	now      func() time.Time
}

func NewQuoteHandler(svc *services.QuoteService, renderer *pdf.Renderer) *QuoteHandler {
	return &QuoteHandler{svc: svc, renderer: renderer, now: time.Now}
}

type quoteDetail struct {
	Quote        *models.Quote         `json:"quote"`
	Breakdown    []quoting.TaskGroup   `json:"breakdown"`
	Deliverables []quoting.Deliverable `json:"deliverables"`
}

type suggestionRequest struct {
	ProjectDescription string `json:"project_description"`
	Industry           string `json:"industry"`
}

type updateTasksRequest struct {
	Tasks map[uint]quoting.TaskUpdate `json:"tasks"`
}

func (h *QuoteHandler) detail(q *models.Quote) quoteDetail {
	return quoteDetail{Quote: q, Breakdown: h.svc.TasksBreakdown(q), Deliverables: h.svc.Deliverables(q)}
}

func (h *QuoteHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.WebsiteTypesWithFeatures(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"website_types": types})
}

func (h *QuoteHandler) Industries(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"industries": h.svc.Industries()})
}

func (h *QuoteHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	suggestions, err := h.svc.SuggestedFeatures(r.Context(), req.ProjectDescription, req.Industry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []quoting.Suggestion{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	quotes, err := h.svc.ListQuotes(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"quotes": quotes})
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateQuoteInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	in.OwnerID, _ = auth.UserIDFromContext(r.Context())

	q, err := h.svc.CreateQuote(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, h.detail(q))
}

func (h *QuoteHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	userID, _ := auth.UserIDFromContext(r.Context())
	q, err := h.svc.GetQuote(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.detail(q))
}

func (h *QuoteHandler) UpdateTasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateTasksRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	userID, _ := auth.UserIDFromContext(r.Context())
	q, err := h.svc.UpdateQuoteTasks(r.Context(), id, userID, req.Tasks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.detail(q))
}

func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	userID, _ := auth.UserIDFromContext(r.Context())
	if err := h.svc.DeleteQuote(r.Context(), id, userID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *QuoteHandler) PDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.document(w, r)
	if !ok {
		return
	}
	body, err := h.renderer.Render(doc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Attachment(w, pdf.ContentType, doc.FileName("pdf"), body)
}

func (h *QuoteHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.document(w, r)
	if !ok {
		return
	}
	body, err := export.Workbook(doc)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.Attachment(w, export.ContentType, doc.FileName("xlsx"), body)
}

func (h *QuoteHandler) document(w http.ResponseWriter, r *http.Request) (*services.QuoteDocument, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}
	userID, _ := auth.UserIDFromContext(r.Context())
	doc, err := h.svc.Document(r.Context(), id, userID, h.now())
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return doc, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(w, r, &quoting.NotFoundError{Resource: "quote"})
		return 0, false
	}
	return uint(id), true
}
