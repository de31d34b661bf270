package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-richparams/internal/logx"
	"github.com/goliatone/go-richparams/internal/metrics"
	"github.com/goliatone/go-richparams/pkg/input"
	"github.com/goliatone/go-richparams/pkg/orchestrator"
	"github.com/goliatone/go-richparams/pkg/render"
	"github.com/goliatone/go-richparams/pkg/renderers/vanilla"
	"github.com/goliatone/go-richparams/pkg/submission"
)

// TemplateIDField is the hidden form field carrying the template id.
const TemplateIDField = "template_id"

const (
	messageNotNumeric = "only numeric input is accepted"
	messageNotOffered = "value is not one of the offered options"
	messageDisabled   = "field is read-only"
)

// Option configures the console handler.
type Option func(*Handler)

// WithOrchestrator replaces the render pipeline.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(h *Handler) {
		if o != nil {
			h.orchestrator = o
		}
	}
}

// WithGatherer selects the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(h *Handler) {
		if g != nil {
			h.gatherer = g
		}
	}
}

// WithReadOnly renders every form disabled and refuses edits.
func WithReadOnly(readOnly bool) Option {
	return func(h *Handler) {
		h.readOnly = readOnly
	}
}

// WithShowOptions renders reset-to-default actions.
func WithShowOptions(show bool) Option {
	return func(h *Handler) {
		h.showOptions = show
	}
}

// WithHiddenFields adds hidden inputs (a CSRF token for instance) to every
// rendered form.
func WithHiddenFields(fields ...render.HiddenField) Option {
	return func(h *Handler) {
		h.hidden = append(h.hidden, fields...)
	}
}

// WithAllowedOrigins enables CORS for the given origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Handler) {
		h.allowedOrigins = append(h.allowedOrigins, origins...)
	}
}

// Handler serves the variables form for the templates of a Catalog.
type Handler struct {
	catalog      *Catalog
	orchestrator *orchestrator.Orchestrator
	gatherer     prometheus.Gatherer
	readOnly     bool
	showOptions  bool
	hidden       []render.HiddenField
	router       chi.Router

	allowedOrigins []string
}

// New constructs the console handler.
func New(catalog *Catalog, options ...Option) *Handler {
	if catalog == nil {
		catalog = NewCatalog()
	}
	h := &Handler{catalog: catalog, gatherer: prometheus.DefaultGatherer}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	if h.orchestrator == nil {
		h.orchestrator = orchestrator.New(orchestrator.WithDefaultRenderer(vanilla.Name))
	}

	r := chi.NewRouter()
	if len(h.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))
	}
	r.Use(middlewareChain()...)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	r.Get("/templates", h.listTemplates)
	r.Route("/templates/{templateID}/variables", func(r chi.Router) {
		r.Get("/", h.renderVariables)
		r.Post("/", h.submitVariables)
	})
	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	ids := h.catalog.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": out})
}

func (h *Handler) renderVariables(w http.ResponseWriter, r *http.Request) {
	id, ok := h.templateID(w, r)
	if !ok {
		return
	}
	h.writeForm(w, r, id, http.StatusOK, nil, nil)
}

func (h *Handler) submitVariables(w http.ResponseWriter, r *http.Request) {
	id, ok := h.templateID(w, r)
	if !ok {
		return
	}
	variables, _ := h.catalog.Get(id)

	if err := r.ParseForm(); err != nil {
		metrics.RecordSubmission(metrics.OutcomeRejected)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed form: %v", err))
		return
	}
	if posted := r.PostForm.Get(TemplateIDField); posted != "" && posted != id.String() {
		metrics.RecordSubmission(metrics.OutcomeRejected)
		writeError(w, http.StatusBadRequest, "template id does not match the url")
		return
	}

	session, err := submission.NewSession(id, variables,
		submission.WithReadOnly(h.readOnly),
		submission.WithObserver(func(name, value string) {
			metrics.RecordEdit()
			logx.Log.Debug().Str("template_id", id.String()).Str("variable", name).Msg("variable edited")
		}),
	)
	if err != nil {
		metrics.RecordSubmission(metrics.OutcomeRejected)
		logx.Log.Error().Err(err).Str("template_id", id.String()).Msg("build session")
		writeError(w, http.StatusInternalServerError, "template variables are malformed")
		return
	}

	fieldErrors := map[string][]string{}
	submitted := map[string]string{}
	for _, field := range session.Fields() {
		name := field.Name()
		if _, present := r.PostForm[name]; !present {
			continue
		}
		value := r.PostForm.Get(name)
		submitted[name] = value
		if field.Disabled() && value == field.Value() {
			continue
		}
		if err := session.Set(name, value); err != nil {
			fieldErrors[name] = append(fieldErrors[name], rejectionMessage(field))
		}
	}

	var validation *submission.ValidationError
	if err := session.Validate(); errors.As(err, &validation) {
		for name, messages := range validation.Fields() {
			if _, rejected := fieldErrors[name]; rejected {
				continue
			}
			fieldErrors[name] = messages
		}
	}

	if len(fieldErrors) > 0 {
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		if wantsHTML(r) {
			h.writeForm(w, r, id, http.StatusUnprocessableEntity, submitted, fieldErrors)
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors})
		return
	}

	req := session.Request()
	if err := submission.ValidateContract(req); err != nil {
		metrics.RecordSubmission(metrics.OutcomeRejected)
		logx.Log.Error().Err(err).Str("template_id", id.String()).Msg("payload does not match contract")
		writeError(w, http.StatusInternalServerError, "payload does not match the backend contract")
		return
	}

	metrics.RecordSubmission(metrics.OutcomeAccepted)
	writeJSON(w, http.StatusOK, req)
}

// templateID parses the url id and checks the catalog. It writes the error
// response and reports false when the request cannot continue.
func (h *Handler) templateID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "templateID")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid template id %q", raw))
		return uuid.Nil, false
	}
	if _, ok := h.catalog.Get(id); !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("template %s not found", id))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeForm(w http.ResponseWriter, r *http.Request, id uuid.UUID, status int, values map[string]string, fieldErrors map[string][]string) {
	variables, _ := h.catalog.Get(id)
	hidden := render.MergeHiddenFields(nil, h.hidden...)
	hidden = render.MergeHiddenFields(hidden, render.Hidden(TemplateIDField, id.String()))

	out, err := h.orchestrator.Generate(r.Context(), orchestrator.Request{
		Parameters: variables,
		Form: render.Form{
			ID:     "template-variables",
			Title:  "Template variables",
			Action: "/templates/" + id.String() + "/variables",
			Method: http.MethodPost,
		},
		Renderer: vanilla.Name,
		RenderOptions: render.RenderOptions{
			Values:       values,
			Errors:       fieldErrors,
			ReadOnly:     h.readOnly,
			ShowOptions:  h.showOptions,
			HiddenFields: hidden,
		},
	})
	if err != nil {
		metrics.RecordRender(vanilla.Name, false)
		logx.Log.Error().Err(err).Str("template_id", id.String()).Msg("render variables form")
		writeError(w, http.StatusInternalServerError, "failed to render form")
		return
	}
	metrics.RecordRender(vanilla.Name, true)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		logx.Log.Error().Err(err).Msg("write form")
	}
}

func rejectionMessage(field *input.Field) string {
	switch {
	case field.Disabled():
		return messageDisabled
	case field.Variant().IsChoice():
		return messageNotOffered
	default:
		return messageNotNumeric
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logx.Log.Error().Err(err).Msg("write json")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
