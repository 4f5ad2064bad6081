package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/paybysquare"
	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/core/render"
	"github.com/dmitrymomot/paybysquare/core/response"
	"github.com/dmitrymomot/paybysquare/middleware"
)

// Size bounds for the size parameter. Out of range values are clamped.
const (
	MinSize = 100
	MaxSize = 1000
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// DueDateLayout is the format of the due parameter.
const DueDateLayout = "2006-01-02"

// PNGCacheControl is sent with PNG and SVG responses.
const PNGCacheControl = "public, max-age=3600"

// QRResponse is the body of a format=json request.
type QRResponse struct {
	Payload string `json:"payload"`
	DataURI string `json:"data_uri"`
	Size    int    `json:"size"`
	Style   string `json:"style"`
	Key     string `json:"key,omitempty"`
	URL     string `json:"url,omitempty"`
}

type qrRequest struct {
	instruction payment.Instruction
	size        int
	style       render.Style
	format      string
	store       bool
}

func (app *App) handleQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := app.parseQRRequest(r)
	if err != nil {
		_ = response.Error(w, err)
		return
	}

	gen := app.generator

	if req.format == FormatSVG {
		svg, err := gen.SVG(ctx, req.instruction, svgModuleSize(req.size))
		if err != nil {
			app.fail(w, r, err)
			return
		}
		w.Header().Set("Cache-Control", PNGCacheControl)
		_ = response.Bytes(w, http.StatusOK, "image/svg+xml", svg)
		return
	}

	text, err := gen.Encode(ctx, req.instruction)
	if err != nil {
		app.fail(w, r, err)
		return
	}
	png, err := gen.Render(ctx, text, req.size, req.style)
	if err != nil {
		app.fail(w, r, err)
		return
	}

	if req.format == FormatPNG {
		w.Header().Set("Cache-Control", PNGCacheControl)
		_ = response.Bytes(w, http.StatusOK, paybysquare.PNGContentType, png)
		return
	}

	body := QRResponse{
		Payload: text,
		DataURI: paybysquare.DataURI(png),
		Size:    req.size,
		Style:   req.style.String(),
	}
	if req.store {
		obj, err := gen.Put(ctx, "", png)
		if err != nil {
			app.fail(w, r, err)
			return
		}
		body.Key = obj.Key
		body.URL = obj.URL
	}
	_ = response.JSON(w, http.StatusOK, body)
}

// parseQRRequest reads query and form parameters. Malformed values yield
// ErrBadRequest; rule violations are left to validation.
func (app *App) parseQRRequest(r *http.Request) (qrRequest, error) {
	if err := r.ParseForm(); err != nil {
		return qrRequest{}, badRequest("malformed form data")
	}

	req := qrRequest{
		size:   app.generator.DefaultSize(),
		format: FormatPNG,
	}

	opts := []payment.Option{
		payment.WithIBAN(r.FormValue("iban")),
		payment.WithSWIFT(r.FormValue("swift")),
		payment.WithCurrency(r.FormValue("currency")),
		payment.WithVariableSymbol(r.FormValue("vs")),
		payment.WithSpecificSymbol(r.FormValue("ss")),
		payment.WithConstantSymbol(r.FormValue("cs")),
		payment.WithNote(r.FormValue("note")),
		payment.WithRecipient(r.FormValue("recipient")),
	}

	if s := strings.TrimSpace(r.FormValue("amount")); s != "" {
		amount, err := payment.ParseAmount(s)
		if err != nil {
			return qrRequest{}, badRequest(fmt.Sprintf("invalid amount %q", s))
		}
		opts = append(opts, payment.WithAmountCents(amount.Cents()))
	}

	if s := strings.TrimSpace(r.FormValue("due")); s != "" {
		due, err := time.Parse(DueDateLayout, s)
		if err != nil {
			return qrRequest{}, badRequest(fmt.Sprintf("invalid due date %q, expected YYYY-MM-DD", s))
		}
		opts = append(opts, payment.WithDueDate(due))
	}

	if s := strings.TrimSpace(r.FormValue("size")); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			return qrRequest{}, badRequest(fmt.Sprintf("invalid size %q", s))
		}
		req.size = size
	}
	req.size = clampSize(req.size)

	style, err := app.generator.ParseStyle(strings.TrimSpace(r.FormValue("style")))
	if err != nil {
		return qrRequest{}, badRequest(fmt.Sprintf("unknown style %q", r.FormValue("style")))
	}
	req.style = style

	if s := strings.ToLower(strings.TrimSpace(r.FormValue("format"))); s != "" {
		switch s {
		case FormatPNG, FormatJSON, FormatSVG:
			req.format = s
		default:
			return qrRequest{}, badRequest(fmt.Sprintf("unknown format %q", s))
		}
	}

	if s := strings.TrimSpace(r.FormValue("store")); s != "" {
		store, err := strconv.ParseBool(s)
		if err != nil {
			return qrRequest{}, badRequest(fmt.Sprintf("invalid store flag %q", s))
		}
		if store && req.format != FormatJSON {
			return qrRequest{}, badRequest("store requires format=json")
		}
		if store && !app.generator.HasStorage() {
			return qrRequest{}, badRequest("storage is not configured")
		}
		req.store = store
	}

	req.instruction = payment.New(opts...)
	return req, nil
}

// fail writes 422 with localized messages for validation errors and a
// generic 500 for everything else. The cause of a 500 is logged.
func (app *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *payment.ValidationError
	if errors.As(err, &verr) {
		lang := app.catalog.Match(r.Header.Get("Accept-Language"))
		_ = response.Error(w, response.ErrUnprocessableEntity.WithDetails(map[string]any{
			"errors": verr.Localize(app.catalog, lang),
		}))
		return
	}

	requestID, _ := middleware.GetRequestID(r.Context())
	app.logger.ErrorContext(r.Context(), "qr generation failed",
		logger.RequestID(requestID),
		logger.Error(err),
	)
	_ = response.Error(w, response.ErrInternalServerError)
}

func badRequest(msg string) error {
	return response.ErrBadRequest.WithMessage(msg)
}

func clampSize(size int) int {
	return min(max(size, MinSize), MaxSize)
}

// svgModuleSize picks a module size so the SVG is roughly size px wide for
// a typical 45 module symbol with quiet zone.
func svgModuleSize(size int) int {
	return max(1, size/53)
}
