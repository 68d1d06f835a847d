package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/startpage/internal/dto"
	"github.com/GregMSThompson/startpage/internal/response"
	"github.com/GregMSThompson/startpage/pkg/logger"
)

type systemService interface {
	AddSystem(ctx context.Context, req dto.SystemRequest) (dto.Result, error)
	UpdateSystem(ctx context.Context, ref string, req dto.SystemRequest) (dto.Result, error)
	DeleteSystem(ctx context.Context, ref string) (dto.Result, error)
	MoveSystem(ctx context.Context, ref, direction string) (dto.Result, error)
}

type systemHandlers struct {
	ResponseHandler response.ResponseHandler
	SystemSvc       systemService
	maxUploadBytes  int64
}

func NewSystemHandlers(deps *Deps) *systemHandlers {
	return &systemHandlers{
		ResponseHandler: deps.ResponseHandler,
		SystemSvc:       deps.SystemSvc,
		maxUploadBytes:  deps.maxUploadBytes(),
	}
}

// SystemRoutes is mounted under /admin.
func (h *systemHandlers) SystemRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/add", h.AddSystem)
	r.Post("/update/{ref}", h.UpdateSystem)
	r.Post("/delete/{ref}", h.DeleteSystem)
	r.Post("/move/{ref}/{direction}", h.MoveSystem)
	return r
}

func (h *systemHandlers) AddSystem(w http.ResponseWriter, r *http.Request) {
	req, closeUpload, ok := h.readSystemForm(w, r)
	if !ok {
		h.ResponseHandler.Redirect(w, r, adminPath)
		return
	}
	defer closeUpload()

	res, err := h.SystemSvc.AddSystem(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "add_system", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}

func (h *systemHandlers) UpdateSystem(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	req, closeUpload, ok := h.readSystemForm(w, r)
	if !ok {
		h.ResponseHandler.Redirect(w, r, adminPath)
		return
	}
	defer closeUpload()

	res, err := h.SystemSvc.UpdateSystem(r.Context(), ref, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "update_system", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}

func (h *systemHandlers) DeleteSystem(w http.ResponseWriter, r *http.Request) {
	res, err := h.SystemSvc.DeleteSystem(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "delete_system", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}

func (h *systemHandlers) MoveSystem(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	direction := chi.URLParam(r, "direction")
	res, err := h.SystemSvc.MoveSystem(r.Context(), ref, direction)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logResult(r, "move_system", res)
	h.ResponseHandler.Redirect(w, r, adminPath)
}

// readSystemForm parses the system form. The returned func closes the
// uploaded file, if any; ok is false when the body could not be parsed.
func (h *systemHandlers) readSystemForm(w http.ResponseWriter, r *http.Request) (dto.SystemRequest, func(), bool) {
	noop := func() {}
	if err := parseForm(w, r, h.maxUploadBytes); err != nil {
		logger.FromContext(r.Context()).Warn("unreadable system form", "error", err)
		return dto.SystemRequest{}, noop, false
	}

	req := dto.SystemRequest{
		Name:          r.PostFormValue("name"),
		BackColor:     r.PostFormValue("back_color"),
		FrontColor:    r.PostFormValue("front_color"),
		ImageMode:     r.PostFormValue("image_mode"),
		ImageSize:     r.PostFormValue("image_size"),
		LinkTexts:     r.PostForm["link_text[]"],
		LinkURLs:      r.PostForm["link_url[]"],
		AssignedPages: r.PostForm["assigned_pages[]"],
		Image: dto.ImageInput{
			Pasted: r.PostFormValue("pasted_image"),
			Preset: r.PostFormValue("preset_image"),
		},
	}

	file, header, err := r.FormFile("image_file")
	switch {
	case err == nil:
		req.Image.Upload = &dto.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
		return req, func() { _ = file.Close() }, true
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return req, noop, true
	default:
		logger.FromContext(r.Context()).Warn("unreadable image upload", "error", err)
		return req, noop, true
	}
}
