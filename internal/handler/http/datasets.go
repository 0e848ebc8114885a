package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/utils"
	"github.com/mkarev/go-dataset-hub/models"
)

// listDatasets returns every dataset visible to the caller, scoped by the
// full membership list. All other dataset handlers scope by the single
// working group instead.
func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	datasets, err := h.services.DatasetService.List(ctx, user.UserGroups)
	if err != nil {
		log.Err(err).Msg("listing datasets failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, datasets, http.StatusOK)
}

func (h *Handler) getDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")
	dataset, err := h.services.DatasetService.FindByName(ctx, name, user.CurrentGroup())
	if err != nil {
		log.Err(err).Str("dataset", name).Msg("dataset lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, dataset, http.StatusOK)
}

func (h *Handler) updateDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.DatasetUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	name := chi.URLParam(r, "name")
	dataset, err := h.services.DatasetService.Update(ctx, name, update, user.CurrentGroup())
	if err != nil {
		log.Err(err).Str("dataset", name).Msg("dataset update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, dataset, http.StatusOK)
}

func (h *Handler) deleteDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.services.DatasetService.Delete(ctx, name, user.CurrentGroup()); err != nil {
		log.Err(err).Str("dataset", name).Msg("dataset deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) closeDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.services.DatasetService.CloseDataset(ctx, name, user.CurrentGroup()); err != nil {
		log.Err(err).Str("dataset", name).Msg("closing dataset failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) openDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.services.DatasetService.OpenDataset(ctx, name, user.CurrentGroup()); err != nil {
		log.Err(err).Str("dataset", name).Msg("opening dataset failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
