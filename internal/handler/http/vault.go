// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/utils"
	"github.com/MKhiriev/password-vault/models"
)

// Vault endpoints operate strictly on ciphertext. The handlers below never
// see plaintext field values; their job is ownership scoping, presence
// validation (delegated to the service) and envelope shaping.

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listRecords").Msg("no user ID in request context")
		writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	records, err := h.services.VaultService.List(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing vault records")
		writeError(w, "error listing vault records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultListResponse{Success: true, Passwords: records}, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getRecord").Msg("no user ID in request context")
		writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	record, err := h.services.VaultService.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Msg("error fetching vault record")
		writeError(w, "error fetching vault record", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultRecordResponse{Success: true, Password: &record}, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createRecord").Msg("no user ID in request context")
		writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var draft models.EncryptedDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("Invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.VaultService.Create(ctx, userID, draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error creating vault record")
		writeError(w, errorMessage(err, "error creating vault record"), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultRecordResponse{Success: true, Password: &record}, http.StatusOK)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateRecord").Msg("no user ID in request context")
		writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var draft models.EncryptedDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("Invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.VaultService.Update(ctx, userID, chi.URLParam(r, "id"), draft)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("error updating vault record")
		writeError(w, errorMessage(err, "error updating vault record"), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultRecordResponse{Success: true, Password: &record}, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteRecord").Msg("no user ID in request context")
		writeError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	if err := h.services.VaultService.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Msg("error deleting vault record")
		writeError(w, errorMessage(err, "error deleting vault record"), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "record deleted"}, http.StatusOK)
}
