// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/store"
	"github.com/MKhiriev/password-vault/internal/utils"
	"github.com/MKhiriev/password-vault/models"
)

// idGenerator abstracts record ID generation for tests.
type idGenerator interface {
	Generate() string
}

// vaultService is the concrete implementation of VaultService. Field values
// are opaque ciphertext by the time they reach this layer, so the only
// domain rules enforced here are presence of the required fields and record
// ownership (delegated to the repository via userID scoping).
type vaultService struct {
	vaultRepository store.VaultRepository
	ids             idGenerator
	logger          *logger.Logger
}

// NewVaultService constructs a VaultService over the given repository.
// Record IDs are generated server-side as UUIDv7 so creation order is
// roughly reflected in the identifiers.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// List returns the user's full encrypted collection, newest first.
func (s *vaultService) List(ctx context.Context, userID int64) ([]models.EncryptedRecord, error) {
	records, err := s.vaultRepository.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("listing vault records failed")
		return nil, fmt.Errorf("listing vault records failed: %w", err)
	}

	return records, nil
}

// Get returns one record by ID. Returns ErrNoRecordID on an empty ID or a
// wrapped store.ErrRecordNotFound when the record does not exist or belongs
// to another user.
func (s *vaultService) Get(ctx context.Context, userID int64, id string) (models.EncryptedRecord, error) {
	if id == "" {
		return models.EncryptedRecord{}, ErrNoRecordID
	}

	record, err := s.vaultRepository.GetByID(ctx, userID, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Str("id", id).Msg("fetching vault record failed")
		return models.EncryptedRecord{}, fmt.Errorf("fetching vault record failed: %w", err)
	}

	return record, nil
}

// Create validates the draft, assigns a fresh record ID and persists the
// record. Returns the stored record with its server-assigned ID and
// CreatedAt, or ErrEmptyRequiredFields when title, username or password is
// missing.
func (s *vaultService) Create(ctx context.Context, userID int64, draft models.EncryptedDraft) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	if err := validateDraft(draft); err != nil {
		log.Error().Int64("userID", userID).Msg("create request with missing required fields")
		return models.EncryptedRecord{}, err
	}

	record, err := s.vaultRepository.Create(ctx, userID, s.ids.Generate(), draft)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("creating vault record failed")
		return models.EncryptedRecord{}, fmt.Errorf("creating vault record failed: %w", err)
	}

	return record, nil
}

// Update validates the draft and replaces the mutable fields of the record
// with the given ID. CreatedAt is preserved by the repository.
//
// Returns ErrEmptyRequiredFields on a bad draft, ErrNoRecordID on an empty
// ID, or a wrapped store.ErrRecordNotFound when the record does not exist or
// belongs to another user.
func (s *vaultService) Update(ctx context.Context, userID int64, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.EncryptedRecord{}, ErrNoRecordID
	}
	if err := validateDraft(draft); err != nil {
		log.Error().Int64("userID", userID).Str("id", id).Msg("update request with missing required fields")
		return models.EncryptedRecord{}, err
	}

	record, err := s.vaultRepository.Update(ctx, userID, id, draft)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("id", id).Msg("updating vault record failed")
		return models.EncryptedRecord{}, fmt.Errorf("updating vault record failed: %w", err)
	}

	return record, nil
}

// Delete removes the record with the given ID. Returns ErrNoRecordID on an
// empty ID or a wrapped store.ErrRecordNotFound when nothing was deleted.
func (s *vaultService) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrNoRecordID
	}

	if err := s.vaultRepository.Delete(ctx, userID, id); err != nil {
		log.Err(err).Int64("userID", userID).Str("id", id).Msg("deleting vault record failed")
		return fmt.Errorf("deleting vault record failed: %w", err)
	}

	return nil
}

// validateDraft enforces presence of the required fields. Notes stays
// optional. Values are ciphertext, so presence is the only thing that can be
// checked here.
func validateDraft(draft models.EncryptedDraft) error {
	if draft.Title == "" || draft.Username == "" || draft.Password == "" {
		return ErrEmptyRequiredFields
	}

	return nil
}
