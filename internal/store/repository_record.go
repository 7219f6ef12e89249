package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It stores encrypted vault records in the
// "vault_records" table; every query is scoped by user_id so ownership is
// enforced at the SQL level.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser implements [VaultRepository].
func (r *vaultRepository) ListByUser(ctx context.Context, userID int64) ([]models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := listVaultRecordsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListByUser").Msg("error: select records failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.EncryptedRecord, 0)
	for rows.Next() {
		record, err := scanVaultRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// GetByID implements [VaultRepository].
func (r *vaultRepository) GetByID(ctx context.Context, userID int64, id string) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := getVaultRecordQuery(userID, id)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanVaultRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedRecord{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.GetByID").Msg("error: select record failed")
		return models.EncryptedRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// Create implements [VaultRepository].
func (r *vaultRepository) Create(ctx context.Context, userID int64, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertVaultRecordQuery(userID, id, draft)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanVaultRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Create").Msg("error: insert record failed")
		return models.EncryptedRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// Update implements [VaultRepository].
func (r *vaultRepository) Update(ctx context.Context, userID int64, id string, draft models.EncryptedDraft) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := updateVaultRecordQuery(userID, id, draft)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanVaultRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedRecord{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("error: update record failed")
		return models.EncryptedRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// Delete implements [VaultRepository].
func (r *vaultRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteVaultRecordQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Msg("error: delete record failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanVaultRecord reads one vault record row and formats the creation
// timestamp into the wire date form.
func scanVaultRecord(row rowScanner) (models.EncryptedRecord, error) {
	var record models.EncryptedRecord
	var createdAt time.Time

	err := row.Scan(&record.ID, &record.Title, &record.Username, &record.Password, &record.Notes, &createdAt)
	if err != nil {
		return models.EncryptedRecord{}, err
	}

	record.CreatedAt = createdAt.Format(models.CreatedAtLayout)
	return record, nil
}
