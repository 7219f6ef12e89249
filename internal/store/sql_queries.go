package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/password-vault/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

// psql is the shared statement builder configured for PostgreSQL positional
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var vaultRecordColumns = []string{"id", "title", "username", "password", "notes", "created_at"}

func listVaultRecordsQuery(userID int64) (string, []any, error) {
	return psql.
		Select(vaultRecordColumns...).
		From("vault_records").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func getVaultRecordQuery(userID int64, id string) (string, []any, error) {
	return psql.
		Select(vaultRecordColumns...).
		From("vault_records").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func insertVaultRecordQuery(userID int64, id string, draft models.EncryptedDraft) (string, []any, error) {
	return psql.
		Insert("vault_records").
		Columns("id", "user_id", "title", "username", "password", "notes").
		Values(id, userID, string(draft.Title), string(draft.Username), string(draft.Password), string(draft.Notes)).
		Suffix("RETURNING id, title, username, password, notes, created_at").
		ToSql()
}

func updateVaultRecordQuery(userID int64, id string, draft models.EncryptedDraft) (string, []any, error) {
	return psql.
		Update("vault_records").
		Set("title", string(draft.Title)).
		Set("username", string(draft.Username)).
		Set("password", string(draft.Password)).
		Set("notes", string(draft.Notes)).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, title, username, password, notes, created_at").
		ToSql()
}

func deleteVaultRecordQuery(userID int64, id string) (string, []any, error) {
	return psql.
		Delete("vault_records").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}
