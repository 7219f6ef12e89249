// Package vault implements the client-side core of password-vault: the
// field-level encryption and vault-synchronization layer.
//
// Every sensitive field of a record is encrypted by [FieldCipher] before it
// leaves the process and decrypted by it after retrieval; [RecordCodec]
// applies the cipher across whole records. [Guard] gates every operation on
// the presence of a session (bearer token + secret key) and centralises the
// reaction to authorization loss. [SyncClient] performs the four remote
// operations against the persistence service, and [VaultStore] keeps the
// in-memory plaintext collection consistent with the server across
// create/read/update/delete, session loss, and cancelled loads.
//
// The server never observes plaintext: the trust boundary of the whole
// application runs between RecordCodec and SyncClient.
package vault
