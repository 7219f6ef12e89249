// Package tui implements the terminal client for the password vault.
//
// A single bubbletea model drives all screens: login/register, master key
// setup, the record list, record detail, the add/edit form, and the delete
// confirmation. All vault state lives in [vault.VaultStore]; the model only
// keeps a display snapshot of it and the transient input state of the
// active screen.
//
// The TUI also serves as the core's [vault.Navigator] and [vault.Notifier]:
// session loss detected deep inside a store operation surfaces here as a
// navigation message and a notice.
package tui
