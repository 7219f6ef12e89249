package tui

// authDoneMsg carries the outcome of a login or register request.
type authDoneMsg struct {
	token string
	login string
	err   error
}

// loadDoneMsg signals that a vault load has finished.
type loadDoneMsg struct {
	err error
}

// recordSavedMsg signals that an add or edit operation has finished.
type recordSavedMsg struct {
	err error
}

// recordDeletedMsg signals that a delete operation has finished.
type recordDeletedMsg struct {
	err error
}

// navigateMsg requests a screen transition. Sent by the session guard
// through the Navigator seam, possibly from another goroutine.
type navigateMsg struct {
	target screen
}

// noticeMsg surfaces a user-visible notice from any layer.
type noticeMsg struct {
	text    string
	failure bool
}

// clearStatusMsg hides a transient status line after its display time.
type clearStatusMsg struct{}
