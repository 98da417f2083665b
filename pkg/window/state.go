package window

// AppState is the coarse application state the close handler consults.
type AppState int

const (
	StateIntro AppState = iota
	StateLoading
	StateModal
	StateMainMenu
	StateGameMenu
	StatePlay
)

// String returns the string representation of an AppState.
func (s AppState) String() string {
	switch s {
	case StateIntro:
		return "INTRO"
	case StateLoading:
		return "LOADING"
	case StateModal:
		return "MODAL"
	case StateMainMenu:
		return "MAIN_MENU"
	case StateGameMenu:
		return "GAME_MENU"
	case StatePlay:
		return "PLAY"
	default:
		return "Unknown"
	}
}

// shouldConfirmClose decides whether a close request pops the
// confirmation overlay. While a modal dialog or the loading screen is
// up, and during the intro when one is configured, the close request is
// honored immediately.
func shouldConfirmClose(confirmConfigured bool, state AppState, introEnabled bool) bool {
	if !confirmConfigured {
		return false
	}
	switch state {
	case StateModal, StateLoading:
		return false
	case StateIntro:
		return !introEnabled
	}
	return true
}
