package window

// Controller is the application-side contract the window manager calls
// into. It is implemented elsewhere (game logic, save/profile
// subsystem); the manager itself only uses Exit on the close path, the
// remaining operations are exposed to scenes and input bindings.
type Controller interface {
	StartNewGame()
	GotoMainMenu()
	GotoGameMenu()
	GotoPlay()

	SaveGame() bool
	LoadGame() bool
	LoadGameFromLastSave() bool

	SaveProfile()
	LoadFromProfile()
	RestoreDefaultProfileSettings()
	ProfileName() string

	SaveScreenshot() bool
	FixAspectRatio()

	Exit()
}
