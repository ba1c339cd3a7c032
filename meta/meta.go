// meta/meta.go
package meta

// Name is shown as the game heading and the CLI name.
const Name = "Deathroll Game"

// Version of the CLI.
const Version = "0.1.0"

// Screen text
const (
	GameOverHeading = "Game Over"
	StartPrompt     = "Enter starting value and press Enter to start the game."
	RollPrompt      = "Press Enter to roll the dice."
	RestartPrompt   = "Press Enter to restart the game."
	HistoryLabel    = "Game History:"
	StartHelp       = "enter: start • esc: quit"
	PlayHelp        = "enter: continue • q: quit"
)
