package game

// Dice draws the next roll of a deathroll. Roll returns a value in
// [1, upper) when upper > 1 and exactly 1 otherwise.
type Dice interface {
	Roll(upper int64) int64
}

// History lines, rendered verbatim by the shell
const (
	startedLine  = "Game started with a roll of %d"
	rolledLine   = "You rolled %d"
	opponentLine = "Opponent rolled %d"
	lostLine     = "You lost the game!"
	wonLine      = "You won the game!"
)
