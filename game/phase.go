package game

// Phase is the coarse state of a game.
type Phase int

const (
	StartMenu Phase = iota
	InProgress
	GameOver
)

func (p Phase) String() string {
	switch p {
	case StartMenu:
		return "StartMenu"
	case InProgress:
		return "InProgress"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Result is how a single turn ended.
type Result int

const (
	Undecided Result = iota // Both players survived the turn
	Lost                    // Player rolled 1
	Won                     // Opponent rolled 1
)

func (r Result) String() string {
	switch r {
	case Undecided:
		return "undecided"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// TurnOutcome reports one call to Engine.Roll.
type TurnOutcome struct {
	Lines        []string // History lines appended by this turn
	PlayerRoll   int64
	OpponentRoll int64 // 0 if the player lost before the opponent rolled
	Result       Result
	Phase        Phase // Phase after the turn
}
