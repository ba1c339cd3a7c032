package game

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithDice replaces the standard dice, e.g. with a scripted sequence in tests.
func WithDice(dice Dice) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

// Engine holds the state of one deathroll session. It is owned by a single
// caller and is not safe for concurrent use.
type Engine struct {
	phase      Phase
	upperBound int64    // Exclusive ceiling of the next draw
	history    []string // Append-only until Restart
	dice       Dice
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{
		phase: StartMenu,
	}
	for _, option := range options {
		option(e)
	}
	if e.dice == nil {
		e.dice = NewRoller()
	}
	return e
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) UpperBound() int64 {
	return e.upperBound
}

// History returns a copy of the log in insertion order.
func (e *Engine) History() []string {
	history := make([]string, len(e.history))
	copy(history, e.history)
	return history
}

// Start begins a game with the upper bound parsed from input.
func (e *Engine) Start(input string) error {
	if e.phase != StartMenu {
		return errors.Wrapf(ErrWrongPhase, "start in %s", e.phase)
	}
	n, err := ParseStart(input)
	if err != nil {
		log.Debug().Str("input", input).Msg("rejected starting value")
		return err
	}

	e.upperBound = n
	e.record(fmt.Sprintf(startedLine, n))
	e.phase = InProgress

	log.Debug().Int64("upper_bound", n).Stringer("phase", e.phase).Msg("game started")
	return nil
}

// Roll plays one turn: the player draws, then the opponent if the player survived.
// Outside of InProgress nothing is drawn and the outcome carries no lines.
func (e *Engine) Roll() TurnOutcome {
	if e.phase != InProgress {
		return TurnOutcome{Phase: e.phase}
	}
	before := len(e.history)
	outcome := TurnOutcome{}

	outcome.PlayerRoll = e.draw()
	e.record(fmt.Sprintf(rolledLine, outcome.PlayerRoll))
	if outcome.PlayerRoll == 1 {
		e.record(lostLine)
		e.phase = GameOver
		outcome.Result = Lost
	} else {
		outcome.OpponentRoll = e.draw()
		e.record(fmt.Sprintf(opponentLine, outcome.OpponentRoll))
		if outcome.OpponentRoll == 1 {
			e.record(wonLine)
			e.phase = GameOver
			outcome.Result = Won
		}
	}

	outcome.Lines = e.History()[before:]
	outcome.Phase = e.phase

	log.Debug().
		Int64("player_roll", outcome.PlayerRoll).
		Int64("opponent_roll", outcome.OpponentRoll).
		Int64("upper_bound", e.upperBound).
		Stringer("result", outcome.Result).
		Msg("turn played")
	return outcome
}

// Restart returns to the start menu and clears the history.
func (e *Engine) Restart() {
	e.history = e.history[:0]
	e.phase = StartMenu
	log.Debug().Msg("game restarted")
}

func (e *Engine) draw() int64 {
	e.upperBound = e.dice.Roll(e.upperBound)
	return e.upperBound
}

func (e *Engine) record(line string) {
	e.history = append(e.history, line)
}
