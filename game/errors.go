package game

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrWrongPhase is returned when an action is not allowed in the current phase.
var ErrWrongPhase = errors.New("action not allowed in current phase")

// InvalidInputMessage is shown while the starting value does not validate.
const InvalidInputMessage = "Invalid input. Please enter a valid number."

// ValidationError rejects a starting value that is not a positive integer.
type ValidationError struct {
	Input string
	err   error
}

func (e *ValidationError) Error() string {
	return InvalidInputMessage
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// ParseStart parses the starting upper bound of a game.
func ParseStart(input string) (int64, error) {
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, &ValidationError{Input: input, err: errors.Wrapf(err, "parse starting value %q", input)}
	}
	if n <= 0 {
		return 0, &ValidationError{Input: input, err: errors.Errorf("starting value %d is not positive", n)}
	}
	return n, nil
}
