package pipeline

import (
	"errors"

	"github.com/inodb/vibe-dna/internal/sequence"
)

// InvalidSequenceMessage is shown when the input is not a valid DNA sequence.
const InvalidSequenceMessage = "The DNA sequence contains invalid characters. Make sure it only contains A, T, C and G."

// ErrorMessage converts a pipeline error into text for the user.
func ErrorMessage(err error) string {
	var invalid *sequence.InvalidSequenceError
	if errors.As(err, &invalid) {
		return InvalidSequenceMessage + " (" + invalid.Error() + ")"
	}
	return "Could not render the charts: " + err.Error()
}
