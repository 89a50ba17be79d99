// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice errors
	CodeDiceEmptyName         Code = "DICE_EMPTY_NAME"
	CodeDiceInvalidFaces      Code = "DICE_INVALID_FACES"
	CodeDiceUnknownCode       Code = "DICE_UNKNOWN_CODE"
	CodeDiceDuplicate         Code = "DICE_DUPLICATE"
	CodeDiceSelectionTooSmall Code = "DICE_SELECTION_TOO_SMALL"
	CodeDiceInvalidRollCount  Code = "DICE_INVALID_ROLL_COUNT"

	// Contest errors
	CodeContestInvalidSamples Code = "CONTEST_INVALID_SAMPLES"
	CodeContestInvalidRolls   Code = "CONTEST_INVALID_ROLLS"
	CodeContestMissingSource  Code = "CONTEST_MISSING_SOURCE"

	// Tournament errors
	CodeTournamentInvalidRange Code = "TOURNAMENT_INVALID_RANGE"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"

	// Command configuration errors
	CodeConfigInvalidWorkers Code = "CONFIG_INVALID_WORKERS"
)

// Kind groups codes by how a caller should react to them.
type Kind int

const (
	// KindUnknown is returned for codes with no classification.
	KindUnknown Kind = iota
	// KindConfiguration errors are deterministic given the input and abort
	// the run before any simulation starts.
	KindConfiguration
	// KindSimulation errors are raised while a run is in progress.
	KindSimulation
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindSimulation:
		return "simulation"
	default:
		return "unknown"
	}
}

// Kind maps domain codes to their error kind.
func (c Code) Kind() Kind {
	switch c {
	case CodeDiceEmptyName,
		CodeDiceInvalidFaces,
		CodeDiceUnknownCode,
		CodeDiceDuplicate,
		CodeDiceSelectionTooSmall,
		CodeDiceInvalidRollCount,
		CodeContestInvalidSamples,
		CodeContestInvalidRolls,
		CodeContestMissingSource,
		CodeTournamentInvalidRange,
		CodeConfigInvalidWorkers:
		return KindConfiguration

	case CodeSeedUnavailable:
		return KindSimulation

	default:
		return KindUnknown
	}
}
