// meta/meta.go
package meta

// DICE_TYPE is the display name of the dice used when none is configured.
const DICE_TYPE = "FourBinary"

// GO_ROUTINES defines the number of goroutines that roll in parallel.
const GO_ROUTINES = 8

// ROLLS defines the number of rolls made by a dice experiment.
const ROLLS = 100000

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/dice"
