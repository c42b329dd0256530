// Log command group.
package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and edit bowl tastings",
}

func init() {
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logEditCmd)
}

// Entry-form restrictions: rating 1-5 in half steps, tasting options from
// the closed sets. These are input rules only; values already at rest are
// never validated or clamped on the way out.

func validateLogInput(rating float64, noodle, soup, fat string) error {
	if err := validateRatingInput(rating); err != nil {
		return err
	}
	if err := validateOptionInput("noodle hardness", noodle, types.NoodleHardnessOptions); err != nil {
		return err
	}
	if err := validateOptionInput("soup concentration", soup, types.SoupConcentrationOptions); err != nil {
		return err
	}
	return validateOptionInput("back fat", fat, types.BackFatOptions)
}

func validateRatingInput(rating float64) error {
	if rating < 1 || rating > 5 || math.Mod(rating*2, 1) != 0 {
		return fmt.Errorf("rating must be between 1 and 5 in half steps, got %v", rating)
	}
	return nil
}

func validateOptionInput(label, value string, options []string) error {
	for _, o := range options {
		if o == value {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %q", label, options, value)
}
