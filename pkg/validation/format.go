// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/cmalloy/trip-finder/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatJSON {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatJSON, format)
	}
	return nil
}

// ValidateStayThresholds checks that minimum-stay thresholds are non-negative.
func ValidateStayThresholds(minStopover1Days, minStopover2Days int) error {
	if minStopover1Days < 0 {
		return fmt.Errorf("minStopover1Days must be non-negative, got %d", minStopover1Days)
	}
	if minStopover2Days < 0 {
		return fmt.Errorf("minStopover2Days must be non-negative, got %d", minStopover2Days)
	}
	return nil
}
