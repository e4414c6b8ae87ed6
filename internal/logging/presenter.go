// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides terminal presentation of errors and a
// verbose debug gate for the CLI.
package logging

import (
	"fmt"

	"sievetail/cli/internal/errors"
)

// PresentError formats an error for user display, appending a
// remediation hint for the error kinds a user can act on.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if context != "" {
		msg = fmt.Sprintf("%s: %s", context, msg)
	}
	switch errors.KindOf(err) {
	case errors.TableBoundExceeded:
		msg += "\n   Rerun with a larger --table-bound."
	case errors.UndefinedInput:
		msg += "\n   Survivor counts are defined for n ≥ 5."
	}
	return msg
}
