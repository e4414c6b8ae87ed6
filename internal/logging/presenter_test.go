// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"
	"testing"

	"sievetail/cli/internal/errors"
)

func TestPresentError(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		err      error
		want     string
		wantHint string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name:    "plain error with context",
			context: "scan",
			err:     errors.New(errors.InvalidBound, "table bound must be at least 2, got 0"),
			want:    "scan: invalid_bound: table bound must be at least 2, got 0",
		},
		{
			name:     "bound exceeded hint",
			context:  "count(10000)",
			err:      errors.New(errors.TableBoundExceeded, "π(10000) needs primes up to 10000 but the table stops below 100"),
			wantHint: "--table-bound",
		},
		{
			name:     "undefined input hint",
			err:      errors.New(errors.UndefinedInput, "no prime pair p·q exists for n=3"),
			wantHint: "n ≥ 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PresentError(tt.context, tt.err)
			if tt.want != "" && !strings.HasPrefix(got, tt.want) {
				t.Errorf("PresentError() = %q, want prefix %q", got, tt.want)
			}
			if tt.err == nil && got != "" {
				t.Errorf("PresentError(nil) = %q, want empty", got)
			}
			if tt.wantHint != "" && !strings.Contains(got, tt.wantHint) {
				t.Errorf("PresentError() = %q, want hint containing %q", got, tt.wantHint)
			}
		})
	}
}
