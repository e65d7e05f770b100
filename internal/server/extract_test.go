package server

import (
	"testing"

	"github.com/prasetyadi/contracts-tracker/constants"
)

func TestJobFormat(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		want      constants.PageFormat
	}{
		{"single page", 1, constants.PageFormatFirst},
		{"both pages", 2, constants.PageFormatBoth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jobFormat(tt.pageCount); got != tt.want {
				t.Errorf("jobFormat(%d) = %s, want %s", tt.pageCount, got, tt.want)
			}
		})
	}
}
