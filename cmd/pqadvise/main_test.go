package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoCandidateError(t *testing.T) {
	err := &NoCandidateError{Profile: "edge-device"}
	assert.Equal(t, `no algorithm satisfies profile "edge-device"`, err.Error())
}

func TestNoCandidateError_DetectedWhenWrapped(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		noCandidate bool
	}{
		{"direct", &NoCandidateError{Profile: "p"}, true},
		{"wrapped", fmt.Errorf("advisory: %w", &NoCandidateError{Profile: "p"}), true},
		{"plain error", errors.New("boom"), false},
		{"wrapped plain", fmt.Errorf("outer: %w", errors.New("boom")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target *NoCandidateError
			assert.Equal(t, tt.noCandidate, errors.As(tt.err, &target))
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	want := []string{"advise", "batch", "compare", "catalog", "validate", "new", "report"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
