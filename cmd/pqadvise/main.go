package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Advisory produced at least one recommendation
	ExitNoCandidate = 1 // No algorithm satisfied the profile constraints
	ExitError       = 2 // Configuration or runtime error
)

// NoCandidateError indicates the advisory ran successfully, but every
// algorithm in the catalog failed a hard constraint.
type NoCandidateError struct {
	Profile string
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf("no algorithm satisfies profile %q", e.Profile)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var noCandidateErr *NoCandidateError
		if errors.As(err, &noCandidateErr) {
			os.Exit(ExitNoCandidate)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
