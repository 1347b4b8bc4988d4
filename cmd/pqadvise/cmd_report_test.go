package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_Markdown(t *testing.T) {
	profile := writeProfile(t, `
name: report-env
role: key-encapsulation
max_public_key_size: 2000
`)

	var buf bytes.Buffer
	cmd := newReportCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{profile})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "# Advisory: report-env")
	assert.Contains(t, out, "## Rejected")
}

func TestReportCommand_HTML(t *testing.T) {
	profile := writeProfile(t, `
name: html-env
role: signature
`)

	var buf bytes.Buffer
	cmd := newReportCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{profile, "--format", "html"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "<table>")
}

func TestReportCommand_NoCandidate(t *testing.T) {
	profile := writeProfile(t, `
name: blocked
role: signature
max_output_size: 1
`)

	var buf bytes.Buffer
	cmd := newReportCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{profile})

	err := cmd.Execute()
	require.Error(t, err)

	var noCandidate *NoCandidateError
	require.ErrorAs(t, err, &noCandidate)
	assert.Contains(t, buf.String(), "No algorithm satisfies the profile")
}

func TestReportCommand_BadFormat(t *testing.T) {
	profile := writeProfile(t, `
name: x
role: signature
`)

	cmd := newReportCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{profile, "--format", "pdf"})

	require.Error(t, cmd.Execute())
}
