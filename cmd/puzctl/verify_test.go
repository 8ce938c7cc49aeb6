package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/puzkit/internal/format"
)

func TestVerifyClean(t *testing.T) {
	resetFlags()
	path := tinyPuzPath(t)

	output, err := captureOutput(t, func() error {
		return runVerify([]string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"all checksums match"})
}

func TestVerifyTampered(t *testing.T) {
	resetFlags()
	// Changing the player grid without resealing breaks the file checksum.
	path := tinyPuzPath(t, func(f *format.File) { f.State = "P--------" })

	output, err := captureOutput(t, func() error {
		return runVerify([]string{path})
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errChecksumMismatch))
	assertContains(t, output, []string{"do not match", "file: stored 0x"})
	assertNotContains(t, output, []string{"cib:"})
}

func TestVerifySectionJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	defer resetFlags()
	path := tinyPuzPath(t, func(f *format.File) {
		f.Sections = []format.Section{{Name: "GEXT", Checksum: 0x1234, Data: make([]byte, 9)}}
	})

	output, err := captureOutput(t, func() error {
		return runVerify([]string{path})
	})
	require.ErrorIs(t, err, errChecksumMismatch)

	var result verifyResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.False(t, result.OK)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, mismatchEntry{Field: "section GEXT", Stored: "0x1234", Computed: "0x0000"}, result.Mismatches[0])
}
