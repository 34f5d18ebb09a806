package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var sb strings.Builder
	require.True(t, run(&sb))

	out := sb.String()
	require.Contains(t, out, "Seed = 1:")
	require.Contains(t, out, "Seed = 24:")
	require.Contains(t, out, "0.6363787615254752")
	require.Contains(t, out, "0.3943255396952755")
	require.NotContains(t, out, "NO\n")
	require.Contains(t, out, "SUCCESS: all generated values match the reference streams.")
}
