package semigroups

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporterNilIsSafe(t *testing.T) {
	var r *Reporter
	r.Report("checkpoint", "anything")
	require.Equal(t, int64(0), r.Count("checkpoint"))
}

func TestReporterCountsWithoutLogger(t *testing.T) {
	r := NewReporter("test", nil)
	r.Report("checkpoint", "")
	r.Report("checkpoint", "")
	require.Equal(t, int64(2), r.Count("checkpoint"))
}

func TestReporterWiredIntoToddCoxeter(t *testing.T) {
	var buf strings.Builder
	r := NewReporter("tc", log.New(&buf, "", 0))

	_, p := buildS2Presentation(t)
	tc := NewToddCoxeter(p, NewToddCoxeterConfig())
	tc.SetReporter(r)
	require.NoError(t, tc.Run(context.Background()))

	require.Greater(t, r.Count("checkpoint"), int64(0))
	require.Contains(t, buf.String(), "[tc] checkpoint")
}

func TestReporterWiredIntoKnuthBendix(t *testing.T) {
	var buf strings.Builder
	r := NewReporter("kb", log.New(&buf, "", 0))

	_, p := buildS2Presentation(t)
	kb := NewKnuthBendix(p, NewKnuthBendixConfig())
	kb.SetReporter(r)
	require.NoError(t, kb.Run(context.Background()))

	require.Greater(t, r.Count("checkpoint"), int64(0))
	require.Contains(t, buf.String(), "[kb] checkpoint")
}
