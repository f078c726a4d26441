package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicas-backend/internal/flow"
	"practicas-backend/internal/models"
	"practicas-backend/internal/services"
)

func newProgressEnv(t *testing.T) (*testEnv, *services.ProgressService) {
	t.Helper()
	env := newTestEnv(t)
	return env, services.NewProgressService(env.docs, env.pracs, env.apps)
}

func TestMilestoneProgressLabels(t *testing.T) {
	env, progress := newProgressEnv(t)

	cases := map[int]string{
		0: "Not started",
		1: "Report I approved",
		2: "Report II approved",
		3: "Final report approved",
		4: "Practice finished",
	}
	for step, label := range cases {
		env.pracs.practices[env.practiceID].ProgressStep = step
		got, err := progress.MilestoneProgress(env.student.ID)
		require.NoError(t, err)
		assert.Equal(t, step, got.Step)
		assert.Equal(t, label, got.Label, "step %d", step)
	}
}

func TestMilestoneProgressUnknownStep(t *testing.T) {
	env, progress := newProgressEnv(t)

	// The step sync writes on a 0-10 scale into the same column, so values
	// past the milestone table show up in practice.
	env.pracs.practices[env.practiceID].ProgressStep = 7
	got, err := progress.MilestoneProgress(env.student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.Label)
}

func TestMilestoneProgressWithoutActivePractice(t *testing.T) {
	env, progress := newProgressEnv(t)

	_, err := progress.MilestoneProgress(uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)

	env.pracs.practices[env.practiceID].Status = models.PracticeFinished
	_, err = progress.MilestoneProgress(env.student.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPercentageProgressScoring(t *testing.T) {
	env, progress := newProgressEnv(t)

	got, err := progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Percentage)

	// ReporteI and CartaTerminacion accepted, nothing else: 40.
	env.seedDocument(t, flow.ReporteI, flow.StatusAceptado)
	env.seedDocument(t, flow.CartaTerminacion, flow.StatusAceptado)

	got, err = progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Percentage)
}

func TestPercentageProgressIgnoresNonPhaseTypes(t *testing.T) {
	env, progress := newProgressEnv(t)

	// Pre-practice letters and ReporteFinal carry no points.
	env.seedDocument(t, flow.CartaPresentacion, flow.StatusAceptado)
	env.seedDocument(t, flow.CartaAceptacion, flow.StatusAceptado)
	env.seedDocument(t, flow.ReporteFinal, flow.StatusAceptado)

	got, err := progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Percentage)
}

func TestPercentageProgressMax(t *testing.T) {
	env, progress := newProgressEnv(t)
	for _, dt := range flow.PracticePhaseTypes() {
		env.seedDocument(t, dt, flow.StatusAceptado)
	}

	got, err := progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Percentage)
}

func TestCanStartPractice(t *testing.T) {
	env, progress := newProgressEnv(t)

	for _, dt := range flow.PrePracticeLetters() {
		env.seedDocument(t, dt, flow.StatusAceptado)
	}

	// All four letters accepted, but no pre-accepted application yet.
	got, err := progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.False(t, got.CanStartPractice)

	env.apps.preaccepted[env.student.ID] = true
	got, err = progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.True(t, got.CanStartPractice)
}

func TestCanStartPracticeRequiresAllLetters(t *testing.T) {
	env, progress := newProgressEnv(t)
	env.apps.preaccepted[env.student.ID] = true

	env.seedDocument(t, flow.CartaPresentacion, flow.StatusAceptado)
	env.seedDocument(t, flow.CartaAceptacion, flow.StatusAceptado)
	env.seedDocument(t, flow.CartaCompromiso, flow.StatusAceptado)
	// CartaIMSS still missing.

	got, err := progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.False(t, got.CanStartPractice)
}

func TestPracticeStarted(t *testing.T) {
	env, progress := newProgressEnv(t)

	env.pracs.practices[env.practiceID].ProgressStep = 4
	got, err := progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.False(t, got.PracticeStarted)

	env.pracs.practices[env.practiceID].ProgressStep = 5
	got, err = progress.PercentageProgress(env.student.ID)
	require.NoError(t, err)
	assert.True(t, got.PracticeStarted)
}

func TestPercentageProgressWithoutPractice(t *testing.T) {
	_, progress := newProgressEnv(t)

	got, err := progress.PercentageProgress(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Percentage)
	assert.False(t, got.CanStartPractice)
	assert.False(t, got.PracticeStarted)
}
