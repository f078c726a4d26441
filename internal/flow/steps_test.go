package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicas-backend/internal/flow"
)

func TestPracticeStepFor(t *testing.T) {
	cases := map[flow.DocumentType]int{
		flow.CartaPresentacion:        1,
		flow.CartaAceptacion:          2,
		flow.CartaIMSS:                3,
		flow.CartaCompromiso:          4,
		flow.ReporteI:                 5,
		flow.ReporteII:                6,
		flow.ReporteFinal:             7,
		flow.CuestionarioSatisfaccion: 8,
		flow.CartaTerminacion:         9,
		flow.InformeFinal:             10,
	}
	for dt, want := range cases {
		step, ok := flow.PracticeStepFor(dt)
		require.True(t, ok, "%s", dt)
		assert.Equal(t, want, step, "%s", dt)
	}
}

func TestPracticeStepForUnknownType(t *testing.T) {
	_, ok := flow.PracticeStepFor(flow.DocumentType("CartaInexistente"))
	assert.False(t, ok)
}
