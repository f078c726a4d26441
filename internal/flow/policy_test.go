package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicas-backend/internal/flow"
)

func TestOrderIsTotalAndStable(t *testing.T) {
	order := flow.Order()
	require.Len(t, order, 10)
	assert.Equal(t, flow.CartaPresentacion, order[0])
	assert.Equal(t, flow.InformeFinal, order[9])

	for i, dt := range order {
		assert.Equal(t, i, flow.IndexOf(dt))
	}

	// Mutating the returned slice must not leak into the canonical order.
	order[0] = flow.InformeFinal
	assert.Equal(t, 0, flow.IndexOf(flow.CartaPresentacion))
}

func TestIndexOfUnknownType(t *testing.T) {
	assert.Equal(t, -1, flow.IndexOf(flow.DocumentType("CartaInexistente")))
	assert.Equal(t, -1, flow.IndexOf(flow.DocumentType("")))
}

func TestRequiredPredecessors(t *testing.T) {
	assert.Empty(t, flow.RequiredPredecessors(flow.CartaPresentacion))
	assert.Empty(t, flow.RequiredPredecessors(flow.DocumentType("nope")))

	assert.Equal(t,
		[]flow.DocumentType{flow.CartaPresentacion},
		flow.RequiredPredecessors(flow.CartaAceptacion))

	preds := flow.RequiredPredecessors(flow.ReporteI)
	assert.Equal(t, []flow.DocumentType{
		flow.CartaPresentacion, flow.CartaAceptacion, flow.CartaCompromiso, flow.CartaIMSS,
	}, preds)

	assert.Len(t, flow.RequiredPredecessors(flow.InformeFinal), 9)
}

func TestNextRequired(t *testing.T) {
	next, ok := flow.NextRequired(nil)
	require.True(t, ok)
	assert.Equal(t, flow.CartaPresentacion, next)

	accepted := map[flow.DocumentType]bool{flow.CartaPresentacion: true}
	next, ok = flow.NextRequired(accepted)
	require.True(t, ok)
	assert.Equal(t, flow.CartaAceptacion, next)

	// Idempotent for the same accepted set.
	again, ok := flow.NextRequired(accepted)
	require.True(t, ok)
	assert.Equal(t, next, again)

	// Gaps are re-requested before later types.
	accepted = map[flow.DocumentType]bool{
		flow.CartaPresentacion: true,
		flow.CartaCompromiso:   true,
	}
	next, ok = flow.NextRequired(accepted)
	require.True(t, ok)
	assert.Equal(t, flow.CartaAceptacion, next)
}

func TestNextRequiredMonotonicAlongHistory(t *testing.T) {
	accepted := map[flow.DocumentType]bool{}
	seen := map[flow.DocumentType]bool{}
	for {
		next, ok := flow.NextRequired(accepted)
		if !ok {
			break
		}
		assert.False(t, seen[next], "asked to resubmit %s", next)
		seen[next] = true
		accepted[next] = true
	}
	assert.Len(t, seen, 10)

	_, ok := flow.NextRequired(accepted)
	assert.False(t, ok)
}
