package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicas-backend/internal/flow"
)

func TestBuildFileName(t *testing.T) {
	name := flow.BuildFileName(flow.CartaPresentacion, flow.StatusPendiente, "18161299", "a1b2c3d4")
	assert.Equal(t, "CartaPresentacion_Pendiente_18161299_a1b2c3d4.pdf", name)
	assert.Equal(t, flow.StatusPendiente, flow.StatusTokenOf(name))
}

func TestReplaceStatusToken(t *testing.T) {
	name := "ReporteI_Pendiente_18161299_a1b2c3d4.pdf"

	renamed, err := flow.ReplaceStatusToken(name, flow.StatusEnRevision)
	require.NoError(t, err)
	assert.Equal(t, "ReporteI_EnRevision_18161299_a1b2c3d4.pdf", renamed)

	// Every other segment is untouched through a full transition chain.
	accepted, err := flow.ReplaceStatusToken(renamed, flow.StatusAceptado)
	require.NoError(t, err)
	assert.Equal(t, "ReporteI_Aceptado_18161299_a1b2c3d4.pdf", accepted)
}

func TestReplaceStatusTokenFromAnyState(t *testing.T) {
	for _, s := range []flow.Status{
		flow.StatusPendiente, flow.StatusEnRevision, flow.StatusAceptado, flow.StatusRechazado,
	} {
		name := flow.BuildFileName(flow.CartaIMSS, s, "18161299", "x")
		renamed, err := flow.ReplaceStatusToken(name, flow.StatusEliminado)
		require.NoError(t, err)
		assert.Equal(t, flow.StatusEliminado, flow.StatusTokenOf(renamed))
	}
}

func TestReplaceStatusTokenRejectsMalformedNames(t *testing.T) {
	_, err := flow.ReplaceStatusToken("ReporteI_18161299.pdf", flow.StatusAceptado)
	assert.Error(t, err)

	_, err = flow.ReplaceStatusToken("ReporteI_Pendiente_Pendiente.pdf", flow.StatusAceptado)
	assert.Error(t, err)
}

func TestStatusTokenOf(t *testing.T) {
	assert.Equal(t, flow.Status(""), flow.StatusTokenOf("sin_token.pdf"))
	assert.Equal(t, flow.StatusRechazado, flow.StatusTokenOf("CartaCompromiso_Rechazado_1_1.pdf"))
}

func TestReplacePathName(t *testing.T) {
	path := "/practicas/18161299/ReporteI_Pendiente_18161299_a1b2c3d4.pdf"
	newPath, err := flow.ReplacePathName(path,
		"ReporteI_Pendiente_18161299_a1b2c3d4.pdf",
		"ReporteI_EnRevision_18161299_a1b2c3d4.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/practicas/18161299/ReporteI_EnRevision_18161299_a1b2c3d4.pdf", newPath)

	_, err = flow.ReplacePathName(path, "otra.pdf", "nueva.pdf")
	assert.Error(t, err)
}
