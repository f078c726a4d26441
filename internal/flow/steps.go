package flow

// practiceSteps maps an accepted document type to the practice progress step
// it implies, on the 0-10 document-count scale.
var practiceSteps = map[DocumentType]int{
	CartaPresentacion:        1,
	CartaAceptacion:          2,
	CartaIMSS:                3,
	CartaCompromiso:          4,
	ReporteI:                 5,
	ReporteII:                6,
	ReporteFinal:             7,
	CuestionarioSatisfaccion: 8,
	CartaTerminacion:         9,
	InformeFinal:             10,
}

// PracticeStepFor returns the progress step implied by accepting t. The
// second return is false for types outside the lookup, in which case an
// acceptance does not move the practice.
func PracticeStepFor(t DocumentType) (int, bool) {
	step, ok := practiceSteps[t]
	return step, ok
}

// PracticeStartedStep is the first step of the post-acceptance phase: a
// practice counts as started once ReporteI has been accepted.
const PracticeStartedStep = 5
