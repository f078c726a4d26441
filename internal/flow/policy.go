// Package flow holds the canonical internship document flow: the ordered list
// of required document types, the status-token file naming scheme, and the
// mapping from accepted documents to practice progress steps.
package flow

// DocumentType is one of the ten fixed categories of internship paperwork.
type DocumentType string

const (
	CartaPresentacion        DocumentType = "CartaPresentacion"
	CartaAceptacion          DocumentType = "CartaAceptacion"
	CartaCompromiso          DocumentType = "CartaCompromiso"
	CartaIMSS                DocumentType = "CartaIMSS"
	ReporteI                 DocumentType = "ReporteI"
	ReporteII                DocumentType = "ReporteII"
	ReporteFinal             DocumentType = "ReporteFinal"
	CuestionarioSatisfaccion DocumentType = "CuestionarioSatisfaccion"
	CartaTerminacion         DocumentType = "CartaTerminacion"
	InformeFinal             DocumentType = "InformeFinal"
)

// canonicalOrder is the sequence every student follows. Both the submission
// flow and the approval gate share this exact order.
var canonicalOrder = []DocumentType{
	CartaPresentacion,
	CartaAceptacion,
	CartaCompromiso,
	CartaIMSS,
	ReporteI,
	ReporteII,
	ReporteFinal,
	CuestionarioSatisfaccion,
	CartaTerminacion,
	InformeFinal,
}

// Order returns a copy of the canonical document order.
func Order() []DocumentType {
	out := make([]DocumentType, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// IndexOf returns the position of t in the canonical order, or -1 for an
// unrecognized type.
func IndexOf(t DocumentType) int {
	for i, dt := range canonicalOrder {
		if dt == t {
			return i
		}
	}
	return -1
}

// RequiredPredecessors returns the ordered types strictly before t. An
// unrecognized type has no predecessors.
func RequiredPredecessors(t DocumentType) []DocumentType {
	idx := IndexOf(t)
	if idx <= 0 {
		return nil
	}
	out := make([]DocumentType, idx)
	copy(out, canonicalOrder[:idx])
	return out
}

// NextRequired returns the first type in canonical order not present in
// accepted. The second return is false when every type is accepted and the
// flow is complete.
func NextRequired(accepted map[DocumentType]bool) (DocumentType, bool) {
	for _, dt := range canonicalOrder {
		if !accepted[dt] {
			return dt, true
		}
	}
	return "", false
}

// PrePracticeLetters are the four letters that must all be accepted before a
// practice can start.
func PrePracticeLetters() []DocumentType {
	return []DocumentType{CartaPresentacion, CartaAceptacion, CartaCompromiso, CartaIMSS}
}

// PracticePhaseTypes are the five types counted by the percentage projection
// of an active practice, each worth a fixed share.
func PracticePhaseTypes() []DocumentType {
	return []DocumentType{ReporteI, ReporteII, CuestionarioSatisfaccion, CartaTerminacion, InformeFinal}
}
