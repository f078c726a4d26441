package flow

import (
	"fmt"
	"regexp"
	"strings"
)

// Status is the lifecycle state of a document. The same literal is embedded
// as a token in the stored file name, so name and row can be cross-checked.
type Status string

const (
	StatusPendiente  Status = "Pendiente"
	StatusEnRevision Status = "EnRevision"
	StatusAceptado   Status = "Aceptado"
	StatusRechazado  Status = "Rechazado"
	StatusEliminado  Status = "Eliminado"
)

// statusTokenPattern matches any of the five status tokens. A well-formed
// file name contains exactly one occurrence.
var statusTokenPattern = regexp.MustCompile(`Pendiente|EnRevision|Aceptado|Rechazado|Eliminado`)

// BuildFileName produces the stored name for a new document:
// <type>_<status>_<studentNumber>_<disambiguator>.pdf
func BuildFileName(t DocumentType, s Status, studentNumber, disambiguator string) string {
	return fmt.Sprintf("%s_%s_%s_%s.pdf", t, s, studentNumber, disambiguator)
}

// ReplaceStatusToken swaps the status token embedded in fileName for next,
// leaving every other segment untouched. It fails unless the name carries
// exactly one token, since a zero or double match means the name no longer
// encodes a single trustworthy state.
func ReplaceStatusToken(fileName string, next Status) (string, error) {
	matches := statusTokenPattern.FindAllStringIndex(fileName, -1)
	if len(matches) != 1 {
		return "", fmt.Errorf("file name %q must contain exactly one status token, found %d", fileName, len(matches))
	}
	start, end := matches[0][0], matches[0][1]
	return fileName[:start] + string(next) + fileName[end:], nil
}

// StatusTokenOf extracts the status token embedded in fileName, or "" when
// the name carries no single token.
func StatusTokenOf(fileName string) Status {
	matches := statusTokenPattern.FindAllString(fileName, -1)
	if len(matches) != 1 {
		return ""
	}
	return Status(matches[0])
}

// ReplacePathName recomputes a stored remote path after a rename by
// substituting the old file name inside it. The directory part is never
// rebuilt from scratch, so paths stay consistent across uploader-specific
// directory conventions.
func ReplacePathName(path, oldName, newName string) (string, error) {
	if !strings.Contains(path, oldName) {
		return "", fmt.Errorf("stored path %q does not contain file name %q", path, oldName)
	}
	return strings.Replace(path, oldName, newName, 1), nil
}
