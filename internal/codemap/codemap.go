// Package codemap holds the fixed integer-to-label dictionaries for the
// categorical fields of the BRFSS 2015 survey. Each map is complete over
// its field's documented domain; a lookup outside that domain is a hard
// failure, never a placeholder label.
package codemap

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCode reports a survey code outside a CodeMap's documented
// domain. Callers check it with errors.Is.
var ErrUnknownCode = errors.New("unknown survey code")

// CodeMap is an immutable mapping from a survey field's numeric codes to
// display labels.
type CodeMap struct {
	field  string
	labels map[int]string
}

// New builds a CodeMap for the named field. The labels map is copied so
// later mutation of the argument cannot leak into the CodeMap.
func New(field string, labels map[int]string) CodeMap {
	copied := make(map[int]string, len(labels))
	for code, label := range labels {
		copied[code] = label
	}
	return CodeMap{field: field, labels: copied}
}

// Field returns the survey field this map recodes.
func (m CodeMap) Field() string {
	return m.field
}

// Lookup returns the display label for code, or an error wrapping
// ErrUnknownCode when the code is outside the documented domain.
func (m CodeMap) Lookup(code int) (string, error) {
	label, ok := m.labels[code]
	if !ok {
		return "", fmt.Errorf("%w: field %s, code %d", ErrUnknownCode, m.field, code)
	}
	return label, nil
}

// Domain returns the documented codes in ascending order.
func (m CodeMap) Domain() []int {
	codes := make([]int, 0, len(m.labels))
	for code := range m.labels {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Income maps the BRFSS INCOME2 codes to household income brackets.
var Income = New("Income", map[int]string{
	1:  "Less than $10,000",
	2:  "$10,000 - $15,000",
	3:  "$15,000 - $20,000",
	4:  "$20,000 - $25,000",
	5:  "$25,000 - $35,000",
	6:  "$35,000 - $50,000",
	7:  "$50,000 - $75,000",
	8:  "$75,000 or more",
	77: "Don't know/Not sure",
	99: "Refused",
})

// GeneralHealth maps the BRFSS GENHLTH self-assessment codes.
var GeneralHealth = New("GenHlth", map[int]string{
	1: "Excellent",
	2: "Very Good",
	3: "Good",
	4: "Fair",
	5: "Poor",
	7: "Don't know / Not Sure",
	9: "Refused",
})

// DiabeticStatus returns the display label for the binary diabetes
// indicator. The domain is the two bool values, so lookup cannot fail.
func DiabeticStatus(diabetic bool) string {
	if diabetic {
		return "Diabetic"
	}
	return "Non-Diabetic"
}
