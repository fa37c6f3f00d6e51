package operator

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLines reconstructs an operator from display lines of the form
// produced by Lines. Blank lines are skipped.
func ParseLines(lines []string) (*Op, error) {
	var terms []Term
	numQubits := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		t, err := ParseTerm(line)
		if err != nil {
			return nil, err
		}
		if numQubits == 0 {
			numQubits = len(t.Label)
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("operator: no terms to parse")
	}
	return New(numQubits, terms)
}

// ParseTerm parses a single `<coefficient> * <PauliString>` line.
func ParseTerm(line string) (Term, error) {
	coeffStr, label, ok := strings.Cut(line, " * ")
	if !ok {
		return Term{}, fmt.Errorf("operator: malformed term line %q", line)
	}
	label = strings.TrimSpace(label)
	coeff, err := parseCoeff(strings.TrimSpace(coeffStr))
	if err != nil {
		return Term{}, fmt.Errorf("operator: term %q: %w", line, err)
	}
	return Term{Coeff: coeff, Label: label}, nil
}

// parseCoeff accepts both the real form ("+0.397937424843") and the complex
// form ("(+0.100000000000-0.200000000000j)").
func parseCoeff(s string) (complex128, error) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, "j)") {
		body := strings.TrimSuffix(strings.TrimPrefix(s, "("), "j)")
		// The imaginary part starts at the last sign that is not an
		// exponent sign and not the leading sign.
		split := -1
		for i := len(body) - 1; i > 0; i-- {
			if body[i] != '+' && body[i] != '-' {
				continue
			}
			if body[i-1] == 'e' || body[i-1] == 'E' {
				continue
			}
			split = i
			break
		}
		if split <= 0 {
			return 0, fmt.Errorf("malformed complex coefficient %q", s)
		}
		re, err := strconv.ParseFloat(body[:split], 64)
		if err != nil {
			return 0, fmt.Errorf("real part of %q: %w", s, err)
		}
		im, err := strconv.ParseFloat(body[split:], 64)
		if err != nil {
			return 0, fmt.Errorf("imaginary part of %q: %w", s, err)
		}
		return complex(re, im), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coefficient %q: %w", s, err)
	}
	return complex(f, 0), nil
}
