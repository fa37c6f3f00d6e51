package operator

import (
	"encoding/json"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func h2Terms() []Term {
	return []Term{
		{Coeff: -1.052373245772859, Label: "IIII"},
		{Coeff: 0.39793742484318045, Label: "ZIII"},
		{Coeff: -0.39793742484318045, Label: "IZII"},
		{Coeff: 0.1689275387008791, Label: "XXYY"},
	}
}

func TestNewValidates(t *testing.T) {
	op, err := New(4, h2Terms())
	require.NoError(t, err)
	assert.Equal(t, 4, op.NumQubits())
	assert.Equal(t, 4, op.Len())

	_, err = New(4, []Term{{Coeff: 1, Label: "IIZ"}})
	assert.Error(t, err, "short label must be rejected")

	_, err = New(3, []Term{{Coeff: 1, Label: "IQZ"}})
	assert.Error(t, err, "invalid symbol must be rejected")

	_, err = New(2, []Term{{Coeff: complex(math.NaN(), 0), Label: "IZ"}})
	assert.Error(t, err, "NaN coefficient must be rejected")

	_, err = New(2, []Term{{Coeff: complex(0, math.Inf(1)), Label: "IZ"}})
	assert.Error(t, err, "infinite coefficient must be rejected")

	_, err = New(2, nil)
	assert.Error(t, err, "empty operator must be rejected")
}

func TestTermsIsACopy(t *testing.T) {
	op, err := New(4, h2Terms())
	require.NoError(t, err)

	got := op.Terms()
	got[0].Coeff = 99
	assert.Equal(t, complex128(-1.052373245772859), op.Terms()[0].Coeff)
}

func TestLinesSortedAndFinite(t *testing.T) {
	op, err := New(4, h2Terms())
	require.NoError(t, err)

	lines := op.Lines(DisplayCutoff)
	require.Len(t, lines, 4)
	assert.True(t, sort.StringsAreSorted(lines))
	assert.Contains(t, lines, "-1.052373245773 * IIII")

	for _, term := range op.Terms() {
		assert.False(t, math.IsNaN(real(term.Coeff)))
		assert.False(t, math.IsInf(real(term.Coeff), 0))
	}
}

func TestFormatTerm(t *testing.T) {
	assert.Equal(t, "+0.397937424843 * ZIII", FormatTerm(Term{Coeff: 0.39793742484318045, Label: "ZIII"}))
	assert.Equal(t, "-1.052373245773 * IIII", FormatTerm(Term{Coeff: -1.052373245772859, Label: "IIII"}))
	assert.Equal(t, "(+0.100000000000-0.200000000000j) * XY", FormatTerm(Term{Coeff: complex(0.1, -0.2), Label: "XY"}))
}

func TestLinesCutoffDropsTinyTerms(t *testing.T) {
	op, err := New(2, []Term{
		{Coeff: 0.5, Label: "ZZ"},
		{Coeff: 1e-14, Label: "XX"},
	})
	require.NoError(t, err)
	assert.Len(t, op.Lines(DisplayCutoff), 1)
}

func TestDisplayRoundTrip(t *testing.T) {
	op, err := New(4, append(h2Terms(), Term{Coeff: complex(0.25, -0.125), Label: "XYZI"}))
	require.NoError(t, err)

	lines := op.Lines(DisplayCutoff)
	parsed, err := ParseLines(lines)
	require.NoError(t, err)
	require.Equal(t, op.NumQubits(), parsed.NumQubits())
	require.Equal(t, op.Len(), parsed.Len())

	want := op.Sorted()
	got := parsed.Sorted()
	for i := range want {
		assert.Equal(t, want[i].Label, got[i].Label)
		assert.InDelta(t, real(want[i].Coeff), real(got[i].Coeff), 1e-9)
		assert.InDelta(t, imag(want[i].Coeff), imag(got[i].Coeff), 1e-9)
	}
}

func TestParseTermErrors(t *testing.T) {
	_, err := ParseTerm("no separator here")
	assert.Error(t, err)

	_, err = ParseTerm("abc * ZZ")
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	op, err := New(4, h2Terms())
	require.NoError(t, err)

	data, err := json.Marshal(op)
	require.NoError(t, err)

	var back Op
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, op.NumQubits(), back.NumQubits())
	assert.Equal(t, op.Terms(), back.Terms())
}

func TestUnmarshalRejectsMismatchedLengths(t *testing.T) {
	var op Op
	err := json.Unmarshal([]byte(`{"num_qubits":2,"paulis":["ZZ","XX"],"coeffs":[[1,0]]}`), &op)
	assert.Error(t, err)
}
