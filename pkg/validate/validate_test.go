package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid reference", input: "4539578763621486", expected: true},
		{name: "Another valid reference", input: "4024007159584688", expected: true},
		{name: "Bad check digit", input: "4539578763621487", expected: false},
		{name: "Valid Luhn but too short", input: "79927398713", expected: false},
		{name: "Single zero", input: "0", expected: false},
		{name: "Letters", input: "abc", expected: false},
		{name: "Letter inside full length", input: "45395787636214a6", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLuhn(tt.input))
		})
	}
}

func TestNewReference(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		ref, err := NewReference()
		assert.NoError(t, err)
		assert.Len(t, ref, referenceLength)
		assert.True(t, IsLuhn(ref), ref)
		assert.NotEqual(t, byte('0'), ref[0])
		seen[ref] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "+225 07 08 09 10 11", expected: "+2250708091011"},
		{input: "225-0708-091011", expected: "+2250708091011"},
		{input: " (229) 97 00 00 00 ", expected: "+22997000000"},
		{input: "", expected: ""},
		{input: "phone", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestStruct(t *testing.T) {
	type request struct {
		Phone  string `validate:"required,e164"`
		Amount int64  `validate:"required,gt=0"`
		Method string `validate:"required,oneof=mobile_money crypto"`
	}

	tests := []struct {
		name        string
		input       request
		expectedErr string
	}{
		{name: "Valid", input: request{Phone: "+237650000000", Amount: 10, Method: "crypto"}},
		{name: "Bad phone", input: request{Phone: "650000000", Amount: 10, Method: "crypto"}, expectedErr: "phone: failed on 'e164'"},
		{name: "Missing amount", input: request{Phone: "+237650000000", Method: "crypto"}, expectedErr: "amount: failed on 'required'"},
		{
			name:        "Unknown method",
			input:       request{Phone: "+237650000000", Amount: 10, Method: "cash"},
			expectedErr: "method: failed on 'oneof'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}
