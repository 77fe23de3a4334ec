package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "valid cpf", value: "36070315502", valid: true},
		{name: "repeated digits pass the checksum but are rejected", value: "11111111111", valid: false},
		{name: "wrong first check digit", value: "36070315512", valid: false},
		{name: "wrong second check digit", value: "36070315503", valid: false},
		{name: "too short", value: "3607031550", valid: false},
		{name: "too long", value: "360703155021", valid: false},
		{name: "non numeric", value: "3607031550a", valid: false},
		{name: "formatted input is not accepted", value: "360.703.155", valid: false},
		{name: "empty", value: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Validate(tt.value))
		})
	}
}
