package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type createInput struct {
	Name       string `validate:"required"`
	NationalID string `validate:"required,len=11,numeric,cpf"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     createInput
		wantNil   bool
		wantField string
	}{
		{
			name:    "valid input",
			input:   createInput{Name: "John Doe", NationalID: "36070315502"},
			wantNil: true,
		},
		{
			name:      "missing name",
			input:     createInput{NationalID: "36070315502"},
			wantField: "Name",
		},
		{
			name:      "short national id",
			input:     createInput{Name: "John Doe", NationalID: "123"},
			wantField: "NationalID",
		},
		{
			name:      "bad check digits",
			input:     createInput{Name: "John Doe", NationalID: "36070315500"},
			wantField: "NationalID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.input)
			if tt.wantNil {
				assert.Nil(t, errs)
				return
			}
			assert.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestStructReportsEachFailingField(t *testing.T) {
	errs := Struct(createInput{})
	assert.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "NationalID")
}
