package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingColumnsError(t *testing.T) {
	err := &MissingColumnsError{
		Missing: []string{"Valor", "Data"},
		Found:   []string{"Descricao_Transacao"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Valor")
	assert.Contains(t, msg, "Data")
	assert.Contains(t, msg, "Descricao_Transacao")
}

func TestMissingColumnsErrorWithoutFound(t *testing.T) {
	err := &MissingColumnsError{Missing: []string{"Valor"}}
	assert.Equal(t, "statement is missing required columns: Valor", err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("bad decimal")
	err := &ParseError{
		Parser: "extrato",
		Field:  "Valor",
		Value:  "abc",
		Err:    inner,
	}

	assert.Contains(t, err.Error(), "Valor='abc'")
	assert.ErrorIs(t, err, inner)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "extrato.csv", Reason: "not a CSV"}
	assert.Contains(t, err.Error(), "extrato.csv")
	assert.Contains(t, err.Error(), "not a CSV")
}
