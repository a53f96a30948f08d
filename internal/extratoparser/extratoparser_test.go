package extratoparser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrocha/extrato-csv/internal/logging"
	"lrocha/extrato-csv/internal/parsererror"
)

const sampleStatement = `Data,Descricao_Transacao,Valor
2024-01-01,Ifood Delivery,-45.00
2024-01-02,Salario,3000.00
2024-01-03,uber trip,-20.00
`

func TestValidateSchema(t *testing.T) {
	tests := []struct {
		name            string
		header          []string
		expectedMissing []string
	}{
		{
			name:   "all columns present",
			header: []string{"Data", "Descricao_Transacao", "Valor"},
		},
		{
			name:   "extra columns are fine",
			header: []string{"Data", "Descricao_Transacao", "Valor", "Saldo"},
		},
		{
			name:            "missing amount column",
			header:          []string{"Data", "Descricao_Transacao"},
			expectedMissing: []string{"Valor"},
		},
		{
			name:            "missing two columns",
			header:          []string{"Descricao_Transacao"},
			expectedMissing: []string{"Data", "Valor"},
		},
		{
			name:            "empty header",
			header:          []string{},
			expectedMissing: []string{"Data", "Descricao_Transacao", "Valor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.header)
			if len(tt.expectedMissing) == 0 {
				assert.NoError(t, err)
				return
			}
			var missingErr *parsererror.MissingColumnsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.expectedMissing, missingErr.Missing)
			for _, col := range tt.expectedMissing {
				assert.Contains(t, err.Error(), col)
			}
		})
	}
}

func TestParseValidStatement(t *testing.T) {
	transactions, err := Parse([]byte(sampleStatement), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), transactions[0].Date)
	assert.Equal(t, "Ifood Delivery", transactions[0].Description)
	assert.Equal(t, "-45", transactions[0].Amount.String())
	assert.Empty(t, transactions[0].Category)

	// Input order is preserved.
	assert.Equal(t, "Salario", transactions[1].Description)
	assert.Equal(t, "uber trip", transactions[2].Description)
	assert.True(t, transactions[1].IsIncome())
	assert.True(t, transactions[2].IsExpense())
}

func TestParseDropsMalformedRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     string
		expected int
	}{
		{
			name:     "unparseable amount",
			rows:     "2024-01-01,Ifood,abc\n2024-01-02,Salario,3000.00\n",
			expected: 1,
		},
		{
			name:     "unparseable date",
			rows:     "notadate,Ifood,-45.00\n2024-01-02,Salario,3000.00\n",
			expected: 1,
		},
		{
			name:     "empty description",
			rows:     "2024-01-01,,-45.00\n2024-01-02,Salario,3000.00\n",
			expected: 1,
		},
		{
			name:     "whitespace description",
			rows:     "2024-01-01,   ,-45.00\n2024-01-02,Salario,3000.00\n",
			expected: 1,
		},
		{
			name:     "empty amount",
			rows:     "2024-01-01,Ifood,\n2024-01-02,Salario,3000.00\n",
			expected: 1,
		},
		{
			name:     "all rows bad",
			rows:     "x,Ifood,abc\ny,,1\n",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "Data,Descricao_Transacao,Valor\n" + tt.rows
			transactions, err := Parse([]byte(data), &logging.MockLogger{})
			// Row-level defects never error; they drop.
			require.NoError(t, err)
			assert.Len(t, transactions, tt.expected)
		})
	}
}

func TestParseMissingColumnIsFatal(t *testing.T) {
	data := "Data,Descricao_Transacao\n2024-01-01,Ifood\n"
	transactions, err := Parse([]byte(data), &logging.MockLogger{})

	var missingErr *parsererror.MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"Valor"}, missingErr.Missing)
	assert.Nil(t, transactions)
}

func TestParseHeaderOnly(t *testing.T) {
	transactions, err := Parse([]byte("Data,Descricao_Transacao,Valor\n"), &logging.MockLogger{})
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse([]byte(""), &logging.MockLogger{})
	assert.Error(t, err)
}

func TestParseBrazilianDates(t *testing.T) {
	data := "Data,Descricao_Transacao,Valor\n15/03/2024,Padaria,-12.50\n"
	transactions, err := Parse([]byte(data), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), transactions[0].Date)
}

func TestParseExtraColumnsIgnored(t *testing.T) {
	data := "Data,Descricao_Transacao,Valor,Saldo\n2024-01-01,Ifood,-45.00,955.00\n"
	transactions, err := Parse([]byte(data), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Ifood", transactions[0].Description)
}

func TestParseReader(t *testing.T) {
	transactions, err := ParseReader(strings.NewReader(sampleStatement), &logging.MockLogger{})
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestParseFileNotFound(t *testing.T) {
	_, err := ParseFile("does-not-exist.csv", &logging.MockLogger{})
	assert.Error(t, err)
}
