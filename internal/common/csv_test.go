package common

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrocha/extrato-csv/internal/logging"
)

type testRow struct {
	Name  string `csv:"Nome"`
	Value string `csv:"Valor"`
}

func TestReadRows(t *testing.T) {
	input := "Nome,Valor\nalpha,1.00\nbeta,2.00\n"

	rows, err := ReadRows[testRow](strings.NewReader(input), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, testRow{Name: "alpha", Value: "1.00"}, rows[0])
	assert.Equal(t, testRow{Name: "beta", Value: "2.00"}, rows[1])
}

func TestReadRowsCustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	input := "Nome;Valor\nalpha;1.00\n"
	rows, err := ReadRows[testRow](strings.NewReader(input), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alpha", rows[0].Name)
}

func TestReadHeader(t *testing.T) {
	header, err := ReadHeader([]byte("Data,Descricao_Transacao,Valor\n2024-01-01,x,1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Descricao_Transacao", "Valor"}, header)
}

func TestReadHeaderEmptyInput(t *testing.T) {
	_, err := ReadHeader([]byte(""))
	assert.ErrorContains(t, err, "empty CSV input")
}

func TestWriteRows(t *testing.T) {
	rows := []testRow{
		{Name: "alpha", Value: "1.00"},
		{Name: "beta", Value: "2.00"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(rows, &buf, &logging.MockLogger{}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Nome,Valor", lines[0])
	assert.Equal(t, "alpha,1.00", lines[1])
}

func TestWriteRowsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	rows := []testRow{{Name: "alpha", Value: "1.00"}}

	require.NoError(t, WriteRowsToFile(rows, path, &logging.MockLogger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nome,Valor")
	assert.Contains(t, string(data), "alpha,1.00")
}

func TestRoundTrip(t *testing.T) {
	rows := []testRow{
		{Name: "com vírgula, sim", Value: "1.234,56"},
		{Name: "simples", Value: "2.00"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRows(rows, &buf, &logging.MockLogger{}))

	back, err := ReadRows[testRow](&buf, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}
