package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Courses of Ana Rojas (E001)",
		Headers: []string{"id_curso", "nombre_curso", "creditos"},
		Rows: [][]string{
			{"C001", "Algebra", "3"},
			{"C002", "Physics", "4"},
		},
	}
}

func TestCSVRender(t *testing.T) {
	out, err := (&CSVRenderer{}).Render(sampleDataset())
	require.NoError(t, err)

	want := "id_curso,nombre_curso,creditos\nC001,Algebra,3\nC002,Physics,4\n"
	assert.Equal(t, want, string(out))
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := (&CSVRenderer{}).Render(Dataset{})
	assert.Error(t, err)
}

func TestCSVRenderRejectsRaggedRows(t *testing.T) {
	d := sampleDataset()
	d.Rows = append(d.Rows, []string{"C003"})
	_, err := (&CSVRenderer{}).Render(d)
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	r := &PDFRenderer{Now: func() time.Time { return time.Unix(0, 0).UTC() }}
	out, err := r.Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestByFormat(t *testing.T) {
	r, err := ByFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", r.Ext())

	r, err = ByFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf", r.Ext())

	_, err = ByFormat("xlsx")
	assert.Error(t, err)
}
