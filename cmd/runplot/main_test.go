package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/runplot-go/pkg/runplot/models"
	"github.com/ukaji3/runplot-go/pkg/runplot/workbook"
)

func TestExtractCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtimes.csv")
	require.NoError(t, os.WriteFile(path, []byte("nb_atoms,runtime_micros\n10,5\n100,40\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"extract", path})
	require.NoError(t, cmd.Execute())

	var got columns
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "nb_atoms", got.XColumn)
	assert.Equal(t, []float64{10, 100}, got.X)
	assert.Equal(t, []float64{5, 40}, got.Y)
}

func TestExtractCommandMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtimes.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extract", path, "--x", "a", "--y", "c"})
	require.Error(t, cmd.Execute())
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})
	require.Error(t, cmd.Execute())
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.xlsx")
	series := []models.Series{{Label: "C++", X: []float64{1, 2}, Y: []float64{3, 4}}}
	require.NoError(t, workbook.Export(path, series, nil, models.Decorations{}, workbook.Options{XName: "n", YName: "t"}))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"inspect", path})
	require.NoError(t, cmd.Execute())

	var charts []models.WorkbookChart
	require.NoError(t, json.Unmarshal(out.Bytes(), &charts))
	require.Len(t, charts, 1)
	assert.Len(t, charts[0].Series, 1)
}

func TestRootCommandWithConfig(t *testing.T) {
	dir := t.TempDir()
	cpp := filepath.Join(dir, "cpp.csv")
	rust := filepath.Join(dir, "rust.csv")
	require.NoError(t, os.WriteFile(cpp, []byte("nb_atoms,runtime_micros\n10,5\n100,40\n1000,300\n"), 0644))
	require.NoError(t, os.WriteFile(rust, []byte("nb_atoms,runtime_micros\n10,4\n100,35\n1000,290\n"), 0644))

	config := fmt.Sprintf(`sources:
  - {label: C++, path: %q, x_column: nb_atoms, y_column: runtime_micros}
  - {label: Rust, path: %q, x_column: nb_atoms, y_column: runtime_micros}
figure: {width_inches: 4, height_inches: 2, use_tex: false}
outputs: {log: %q, linear: %q}
`, cpp, rust, filepath.Join(dir, "runtimes.png"), filepath.Join(dir, "runtimes_lin.png"))
	configFile := filepath.Join(dir, "runplot.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(config), 0644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configFile, "--dpi", "30", "--workbook", filepath.Join(dir, "runtimes.xlsx")})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"runtimes.png", "runtimes_lin.png", "runtimes.xlsx"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
