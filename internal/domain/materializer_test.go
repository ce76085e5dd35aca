package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t83714/ts-module-alias-transformer/internal/adapter"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

func TestMaterializer_DestPath(t *testing.T) {
	materializer := NewMaterializer(adapter.NewLocalFSAdapter())

	tests := []struct {
		name string
		job  m.FileJob
		want string
	}{
		{
			"file destination used verbatim",
			m.FileJob{
				Source:      "/src/x.ts",
				SourceRoot:  "/src/x.ts",
				SourceIsDir: false,
				DestRoot:    "/dst/y.ts",
				DestIsDir:   false,
			},
			filepath.Join("/dst", "y.ts"),
		},
		{
			"single file into directory keeps base name",
			m.FileJob{
				Source:      "/src/x.ts",
				SourceRoot:  "/src/x.ts",
				SourceIsDir: false,
				DestRoot:    "/dst",
				DestIsDir:   true,
			},
			filepath.Join("/dst", "x.ts"),
		},
		{
			"directory to directory mirrors subtree",
			m.FileJob{
				Source:      "/src/a/b.ts",
				SourceRoot:  "/src",
				SourceIsDir: true,
				DestRoot:    "/dst",
				DestIsDir:   true,
			},
			filepath.Join("/dst", "a", "b.ts"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := materializer.DestPath(tt.job)
			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}
}

func TestMaterializer_WriteCreatesParents(t *testing.T) {
	materializer := NewMaterializer(adapter.NewLocalFSAdapter())

	dest := m.Path(filepath.Join(t.TempDir(), "deep", "nested", "out.js"))

	require.NoError(t, materializer.Write(dest, []byte("content")))

	got, err := os.ReadFile(string(dest))
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))
}

func TestMaterializer_WriteOverwrites(t *testing.T) {
	materializer := NewMaterializer(adapter.NewLocalFSAdapter())

	dest := m.Path(filepath.Join(t.TempDir(), "out.js"))
	require.NoError(t, materializer.Write(dest, []byte("old")))
	require.NoError(t, materializer.Write(dest, []byte("new")))

	got, err := os.ReadFile(string(dest))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}
