package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casegen-ai/casegen/internal/extract"
)

func TestAllowedFilename(t *testing.T) {
	assert.True(t, extract.AllowedFilename("requirements.pdf"))
	assert.True(t, extract.AllowedFilename("Spec.DOCX"))
	assert.True(t, extract.AllowedFilename("notes.txt"))
	assert.False(t, extract.AllowedFilename("payload.exe"))
	assert.False(t, extract.AllowedFilename("archive.tar.gz"))
	assert.False(t, extract.AllowedFilename("noextension"))
}

func TestText_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.txt")
	require.NoError(t, os.WriteFile(path, []byte("Login must be secure.\nSessions expire."), 0o644))

	text, err := extract.Text(path)
	require.NoError(t, err)
	assert.Equal(t, "Login must be secure.\nSessions expire.", text)
}

func TestText_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.md")
	require.NoError(t, os.WriteFile(path, []byte("# heading"), 0o644))

	_, err := extract.Text(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestText_MissingFile(t *testing.T) {
	_, err := extract.Text(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestText_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not really a pdf"), 0o644))

	_, err := extract.Text(path)
	assert.Error(t, err)
}
