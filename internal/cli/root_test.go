package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootTextFields(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "-b", "XBOUND", "-F", "a=1", "-F", "b=2")
	require.NoError(t, err)
	assert.Equal(t,
		"--XBOUND\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\n1\r\n"+
			"--XBOUND\r\nContent-Disposition: form-data; name=\"b\"\r\n\r\n2\r\n"+
			"--XBOUND--\r\n",
		out)
}

func TestRootEmptyForm(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "--boundary", "XBOUND")
	require.NoError(t, err)
	assert.Equal(t, "--XBOUND--\r\n", out)
}

func TestRootFileField(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "me.png", "\x89PN")

	out, _, err := execute(t, "-b", "XBOUND", "-F", "photo=@"+path+";type=image/png")
	require.NoError(t, err)
	assert.Equal(t,
		"--XBOUND\r\nContent-Disposition: form-data; name=\"photo\"; filename=\"me.png\"\r\n"+
			"Content-Type: image/png\r\n\r\n\x89PN\r\n--XBOUND--\r\n",
		out)
}

func TestRootManifestThenFlags(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "data.txt", "contents")
	manifest := writeFile(t, dir, "form.yaml", `boundary: MBOUND
fields:
  - name: first
    value: one
  - name: doc
    file: data.txt
    content_type: text/plain
`)

	out, _, err := execute(t, "-m", manifest, "-F", "last=three")
	require.NoError(t, err)
	assert.Equal(t,
		"--MBOUND\r\nContent-Disposition: form-data; name=\"first\"\r\n\r\none\r\n"+
			"--MBOUND\r\nContent-Disposition: form-data; name=\"doc\"; filename=\"data.txt\"\r\nContent-Type: text/plain\r\n\r\ncontents\r\n"+
			"--MBOUND\r\nContent-Disposition: form-data; name=\"last\"\r\n\r\nthree\r\n"+
			"--MBOUND--\r\n",
		out)
}

func TestRootBoundaryFlagOverridesManifest(t *testing.T) {
	t.Parallel()
	manifest := writeFile(t, t.TempDir(), "form.yaml", "boundary: MBOUND\nfields: []\n")
	out, _, err := execute(t, "-m", manifest, "-b", "FLAG")
	require.NoError(t, err)
	assert.Equal(t, "--FLAG--\r\n", out)
}

func TestRootRandomBoundary(t *testing.T) {
	t.Parallel()
	out, errOut, err := execute(t, "--print-content-type", "-F", "a=1")
	require.NoError(t, err)

	contentType := strings.TrimSpace(errOut)
	boundary, ok := strings.CutPrefix(contentType, "multipart/form-data; boundary=")
	require.True(t, ok, contentType)
	assert.True(t, strings.HasPrefix(boundary, strings.Repeat("-", 26)))
	assert.True(t, strings.HasPrefix(out, "--"+boundary+"\r\n"))
	assert.True(t, strings.HasSuffix(out, "--"+boundary+"--\r\n"))
}

func TestRootOutputFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "body")
	out, _, err := execute(t, "-b", "XBOUND", "-o", path, "-F", "a=1")
	require.NoError(t, err)
	assert.Empty(t, out)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "--XBOUND\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\n1\r\n--XBOUND--\r\n", string(body))
}

func TestRootFailureKeepsExistingOutput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "body", "PREVIOUS GOOD BODY")

	_, _, err := execute(t, "-b", "XBOUND", "-o", path, "-F", "a=1", "-F", "f=@"+filepath.Join(dir, "missing"))
	require.Error(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PREVIOUS GOOD BODY", string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary output left behind")
}

func TestRootOutputReplacesExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "body", "OLD")

	_, _, err := execute(t, "-b", "XBOUND", "-o", path, "-F", "a=1")
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "--XBOUND\r\nContent-Disposition: form-data; name=\"a\"\r\n\r\n1\r\n--XBOUND--\r\n", string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRootVerboseLogs(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, "-v", "-b", "XBOUND", "-F", "a=1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "appending field")
	assert.Contains(t, errOut, "name=a")
	assert.Contains(t, errOut, "form written")
}

func TestRootQuietByDefault(t *testing.T) {
	t.Parallel()
	_, errOut, err := execute(t, "-b", "XBOUND", "-F", "a=1")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestRootErrors(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"invalid boundary": {"-b", `bad"boundary`},
		"invalid form":     {"-F", "novalue"},
		"missing file":     {"-F", "f=@/definitely/not/here"},
		"missing manifest": {"-m", "/definitely/not/here.yaml"},
		"positional args":  {"extra"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}
