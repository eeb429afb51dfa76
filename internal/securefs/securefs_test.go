package securefs

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseFS() fstest.MapFS {
	return fstest.MapFS{
		"FSA029-Schema.xsd":      {Data: []byte("<primary/>")},
		"CommonTypes-Schema.xsd": {Data: []byte("<secondary/>")},
		"nested/Other.xsd":       {Data: []byte("<nested/>")},
	}
}

func TestOpenServesDirectChildren(t *testing.T) {
	fsys := New(baseFS())

	data, err := fs.ReadFile(fsys, "CommonTypes-Schema.xsd")
	require.NoError(t, err)
	assert.Equal(t, "<secondary/>", string(data))
}

func TestOpenBlocksNonLocalNames(t *testing.T) {
	tests := []struct {
		name     string
		location string
	}{
		{"http URL", "http://www.regulator.example/CommonTypes-Schema.xsd"},
		{"https URL", "https://example.com/x.xsd"},
		{"file URL", "file:///etc/passwd"},
		{"absolute path", "/etc/passwd"},
		{"parent traversal", "../CommonTypes-Schema.xsd"},
		{"embedded traversal", "a/../../b.xsd"},
		{"backslash path", `..\CommonTypes-Schema.xsd`},
		{"subdirectory", "nested/Other.xsd"},
	}

	fsys := New(baseFS())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fsys.Open(tt.location)
			require.Error(t, err)

			var blocked *BlockedError
			require.ErrorAs(t, err, &blocked, "expected BlockedError for %q", tt.location)
			assert.Equal(t, tt.location, blocked.Name)

			var pathErr *fs.PathError
			assert.ErrorAs(t, err, &pathErr, "blocked opens should be *fs.PathError per fs conventions")
		})
	}
}

func TestOpenMissingFileIsNotExist(t *testing.T) {
	fsys := New(baseFS())
	_, err := fsys.Open("Absent.xsd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var blocked *BlockedError
	assert.False(t, errors.As(err, &blocked), "missing files are not policy blocks")
}

func TestOverlayShadowsDisk(t *testing.T) {
	rewritten := []byte("<primary rewritten='true'/>")
	fsys := New(baseFS()).WithOverlay("FSA029-Schema.xsd", rewritten)

	data, err := fs.ReadFile(fsys, "FSA029-Schema.xsd")
	require.NoError(t, err)
	assert.Equal(t, string(rewritten), string(data))

	// Other names still come from the base.
	data, err = fs.ReadFile(fsys, "CommonTypes-Schema.xsd")
	require.NoError(t, err)
	assert.Equal(t, "<secondary/>", string(data))
}

func TestOverlayDoesNotMutateReceiver(t *testing.T) {
	orig := New(baseFS())
	_ = orig.WithOverlay("FSA029-Schema.xsd", []byte("shadow"))

	data, err := fs.ReadFile(orig, "FSA029-Schema.xsd")
	require.NoError(t, err)
	assert.Equal(t, "<primary/>", string(data))
}

func TestOverlayStat(t *testing.T) {
	rewritten := []byte("<primary rewritten='true'/>")
	fsys := New(baseFS()).WithOverlay("FSA029-Schema.xsd", rewritten)

	info, err := fs.Stat(fsys, "FSA029-Schema.xsd")
	require.NoError(t, err)
	assert.Equal(t, "FSA029-Schema.xsd", info.Name())
	assert.Equal(t, int64(len(rewritten)), info.Size())
	assert.False(t, info.IsDir())
}

func TestOpenHookObservesAllowedOpens(t *testing.T) {
	var opened []string
	fsys := New(baseFS()).WithOpenHook(func(name string) {
		opened = append(opened, name)
	})

	_, err := fs.ReadFile(fsys, "FSA029-Schema.xsd")
	require.NoError(t, err)

	// Blocked opens never reach the hook.
	_, err = fsys.Open("http://example.com/x.xsd")
	require.Error(t, err)

	assert.Equal(t, []string{"FSA029-Schema.xsd"}, opened)
}
