package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rshade/streamfmt/internal/sink"
	"github.com/rshade/streamfmt/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfiles = `
profiles:
  - name: voltage
    mode: fixed
    digits: 2
  - name: temperature
    mode: dynamic
    digits: 3
    budget: 4
  - name: clock
    mode: leading0
    width: 2
  - name: register
    mode: hex
`

func render(t *testing.T, r stream.Request) string {
	t.Helper()
	var b sink.Buffer
	require.NoError(t, stream.Render(&b, r))
	return b.String()
}

func TestLoad(t *testing.T) {
	set, err := Load(strings.NewReader(sampleProfiles))
	require.NoError(t, err)

	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []string{"clock", "register", "temperature", "voltage"}, set.Names())

	tests := []struct {
		profile string
		value   int64
		kind    stream.Kind
		want    string
	}{
		{profile: "voltage", value: 1234, kind: stream.KindFixed, want: "12.34"},
		{profile: "temperature", value: 123456, kind: stream.KindDynamic, want: "123.5"},
		{profile: "clock", value: 7, kind: stream.KindLeading0, want: "07"},
		{profile: "register", value: 255, kind: stream.KindBased, want: "FF"},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			p, err := set.Lookup(tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind())
			assert.Equal(t, tt.want, render(t, p.Request(tt.value)))
		})
	}
}

func TestLookupMissing(t *testing.T) {
	set, err := Load(strings.NewReader(sampleProfiles))
	require.NoError(t, err)

	_, err = set.Lookup("pressure")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadEmpty(t *testing.T) {
	set, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Names())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
		message string
	}{
		{
			name:    "missing name",
			doc:     "profiles:\n  - mode: fixed\n",
			invalid: true,
			message: "entry 0 has no name",
		},
		{
			name:    "duplicate name",
			doc:     "profiles:\n  - {name: a, mode: fixed}\n  - {name: a, mode: hex}\n",
			invalid: true,
			message: `duplicate name "a"`,
		},
		{
			name:    "unknown mode",
			doc:     "profiles:\n  - {name: a, mode: scientific}\n",
			invalid: true,
			message: "unknown request kind",
		},
		{
			name:    "non numeric mode",
			doc:     "profiles:\n  - {name: a, mode: text}\n",
			invalid: true,
			message: "does not format integers",
		},
		{
			name:    "dynamic without budget",
			doc:     "profiles:\n  - {name: a, mode: dynamic, digits: 2}\n",
			invalid: true,
			message: "positive budget",
		},
		{
			name:    "leading0 without width",
			doc:     "profiles:\n  - {name: a, mode: leading0}\n",
			invalid: true,
			message: "positive width",
		},
		{
			name:    "unknown field",
			doc:     "profiles:\n  - {name: a, mode: fixed, precision: 2}\n",
			message: "field precision not found",
		},
		{
			name:    "malformed yaml",
			doc:     "profiles: [",
			message: "failed to decode profiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfiles), 0o600))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
