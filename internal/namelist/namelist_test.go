package namelist_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jroosing/dnsname/internal/config"
	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/namelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(names []namelist.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

// ============================================================================
// Single Name Tests
// ============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		format   namelist.Format
		relative bool
		want     string
		absolute bool
	}{
		{"text absolute", "www.example.com.", namelist.FormatText, false, "www.example.com.", true},
		{"text relative", "www.example", namelist.FormatText, true, "www.example", false},
		{"hex absolute", "03 77 77 77 00", namelist.FormatHex, false, "www.", true},
		{"hex relative", "0x03777777", namelist.FormatHex, true, "www", false},
		{"hosts", "127.0.0.1 host.example", namelist.FormatHosts, false, "host.example.", true},
		{"auto hex", "03:77:77:77:00", namelist.FormatAuto, false, "www.", true},
		{"auto text", "example.org", namelist.FormatAuto, false, "example.org.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := namelist.Parse(tt.input, tt.format, tt.relative)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.absolute, n.IsAbsolute())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := namelist.Parse("03 77 77", namelist.FormatHex, false)
	assert.ErrorIs(t, err, dname.ErrShortData)

	_, err = namelist.Parse("zz", namelist.FormatHex, false)
	assert.Error(t, err)

	_, err = namelist.Parse("a..b", namelist.FormatText, false)
	assert.ErrorIs(t, err, dname.ErrBadText)

	_, err = namelist.Parse("10.0.0.1", namelist.FormatHosts, false)
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, namelist.FormatHex, namelist.FormatOf(config.InputHex))
	assert.Equal(t, namelist.FormatText, namelist.FormatOf(config.InputText))
	assert.Equal(t, namelist.FormatAuto, namelist.FormatOf(""))
}

// ============================================================================
// List Tests
// ============================================================================

func TestParser_ParseText(t *testing.T) {
	content := `# zone members
example.com
www.example.com  # inline comment

bad..name
`
	entries, err := namelist.NewParser(false).Parse(strings.NewReader(content), namelist.FormatText)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, 3, entries[1].Line)
	assert.Equal(t, "www.example.com", entries[1].Input)
	assert.Equal(t, 5, entries[2].Line)
	assert.ErrorIs(t, entries[2].Err, dname.ErrBadText)

	assert.Equal(t, []string{"example.com.", "www.example.com."}, strs(namelist.Valid(entries)))
}

func TestParser_ParseHostsAuto(t *testing.T) {
	content := `127.0.0.1 localhost
::1 ip6-localhost ip6-loopback
`
	entries, err := namelist.NewParser(false).Parse(strings.NewReader(content), namelist.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost.", "ip6-localhost.", "ip6-loopback."}, strs(namelist.Valid(entries)))
}

func TestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.hex")
	require.NoError(t, os.WriteFile(path, []byte("03 77 77 77 00\n0x0161c004\n"), 0o600))

	entries, err := namelist.NewParser(false).ParseFile(path, namelist.FormatHex)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NoError(t, entries[0].Err)
	assert.ErrorIs(t, entries[1].Err, dname.ErrCompressedName)
}

func TestParser_ParseFile_Missing(t *testing.T) {
	_, err := namelist.NewParser(false).ParseFile(filepath.Join(t.TempDir(), "nope"), namelist.FormatText)
	assert.Error(t, err)
}

func TestParser_ParseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/list" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("a.example\nb.example\n"))
	}))
	defer srv.Close()

	p := namelist.NewParser(true)
	entries, err := p.ParseURL(srv.URL+"/list", namelist.FormatText)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.example", "b.example"}, strs(namelist.Valid(entries)))

	_, err = p.ParseURL(srv.URL+"/missing", namelist.FormatText)
	assert.Error(t, err)
}

// ============================================================================
// Sorting and Labels
// ============================================================================

func TestSort(t *testing.T) {
	var names []namelist.Name
	for _, s := range []string{"z.example.", "Example.", "*.z.example.", "a.example.", "example."} {
		n, err := namelist.Parse(s, namelist.FormatText, false)
		require.NoError(t, err)
		names = append(names, n)
	}

	namelist.Sort(names)
	assert.Equal(t, []string{"Example.", "example.", "a.example.", "z.example.", "*.z.example."}, strs(names))
}

func TestLabels(t *testing.T) {
	labels := namelist.Labels(dname.MustFromString("*.ex\\.am.ple."))
	require.Len(t, labels, 4)

	assert.Equal(t, namelist.LabelInfo{Offset: 0, Length: 1, Text: "*", Wildcard: true}, labels[0])
	assert.Equal(t, namelist.LabelInfo{Offset: 2, Length: 5, Text: "ex\\.am"}, labels[1])
	assert.Equal(t, namelist.LabelInfo{Offset: 8, Length: 3, Text: "ple"}, labels[2])
	assert.Equal(t, 12, labels[3].Offset)
	assert.True(t, labels[3].Root)
}
