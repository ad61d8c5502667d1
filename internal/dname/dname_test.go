package dname_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/octets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wecAbsWire = wecWire + "\x00"

func abs(t *testing.T, wire string) dname.Dname {
	t.Helper()
	n, err := dname.FromSlice([]byte(wire))
	require.NoError(t, err)
	return n
}

// longWire returns 25 labels of nine octets each, 250 octets in total.
func longWire() string {
	return strings.Repeat("\x09123456789", 25)
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestDname_Root(t *testing.T) {
	root := dname.Root()
	assert.Equal(t, "\x00", wireOf(root))
	assert.True(t, root.IsRoot())
	assert.True(t, root.IsAbsolute())
	assert.Equal(t, 1, root.Len())
	assert.Equal(t, 1, root.LabelCount())
	assert.True(t, root.First().IsRoot())
	assert.True(t, root.Last().IsRoot())
	assert.Equal(t, ".", root.String())
}

func TestDname_ZeroValueIsRoot(t *testing.T) {
	var n dname.Dname
	assert.True(t, n.IsRoot())
	assert.Equal(t, "\x00", wireOf(n))
	assert.True(t, n.Equal(dname.Root()))
}

func TestFromSlice_Valid(t *testing.T) {
	for _, wire := range []string{"\x00", "\x03www\x00", wecAbsWire} {
		n, err := dname.FromSlice([]byte(wire))
		require.NoError(t, err)
		assert.Equal(t, wire, wireOf(n))
	}
}

func TestFromSlice_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", dname.ErrShortData},
		{"relative", wecWire, dname.ErrRelativeName},
		{"data after root", "\x00\x03www", dname.ErrAbsoluteName},
		{"data after root is trailing", "\x03www\x00\x03com", dname.ErrTrailingData},
		{"short label", "\x03www\x07exam", dname.ErrShortData},
		{"compressed", "\x03www\xc0\x0c", dname.ErrCompressedName},
		{"extended label type", "\x41a\x00", dname.ErrBadLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dname.FromSlice([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromSlice_NameLengthLimit(t *testing.T) {
	ok := longWire() + "\x03123\x00"
	require.Len(t, ok, 255)
	_, err := dname.FromSlice([]byte(ok))
	require.NoError(t, err)

	long := longWire() + "\x041234\x00"
	require.Len(t, long, 256)
	_, err = dname.FromSlice([]byte(long))
	assert.ErrorIs(t, err, dname.ErrLongName)
}

func TestFromOctets_Nil(t *testing.T) {
	_, err := dname.FromOctets(nil)
	assert.ErrorIs(t, err, dname.ErrShortData)
}

func TestFromBytes_Owned(t *testing.T) {
	n, err := dname.FromBytes(octets.CopyBytes([]byte(wecAbsWire)))
	require.NoError(t, err)
	_, isBytes := n.Octets().(octets.Bytes)
	assert.True(t, isBytes)
	assert.Equal(t, "www.example.com.", n.String())
}

// =============================================================================
// Label Access Tests
// =============================================================================

func TestDname_Iter(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.Equal(t, []string{"www", "example", "com", ""}, labelStrings(wec.Iter(), false))
	assert.Equal(t, []string{"", "com", "example", "www"}, labelStrings(wec.Iter(), true))
	assert.Equal(t, 4, wec.LabelCount())
	assert.Equal(t, "www", string(wec.First().Payload()))
	assert.True(t, wec.Last().IsRoot())
}

func TestDname_IsLabelStart(t *testing.T) {
	wec := abs(t, wecAbsWire)
	starts := map[int]bool{0: true, 4: true, 12: true, 16: true, 17: true}
	for i := -1; i <= 19; i++ {
		assert.Equal(t, starts[i], wec.IsLabelStart(i), "index %d", i)
	}
}

func TestDname_StartsWithEndsWith(t *testing.T) {
	wec := abs(t, wecAbsWire)

	assert.True(t, wec.StartsWith(dname.StaticEmpty()))
	assert.True(t, wec.StartsWith(rel(t, "\x03www\x07example")))
	assert.True(t, wec.StartsWith(wec))
	assert.False(t, wec.StartsWith(rel(t, "\x07example")))

	assert.True(t, wec.EndsWith(dname.Root()))
	assert.True(t, wec.EndsWith(abs(t, "\x07example\x03com\x00")))
	assert.True(t, wec.EndsWith(abs(t, "\x03COM\x00")))
	assert.False(t, wec.EndsWith(abs(t, "\x03net\x00")))
	assert.False(t, wec.EndsWith(rel(t, "\x03com")), "a relative name lacks the root label")
}

// =============================================================================
// Slicing Tests
// =============================================================================

func TestDname_Range(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.Equal(t, "\x03www", wireOf(wec.Range(0, 4)))
	assert.Equal(t, "\x07example\x03com", wireOf(wec.Range(4, 16)))
	assert.Equal(t, wecWire, wireOf(wec.Range(0, 16)))

	for _, r := range [][2]int{{0, 17}, {0, 3}, {5, 12}, {12, 4}, {17, 17}} {
		assert.Panics(t, func() { wec.Range(r[0], r[1]) }, "range(%d, %d)", r[0], r[1])
	}
}

func TestDname_RangeFrom(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.Equal(t, wecAbsWire, wireOf(wec.RangeFrom(0)))
	assert.Equal(t, "\x03com\x00", wireOf(wec.RangeFrom(12)))
	assert.True(t, wec.RangeFrom(16).IsRoot())

	assert.Panics(t, func() { wec.RangeFrom(17) })
	assert.Panics(t, func() { wec.RangeFrom(2) })
}

func TestDname_RangeTo(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.Equal(t, "", wireOf(wec.RangeTo(0)))
	assert.Equal(t, "\x03www\x07example", wireOf(wec.RangeTo(12)))
	assert.Equal(t, wecWire, wireOf(wec.RangeTo(16)))

	assert.Panics(t, func() { wec.RangeTo(17) })
	assert.Panics(t, func() { wec.RangeTo(13) })
}

func TestDname_SplitAt(t *testing.T) {
	wec := abs(t, wecAbsWire)
	left, right := wec.SplitAt(4)
	assert.Equal(t, "\x03www", wireOf(left))
	assert.Equal(t, "\x07example\x03com\x00", wireOf(right))

	left, right = wec.SplitAt(16)
	assert.Equal(t, wecWire, wireOf(left))
	assert.True(t, right.IsRoot())

	assert.Panics(t, func() { wec.SplitAt(17) })
}

func TestDname_SplitTo(t *testing.T) {
	wec := abs(t, wecAbsWire)
	tmp := wec
	assert.Equal(t, "\x03www\x07example", wireOf(tmp.SplitTo(12)))
	assert.Equal(t, "\x03com\x00", wireOf(tmp))

	tmp = wec
	assert.Panics(t, func() { tmp.SplitTo(17) })
	assert.Equal(t, wecAbsWire, wireOf(tmp))
}

func TestDname_Truncate(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.Equal(t, "\x03www", wireOf(wec.Truncate(4)))
	assert.Equal(t, wecWire, wireOf(wec.Truncate(16)))
	assert.Panics(t, func() { wec.Truncate(17) })
	assert.Panics(t, func() { wec.Truncate(5) })
}

func TestDname_SplitFirst(t *testing.T) {
	wec := abs(t, wecAbsWire)

	for _, want := range []struct{ first, rest string }{
		{"\x03www", "\x07example\x03com\x00"},
		{"\x07example", "\x03com\x00"},
		{"\x03com", "\x00"},
	} {
		first, ok := wec.SplitFirst()
		require.True(t, ok)
		assert.Equal(t, want.first, wireOf(first))
		assert.Equal(t, want.rest, wireOf(wec))
	}

	_, ok := wec.SplitFirst()
	assert.False(t, ok)
	assert.True(t, wec.IsRoot())
}

func TestDname_Parent(t *testing.T) {
	wec := abs(t, wecAbsWire)
	var got []string
	for wec.Parent() {
		got = append(got, wec.String())
	}
	assert.Equal(t, []string{"example.com.", "com.", "."}, got)
	assert.False(t, wec.Parent())
}

func TestDname_StripSuffix(t *testing.T) {
	wec := abs(t, wecAbsWire)

	r, err := wec.StripSuffix(abs(t, "\x07example\x03com\x00"))
	require.NoError(t, err)
	assert.Equal(t, "\x03www", wireOf(r))

	r, err = wec.StripSuffix(dname.Root())
	require.NoError(t, err)
	assert.Equal(t, wecWire, wireOf(r))

	r, err = wec.StripSuffix(wec)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())

	_, err = wec.StripSuffix(abs(t, "\x07example\x03net\x00"))
	assert.ErrorIs(t, err, dname.ErrSuffixNotFound)

	_, err = wec.StripSuffix(rel(t, "\x03com"))
	assert.ErrorIs(t, err, dname.ErrSuffixNotFound)
	assert.ErrorIs(t, err, dname.ErrRelativeName)

	assert.Equal(t, wecAbsWire, wireOf(wec))
}

// =============================================================================
// Equality, Ordering and Hash Tests
// =============================================================================

func TestDname_Equal(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.True(t, wec.Equal(abs(t, "\x03WWW\x07Example\x03coM\x00")))
	assert.False(t, wec.Equal(rel(t, wecWire)))
	assert.False(t, wec.Equal(abs(t, "\x07example\x03com\x00")))

	c, err := rel(t, "\x03www").Chain(abs(t, "\x07example\x03com\x00"))
	require.NoError(t, err)
	assert.True(t, wec.Equal(c))
	assert.Equal(t, wec.Hash(), c.Hash())
}

func TestDname_Compare(t *testing.T) {
	names := []dname.Dname{
		dname.Root(),
		abs(t, "\x03com\x00"),
		abs(t, "\x07example\x03com\x00"),
		abs(t, "\x01a\x07example\x03com\x00"),
		abs(t, wecAbsWire),
		abs(t, "\x03net\x00"),
	}
	for i := range names {
		for j := range names {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, names[i].Compare(names[j]), "%s vs %s", names[i], names[j])
		}
	}
}

func TestDname_Hash(t *testing.T) {
	a := abs(t, wecAbsWire)
	b := abs(t, "\x03wWw\x07EXAMPLE\x03cOm\x00")
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), abs(t, "\x03www\x07example\x03net\x00").Hash())
}

// =============================================================================
// Presentation Tests
// =============================================================================

func TestDname_String(t *testing.T) {
	assert.Equal(t, "www.example.com.", abs(t, wecAbsWire).String())
	assert.Equal(t, `a\.b.example.`, abs(t, "\x03a.b\x07example\x00").String())
	assert.Equal(t, `\000.`, abs(t, "\x01\x00\x00").String())
	assert.Equal(t, "Dname(www.example.com.)", fmt.Sprintf("%#v", abs(t, wecAbsWire)))
	assert.Equal(t, "www.example.com.", fmt.Sprint(abs(t, wecAbsWire)))
}

func TestDname_Compose(t *testing.T) {
	wec := abs(t, wecAbsWire)
	assert.Equal(t, 17, wec.ComposeLen())
	assert.Equal(t, "\xff"+wecAbsWire, string(wec.Compose([]byte{0xff})))
	assert.Equal(t, wecAbsWire, string(dname.Bytes(wec)))
}
