package dname_test

import (
	"bytes"
	"slices"
	"sync"
	"testing"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_SortsCanonically(t *testing.T) {
	names := make([]dname.Name, 0, len(rfc4034Order))
	for i := len(rfc4034Order) - 1; i >= 0; i-- {
		names = append(names, rel(t, rfc4034Order[i]))
	}
	slices.SortFunc(names, dname.Compare)

	got := make([]string, len(names))
	for i, n := range names {
		got[i] = string(dname.Bytes(n))
	}
	assert.Equal(t, rfc4034Order, got)
}

func TestCompare_MixedKinds(t *testing.T) {
	c, err := rel(t, "\x03www").Chain(abs(t, "\x07example\x03com\x00"))
	require.NoError(t, err)

	assert.Equal(t, 0, dname.Compare(c, abs(t, wecAbsWire)))
	assert.Equal(t, 0, dname.Compare(dname.EmptyRelative(), dname.StaticEmpty()))
	assert.Equal(t, -1, dname.Compare(dname.StaticEmpty(), dname.Root()))
}

func TestCompare_Concurrent(t *testing.T) {
	a := rel(t, wecWire)
	b := rel(t, "\x03www\x07example\x03net")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, -1, dname.Compare(a, b))
				assert.Equal(t, 1, dname.Compare(b, a))
			}
		}()
	}
	wg.Wait()
}

func TestEqual_LabelStructure(t *testing.T) {
	// Same octets, different label boundaries.
	a := rel(t, "\x03abc\x01d")
	b := rel(t, "\x01a\x03bcd")
	assert.False(t, dname.Equal(a, b))
	assert.NotEqual(t, dname.Hash(a), dname.Hash(b))
}

func TestHash_MapKey(t *testing.T) {
	seen := map[uint64]string{}
	for _, s := range []string{"www.example.com", "WWW.Example.COM", "example.com", "www.example.net"} {
		n := dname.MustRelativeFromString(s)
		if _, ok := seen[n.Hash()]; !ok {
			seen[n.Hash()] = s
		}
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, "www.example.com", seen[dname.MustRelativeFromString("wWw.eXample.cOm").Hash()])
}

func TestCollect(t *testing.T) {
	labels := dname.Collect(abs(t, wecAbsWire).Iter())
	require.Len(t, labels, 4)
	assert.Equal(t, "example", string(labels[1].Payload()))
	assert.True(t, labels[3].IsRoot())
	assert.Empty(t, dname.Collect(dname.StaticEmpty().Iter()))
}

func BenchmarkCompare(b *testing.B) {
	x := dname.MustFromString("www.example.com.")
	y := dname.MustFromString("mail.example.com.")
	b.ReportAllocs()
	for b.Loop() {
		_ = dname.Compare(x, y)
	}
}

func TestCanonicalKey_MatchesCompare(t *testing.T) {
	names := []dname.Name{
		dname.Root(),
		dname.StaticEmpty(),
		rel(t, "\x03com"),
		abs(t, "\x03com\x00"),
		rel(t, "\x01a"),
		rel(t, "\x02a\x00"),
		rel(t, "\x02a\x01"),
		rel(t, "\x02A\xff"),
		abs(t, wecAbsWire),
		abs(t, "\x03WWW\x07example\x03com\x00"),
	}
	for _, wire := range rfc4034Order {
		names = append(names, rel(t, wire))
	}

	for _, a := range names {
		for _, b := range names {
			want := dname.Compare(a, b)
			got := bytes.Compare(dname.CanonicalKey(a), dname.CanonicalKey(b))
			assert.Equal(t, want, got, "%q vs %q", dname.Bytes(a), dname.Bytes(b))
		}
	}
}

func TestCanonicalKey_Encoding(t *testing.T) {
	assert.Equal(t, []byte("com\x00\x00www\x00\x00"), dname.CanonicalKey(rel(t, "\x03WWW\x03Com")))
	assert.Equal(t, []byte("\x00\x00com\x00\x00"), dname.CanonicalKey(abs(t, "\x03com\x00")))
	assert.Equal(t, []byte("a\x00\xff\x00\x00"), dname.CanonicalKey(rel(t, "\x02a\x00")))
	assert.Empty(t, dname.CanonicalKey(dname.StaticEmpty()))
}
