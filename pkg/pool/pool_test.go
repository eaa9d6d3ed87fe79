package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlassian/lwes"
	"github.com/atlassian/lwes/internal/fixtures"
)

func TestEventPoolReturnsEmptyEvents(t *testing.T) {
	t.Parallel()
	ep := NewEventPool(nil)

	e := ep.Get()
	require.NoError(t, e.SetName("First"))
	_, err := e.SetUint16("a", 1)
	require.NoError(t, err)
	ep.Put(e)

	e = ep.Get()
	assert.False(t, e.HasName())
	assert.Zero(t, e.NumAttributes())
	require.NoError(t, e.SetName("Second"))
	_, err = e.SetUint16("a", 2)
	require.NoError(t, err)

	ep.Put(nil)
}

func TestPooledRoundTrip(t *testing.T) {
	t.Parallel()
	ep := NewEventPool(nil)
	dbufs := NewDeserializeBuffers()
	ebufs := NewEncodeBuffers()

	src := fixtures.MakeEvent("Pooled", fixtures.Encoding(lwes.EncodingUTF8), fixtures.AllTypes)

	for i := 0; i < 3; i++ {
		buf := ebufs.Get(src.EncodedSize())
		assert.Len(t, *buf, lwes.MaxEventSize)
		n, err := src.ToBytes(*buf, 0)
		require.NoError(t, err)

		dst := ep.Get()
		tmp := dbufs.Get()
		consumed, err := dst.FromBytes((*buf)[:n], 0, tmp)
		require.NoError(t, err)
		assert.Equal(t, n, consumed)
		assert.True(t, src.Equal(dst), "%s != %s", src, dst)

		dbufs.Put(tmp)
		ep.Put(dst)
		ebufs.Put(buf)
	}
}

func TestEncodeBuffersFitLongestString(t *testing.T) {
	t.Parallel()
	ebufs := NewEncodeBuffers()
	src := fixtures.MakeEvent("E", fixtures.String("s", strings.Repeat("s", lwes.LongStringMax)))
	size := src.EncodedSize()
	require.Greater(t, size, lwes.MaxEventSize)

	buf := ebufs.Get(size)
	require.GreaterOrEqual(t, len(*buf), size)
	n, err := src.ToBytes(*buf, 0)
	require.NoError(t, err)
	assert.Equal(t, size, n)

	got, err := lwes.Decode(nil, (*buf)[:n])
	require.NoError(t, err)
	assert.True(t, src.Equal(got))
	ebufs.Put(buf)

	// A grown buffer serves smaller requests at its full length.
	small := ebufs.Get(1)
	assert.GreaterOrEqual(t, len(*small), lwes.MaxEventSize)
	ebufs.Put(small)
}
