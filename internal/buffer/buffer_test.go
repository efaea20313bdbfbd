package buffer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndbuf/internal/dtype"
	"github.com/born-ml/ndbuf/internal/errs"
)

func TestMakeKind(t *testing.T) {
	for k := dtype.Bool; k <= dtype.Uint64; k++ {
		b, err := MakeKind(k, 3)
		require.NoError(t, err, k.String())
		assert.Equal(t, k, b.Kind())
		assert.Equal(t, 3, b.Len())
		assert.True(t, b.CanRead())
		assert.True(t, b.CanWrite())
	}
	_, err := MakeKind(dtype.Int32, -1)
	assert.True(t, errors.Is(err, errs.ErrRange))
}

func TestWriteThenReadEveryKind(t *testing.T) {
	for k := dtype.Bool; k <= dtype.Uint64; k++ {
		b, err := MakeKind(k, 4)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			require.NoError(t, b.WriteInt64(i, int64(i%2)))
		}
		for i := 0; i < 4; i++ {
			v, err := b.ReadInt64(i)
			require.NoError(t, err)
			assert.Equal(t, int64(i%2), v, k.String())
		}
	}
}

func TestTypedCoercingAccess(t *testing.T) {
	b := Wrap([]int16{1, -2, 300})

	f, err := b.ReadFloat64(1)
	require.NoError(t, err)
	assert.Equal(t, -2.0, f)

	ok, err := b.ReadBool(0)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, b.WriteFloat64(0, -7.9))
	v, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, int16(-7), v)

	require.NoError(t, b.WriteInt64(1, 70000))
	v, _ = b.Get(1)
	assert.Equal(t, int16(4464), v)

	require.NoError(t, b.WriteBool(2, true))
	v, _ = b.Get(2)
	assert.Equal(t, int16(1), v)

	o, err := b.ReadObject(2)
	require.NoError(t, err)
	assert.Equal(t, int16(1), o)

	require.NoError(t, b.WriteObject(2, 12.5))
	v, _ = b.Get(2)
	assert.Equal(t, int16(12), v)
	assert.True(t, errors.Is(b.WriteObject(2, "x"), errs.ErrUnsupported))
}

func TestUnsignedInterpretation(t *testing.T) {
	raw := Wrap([]int8{-1, 100, -128})
	u, err := raw.AsUnsigned()
	require.NoError(t, err)
	assert.Equal(t, dtype.Uint8, u.Kind())

	v, err := u.ReadInt64(0)
	require.NoError(t, err)
	assert.Equal(t, int64(255), v)

	f, err := u.ReadFloat64(2)
	require.NoError(t, err)
	assert.Equal(t, 128.0, f)

	o, err := u.ReadObject(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), o)

	require.NoError(t, u.WriteFloat64(1, 200))
	assert.Equal(t, int8(-56), raw.Slice()[1])

	wide, err := Make[int64](1).AsUnsigned()
	require.NoError(t, err)
	require.NoError(t, wide.WriteFloat64(0, 1e19))
	got, err := wide.ReadUint64(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(10000000000000000000), got)

	_, err = Make[float32](1).AsUnsigned()
	assert.True(t, errors.Is(err, errs.ErrUnsupported))
}

func TestBoundsChecks(t *testing.T) {
	b := Make[float64](3)
	_, err := b.ReadFloat64(3)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	_, err = b.Get(-1)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	assert.True(t, errors.Is(b.WriteInt64(5, 1), errs.ErrIndexOutOfRange))
	assert.Equal(t, []float64{0, 0, 0}, b.Slice(), "failed write must not mutate")
}

func TestSubBufferAliases(t *testing.T) {
	b := Wrap([]int32{0, 1, 2, 3, 4, 5})
	sub, err := b.Sub(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Len())

	require.NoError(t, sub.Set(0, 42))
	assert.Equal(t, int32(42), b.Slice()[2])

	_, err = sub.Get(3)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))

	for _, r := range [][2]int{{-1, 2}, {4, 2}, {0, 7}} {
		_, err := b.SubBuffer(r[0], r[1])
		assert.True(t, errors.Is(err, errs.ErrRange), "%v", r)
	}

	empty, err := b.SubBuffer(6, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestPermissions(t *testing.T) {
	b := Wrap([]float32{1, 2})
	ro := ReadOnly(b)
	assert.True(t, ro.CanRead())
	assert.False(t, ro.CanWrite())
	assert.True(t, errors.Is(ro.WriteFloat64(0, 3), errs.ErrUnsupported))
	v, err := ro.ReadFloat64(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	wo := WriteOnly(b)
	_, err = wo.ReadInt64(0)
	assert.True(t, errors.Is(err, errs.ErrUnsupported))
	require.NoError(t, wo.WriteInt64(0, 9))
	assert.Equal(t, float32(9), b.Slice()[0])

	sub, err := ro.SubBuffer(0, 1)
	require.NoError(t, err)
	assert.False(t, sub.CanWrite())

	narrowed := b.Restrict(AccessRead)
	assert.Equal(t, []float32{9, 2}, narrowed.Slice())
	assert.False(t, narrowed.CanWrite())
	assert.True(t, b.Restrict(ReadWrite).CanWrite())
	assert.False(t, narrowed.Restrict(ReadWrite).CanWrite(), "restrict only narrows")

	r := ReadOnly(NewArange(0, 1, 3))
	assert.False(t, r.CanWrite())
	_, err = WriteOnly(r).ReadInt64(0)
	assert.True(t, errors.Is(err, errs.ErrUnsupported))
}

func TestObjects(t *testing.T) {
	b := WrapObjects([]any{int32(3), "label", 2.5, nil})
	v, err := b.ReadInt64(0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = b.ReadFloat64(1)
	assert.True(t, errors.Is(err, errs.ErrUnsupported))

	f, err := Read[float32](b, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)

	require.NoError(t, b.WriteUint64(3, 7))
	o, _ := b.ReadObject(3)
	assert.Equal(t, uint64(7), o)

	sub, err := b.SubBuffer(1, 2)
	require.NoError(t, err)
	s, _ := sub.ReadObject(0)
	assert.Equal(t, "label", s)
}

func TestArange(t *testing.T) {
	a := NewArange(10, -3, 4)
	got, err := ToSlice[int64](a)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 7, 4, 1}, got)
	assert.False(t, a.CanWrite())
	assert.True(t, errors.Is(a.WriteInt64(0, 1), errs.ErrUnsupported))

	sub, err := a.SubBuffer(1, 3)
	require.NoError(t, err)
	got, _ = ToSlice[int64](sub)
	assert.Equal(t, []int64{7, 4}, got)

	_, err = a.ReadFloat64(4)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
	assert.Equal(t, 0, NewArange(0, 1, -5).Len())
}

func TestListAppendContract(t *testing.T) {
	var app Appender = NewList[int32](2)
	app.AppendInt64(1)
	app.AppendFloat64(2.7)
	app.AppendBool(true)
	require.NoError(t, app.AppendObject(uint8(9)))
	assert.Error(t, app.AppendObject("x"))
	assert.Equal(t, dtype.Int32, app.Kind())
	assert.Equal(t, 4, app.Len())

	l := app.(*List[int32])
	frozen := l.Freeze()
	assert.Equal(t, []int32{1, 2, 1, 9}, frozen.Slice())
	assert.Equal(t, 0, l.Len())

	l.Append(5)
	assert.Equal(t, []int32{1, 2, 1, 9}, frozen.Slice(), "frozen buffer must not see later appends")
}

func TestGenericReadWrite(t *testing.T) {
	b := Wrap([]float64{1.9, -0.5, math.NaN()})
	i, err := Read[int8](b, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(1), i)

	ok, err := Read[bool](b, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Write[uint16](b, 1, 65535))
	assert.Equal(t, 65535.0, b.Slice()[1])

	u, err := MakeKind(dtype.Uint32, 1)
	require.NoError(t, err)
	require.NoError(t, Write[int64](u, 0, -1))
	got, err := Read[uint64](u, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint32), got)

	_, err = Read[int32](b, 9)
	assert.True(t, errors.Is(err, errs.ErrIndexOutOfRange))
}

func TestCopy(t *testing.T) {
	src := Wrap([]float32{1.5, -2, 3})
	dst := Make[int64](3)
	require.NoError(t, Copy(dst, src))
	assert.Equal(t, []int64{1, -2, 3}, dst.Slice())

	assert.True(t, errors.Is(Copy(Make[int64](2), src), errs.ErrRange))
}
