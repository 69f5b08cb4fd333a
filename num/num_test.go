package num

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		raw    int
		expect int
	}){
		{0, 0},
		{1, 1},
		{-1, -1},
		{998, 998},
		{999, 999},
		{1000, 999},
		{32767, 999},
		{1 << 30, 999},
		{-999, -999},
		{-1000, -999},
		{-32768, -999},
		{-(1 << 30), -999},
	}

	for _, entry := range table {
		n := From(entry.raw)
		assert.Equal(entry.expect, n.Int(), fmt.Sprintf("%+v", entry))
		assert.LessOrEqual(n.Int(), NUM_MAX)
		assert.GreaterOrEqual(n.Int(), NUM_MIN)
	}
}

func TestAddSub(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b     int
		add, sub int
	}){
		{0, 0, 0, 0},
		{1, 2, 3, -1},
		{999, 500, 999, 499},
		{999, 999, 999, 0},
		{-999, -999, -999, 0},
		{-999, 1, -998, -999},
		{500, -600, -100, 999},
		{-500, 600, 100, -999},
	}

	for _, entry := range table {
		a := From(entry.a)
		b := From(entry.b)
		assert.Equal(From(entry.add), a.Add(b), fmt.Sprintf("%+v", entry))
		assert.Equal(From(entry.sub), a.Sub(b), fmt.Sprintf("%+v", entry))
	}

	assert.Equal(From(999), From(999).Add(From(500)))
}

func TestNeg(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(From(0), From(0).Neg())
	assert.Equal(From(-5), From(5).Neg())
	assert.Equal(From(-999), From(999).Neg())

	for v := NUM_MIN + 1; v <= NUM_MAX; v++ {
		n := From(v)
		assert.Equal(n, n.Neg().Neg())
	}

	// Range is symmetric, so the lower bound round-trips as well.
	assert.Equal(From(999), From(-999).Neg())
	assert.Equal(From(-999), From(-999).Neg().Neg())
}

func TestBytes(t *testing.T) {
	assert := assert.New(t)

	for v := NUM_MIN; v <= NUM_MAX; v++ {
		n := From(v)
		hi, lo := n.Bytes()
		assert.Equal(n, FromBytes(hi, lo))
	}

	hi, lo := From(42).Bytes()
	assert.Equal(uint8(0x00), hi)
	assert.Equal(uint8(42), lo)

	hi, lo = From(-1).Bytes()
	assert.Equal(uint8(0xff), hi)
	assert.Equal(uint8(0xff), lo)

	hi, lo = From(999).Bytes()
	assert.Equal(uint8(0x03), hi)
	assert.Equal(uint8(0xe7), lo)
}

func TestFromBytesClamps(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(From(999), FromBytes(0x05, 0xdc))  // 1500
	assert.Equal(From(999), FromBytes(0x7f, 0xff))  // 32767
	assert.Equal(From(-999), FromBytes(0x80, 0x00)) // -32768
	assert.Equal(From(-999), FromBytes(0xfc, 0x18)) // -1000
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, From(3).Compare(From(3)))
	assert.Equal(-1, From(-3).Compare(From(3)))
	assert.Equal(1, From(3).Compare(From(-3)))
	assert.Equal(0, From(5000).Compare(From(999)))

	assert.Equal(0, Num{}.Sign())
	assert.Equal(1, From(1).Sign())
	assert.Equal(-1, From(-1).Sign())
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0", Num{}.String())
	assert.Equal("-42", From(-42).String())
	assert.Equal("999", From(12345).String())
	assert.Equal("v=7", fmt.Sprintf("v=%v", From(7)))
}
