package counters

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Counter is an unbounded natural number.
// Decrementing zero yields zero. The zero value is zero.
//
// Values that fit in a uint64 are stored inline, larger ones in an apd.BigInt.
// A Counter is immutable and safe to copy.
type Counter struct {
	small uint64
	big   *apd.BigInt // non-nil only above math.MaxUint64
}

var Zero Counter

var ErrInvalid = errors.New("invalid counter")

var (
	bigOne      = apd.NewBigInt(1)
	bigMaxSmall = new(apd.BigInt).SetUint64(math.MaxUint64)
)

func FromUint64(n uint64) Counter {
	return Counter{
		small: n,
	}
}

// Parse reads a decimal natural number.
func Parse(str string) (Counter, error) {
	if str == "" {
		return Zero, fmt.Errorf("%w: empty", ErrInvalid)
	}
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return Zero, fmt.Errorf("%w: %q", ErrInvalid, str)
		}
	}
	n, err := strconv.ParseUint(str, 10, 64)
	if err == nil {
		return FromUint64(n), nil
	}
	b, ok := new(apd.BigInt).SetString(str, 10)
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrInvalid, str)
	}
	return fromBig(b), nil
}

func fromBig(b *apd.BigInt) Counter {
	if b.IsUint64() {
		return FromUint64(b.Uint64())
	}
	return Counter{
		big: b,
	}
}

func (c Counter) Increment() Counter {
	if c.big == nil {
		if c.small < math.MaxUint64 {
			return FromUint64(c.small + 1)
		}
		return Counter{
			big: new(apd.BigInt).Add(bigMaxSmall, bigOne),
		}
	}
	return Counter{
		big: new(apd.BigInt).Add(c.big, bigOne),
	}
}

func (c Counter) Decrement() Counter {
	if c.big == nil {
		if c.small == 0 {
			return c
		}
		return FromUint64(c.small - 1)
	}
	return fromBig(new(apd.BigInt).Sub(c.big, bigOne))
}

func (c Counter) IsZero() bool {
	return c.big == nil && c.small == 0
}

// Uint64 returns the value and whether it fits in a uint64.
func (c Counter) Uint64() (uint64, bool) {
	if c.big != nil {
		return 0, false
	}
	return c.small, true
}

// BigInt returns a fresh copy of the value.
func (c Counter) BigInt() *apd.BigInt {
	if c.big != nil {
		return new(apd.BigInt).Set(c.big)
	}
	return new(apd.BigInt).SetUint64(c.small)
}

func (c Counter) Cmp(other Counter) int {
	switch {
	case c.big == nil && other.big == nil:
		switch {
		case c.small < other.small:
			return -1
		case c.small > other.small:
			return 1
		}
		return 0
	case c.big == nil:
		return -1
	case other.big == nil:
		return 1
	}
	return c.big.Cmp(other.big)
}

func (c Counter) Equal(other Counter) bool {
	return c.Cmp(other) == 0
}

func (c Counter) String() string {
	if c.big != nil {
		return c.big.String()
	}
	return strconv.FormatUint(c.small, 10)
}
