package pmap

import (
	"math"
	"sync"
	"unicode/utf16"

	"github.com/pkg/errors"
)

// ErrUnhashableKey is the cause of the panic raised when a key of an
// unsupported kind is used with any Map operation. Use errors.Cause to
// test for it.
var ErrUnhashableKey = errors.New("unhashable key")

// Hasher is implemented by user defined key types. HashCode must be stable
// for the lifetime of the key; equal keys must return equal hash codes.
type Hasher interface {
	HashCode() uint32
}

// hashModulus is the reduction modulus for numeric keys; 2^31-1.
const hashModulus = 1<<31 - 1

// HashCacheCapacity is the maximum number of string hashes memoized before
// the cache is cleared wholesale. It should not be changed while Maps are
// in use on other goroutines.
var HashCacheCapacity = 255

var stringHashCache = struct {
	sync.Mutex
	hashes map[string]uint32
}{hashes: make(map[string]uint32)}

// Hash maps a key to its 32 bit hash value. nil, false and 0 hash to 0,
// true hashes to 1, numbers are floored and reduced mod 2^31-1, strings use
// a 31-polynomial over their UTF-16 code units, and any other type must
// implement Hasher. Hash panics with an error caused by ErrUnhashableKey
// for unsupported kinds.
func Hash(k interface{}) uint32 {
	switch k := k.(type) {
	case nil:
		return 0
	case bool:
		if k {
			return 1
		}
		return 0
	case int:
		return hashInt(int64(k))
	case int8:
		return hashInt(int64(k))
	case int16:
		return hashInt(int64(k))
	case int32:
		return hashInt(int64(k))
	case int64:
		return hashInt(k)
	case uint:
		return uint32(uint64(k) % hashModulus)
	case uint8:
		return uint32(uint64(k) % hashModulus)
	case uint16:
		return uint32(uint64(k) % hashModulus)
	case uint32:
		return k % hashModulus
	case uint64:
		return uint32(k % hashModulus)
	case float32:
		return hashFloat(float64(k))
	case float64:
		return hashFloat(k)
	case string:
		return hashString(k)
	case Hasher:
		return k.HashCode()
	}
	panic(errors.Wrapf(ErrUnhashableKey, "key type %T", k))
}

func hashInt(i int64) uint32 {
	var m = i % hashModulus
	if m < 0 {
		m += hashModulus
	}
	return uint32(m)
}

func hashFloat(f float64) uint32 {
	return hashInt(int64(math.Floor(f)))
}

// hashString computes the polynomial h = 31*h + c over the UTF-16 code
// units of s. Results are memoized; when the cache reaches
// HashCacheCapacity it is dropped and rebuilt.
func hashString(s string) uint32 {
	stringHashCache.Lock()
	if h, ok := stringHashCache.hashes[s]; ok {
		stringHashCache.Unlock()
		return h
	}

	var h uint32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = 31*h + uint32(cu)
	}

	if len(stringHashCache.hashes) >= HashCacheCapacity {
		stringHashCache.hashes = make(map[string]uint32, HashCacheCapacity)
	}
	stringHashCache.hashes[s] = h
	stringHashCache.Unlock()

	return h
}
