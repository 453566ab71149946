package dt

import "fmt"

// Pair represents a key-value pair. Enumerated sequences produce
// pairs whose key is the position of the value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// MakePair builds a Pair, letting the compiler infer K and V.
func MakePair[K comparable, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }

// Split returns the key and value as separate values.
func (p Pair[K, V]) Split() (K, V) { return p.Key, p.Value }

func (p Pair[K, V]) String() string { return fmt.Sprintf("(%v, %v)", p.Key, p.Value) }
