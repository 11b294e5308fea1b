package domain

// DefaultCounterKey is the store key holding the footer like count.
const DefaultCounterKey = "footer-likes"

// LikeCounter is a named, monotonically non-decreasing integer owned by the store.
type LikeCounter struct {
	Key   string
	Value int64
}
