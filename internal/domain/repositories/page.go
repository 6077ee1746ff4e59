package repositories

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-indexed pagination window.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps the requested window: number < 1 becomes 1, size < 1
// becomes DefaultPageSize and sizes above MaxPageSize are capped.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset saturates at math.MaxInt, so a page far past the end stays past
// the end instead of wrapping around.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Pages returns ceil(total / size).
func (p Page) Pages(total int64) int {
	if total <= 0 || p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
