package model

// Page is one slice of a larger result set.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	TotalPages    int
	Number        int
	Size          int
}

func NewPage[T any](content []T, number, size int, total int64) Page[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		Number:        number,
		Size:          size,
	}
}
