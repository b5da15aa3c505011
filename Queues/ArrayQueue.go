package Queues

// ArrayQueue is a growable circular buffer. The zero value is usable.
// It is not safe for concurrent use.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize moves the live items to the front of a new buffer of length newLen > sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

// Clear drops all items but keeps the buffer for reuse.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}
