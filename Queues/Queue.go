package Queues

// Queue is a FIFO container. Pop on an empty Queue returns EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Empty() bool
	Size() uint
	//Clear drops every item.
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
