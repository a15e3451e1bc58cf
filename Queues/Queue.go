package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The zero value is returned on an empty queue.
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e EmptyQueueError) Error() string {
	return "queue is empty: cannot pop"
}
