package list

func (l *List[T]) Slots() int     { return len(l.nodes) }
func (l *List[T]) FreeSlots() int { return len(l.free) }
func (l *List[T]) Epoch() uint64  { return l.epoch }

// Corrupt points the head's prev link at the tail, for exercising Validate.
func (l *List[T]) Corrupt() { l.at(l.head).prev = l.tail }
