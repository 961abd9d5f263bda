package nast

// ringSize is the fixed capacity of the ring stage, in bytes. One slot is
// always reserved so that start == end means empty, never full.
const ringSize = 16384

// heapChunk is one node of the overflow list: a byte slice plus how much
// of it has already been committed (peeked-and-consumed).
type heapChunk struct {
	data    []byte
	written int
	next    *heapChunk
	prev    *heapChunk
}

type returnable int

const (
	returnNone returnable = iota
	returnRing
	returnHeap
)

// WritableQueue is the byte queue from the emulator to the host pty: a
// bounded ring with an unbounded heap-chunk overflow list, FIFO across both
// stages, and a single uncommitted "return window" supporting rewind after
// a short write. It is a direct transliteration of nast's writable.c ring
// design into Go, since that file implements exactly this component.
type WritableQueue struct {
	ring       [ringSize]byte
	start, end int // [start, end) is the live region, mod ringSize

	head, tail *heapChunk // doubly linked list, FIFO: head is oldest

	// Bookkeeping for the current peek cycle. A cycle begins at Peek and
	// ends at the next call to Peek or Append. retLen is bytes from the
	// peeked slice not yet committed; committed is bytes committed so far
	// this cycle (the maximum Rewind can undo); rewound marks that Rewind
	// has already been used once this cycle.
	ret       returnable
	retLen    int
	committed int
	rewound   bool
}

// NewWritableQueue returns an empty queue.
func NewWritableQueue() *WritableQueue {
	return &WritableQueue{}
}

func (w *WritableQueue) ringLen() int {
	if w.start > w.end {
		return ringSize - w.start + w.end
	}
	return w.end - w.start
}

// dropReturnable finalizes the most recent peek: a heap chunk that has
// been fully committed is unlinked and released. Called at the top of
// Append and Peek, matching writable.c's drop_returnable.
func (w *WritableQueue) dropReturnable() {
	w.ret = returnNone
	w.retLen = 0
	w.committed = 0
	w.rewound = false
	if w.head != nil && w.head.written == len(w.head.data) {
		w.head = w.head.next
		if w.head != nil {
			w.head.prev = nil
		} else {
			w.tail = nil
		}
	}
}

func (w *WritableQueue) addRing(b []byte) {
	for len(b) > 0 {
		n := copy(w.ring[w.end:], b)
		w.end = (w.end + n) % ringSize
		b = b[n:]
	}
}

func (w *WritableQueue) addHeap(b []byte) {
	data := make([]byte, len(b))
	copy(data, b)
	chunk := &heapChunk{data: data}
	if w.tail == nil {
		w.head, w.tail = chunk, chunk
	} else {
		chunk.prev = w.tail
		w.tail.next = chunk
		w.tail = chunk
	}
}

// Append adds bytes to the queue, preferring the ring stage and falling
// back to a heap chunk for whatever does not fit. If a heap chunk already
// exists, new data always goes to a new heap chunk, never back-filling the
// ring: this preserves FIFO order across the two stages.
func (w *WritableQueue) Append(b []byte) {
	w.dropReturnable()
	if len(b) == 0 {
		return
	}
	if w.head != nil {
		w.addHeap(b)
		return
	}
	ringable := ringSize - w.ringLen() - 1 // one guard slot reserved
	if ringable < 0 {
		ringable = 0
	}
	if len(b) <= ringable {
		w.addRing(b)
		return
	}
	if ringable > 0 {
		w.addRing(b[:ringable])
	}
	w.addHeap(b[ringable:])
}

// Nonempty reports whether any bytes remain queued.
func (w *WritableQueue) Nonempty() bool {
	return w.ringLen() > 0 || w.head != nil
}

// Peek returns the next contiguous run of unread bytes, or nil if empty.
// When reading from the ring, the returned slice stops at the physical end
// of the ring buffer even if more ring bytes logically follow after a
// wrap; callers must call Peek again to see the rest. When reading from
// the heap, it returns the unwritten tail of the oldest chunk. The
// returned slice is only valid until the next call to any queue method.
func (w *WritableQueue) Peek() []byte {
	w.dropReturnable()
	if n := w.ringLen(); n > 0 {
		var end int
		if w.start < w.end {
			end = w.end
		} else {
			end = ringSize
		}
		w.ret = returnRing
		w.retLen = end - w.start
		return w.ring[w.start:end]
	}
	if w.head != nil {
		w.ret = returnHeap
		w.retLen = len(w.head.data) - w.head.written
		return w.head.data[w.head.written:]
	}
	return nil
}

// Commit consumes n bytes from the slice most recently returned by Peek,
// advancing the ring/heap read position. Multiple commits may follow one
// Peek as long as their total does not exceed the peeked length.
func (w *WritableQueue) Commit(n int) {
	if n < 0 || n > w.retLen {
		panic("nast: WritableQueue.Commit out of range of last Peek")
	}
	if n == 0 {
		return
	}
	switch w.ret {
	case returnRing:
		w.start = (w.start + n) % ringSize
	case returnHeap:
		w.head.written += n
	default:
		panic("nast: WritableQueue.Commit without a prior Peek")
	}
	w.retLen -= n
	w.committed += n
}

// Rewind undoes n bytes already committed during the current peek cycle
// (i.e. since the last Peek call), restoring them to the front of the
// queue. Legal only once per peek, before any other mutating call (a
// second Rewind, or any Append/Peek in between, is a host-contract
// violation). Used to retry after a short write to the pty: commit the
// full peeked length optimistically, then rewind whatever the write
// syscall did not actually accept.
func (w *WritableQueue) Rewind(n int) {
	if w.rewound {
		panic("nast: WritableQueue.Rewind called twice for one Peek")
	}
	if n < 0 || n > w.committed {
		panic("nast: WritableQueue.Rewind beyond what was committed this Peek")
	}
	if n == 0 {
		return
	}
	switch w.ret {
	case returnRing:
		w.start = (w.start - n + ringSize) % ringSize
	case returnHeap:
		w.head.written -= n
	default:
		panic("nast: WritableQueue.Rewind without a prior Peek")
	}
	w.retLen += n
	w.committed -= n
	w.rewound = true
}
