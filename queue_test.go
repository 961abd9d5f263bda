package nast

import (
	"bytes"
	"testing"
)

func TestWritableQueueFIFO(t *testing.T) {
	q := NewWritableQueue()
	q.Append([]byte("hello "))
	q.Append([]byte("world"))

	var got []byte
	for q.Nonempty() {
		chunk := q.Peek()
		got = append(got, chunk...)
		q.Commit(len(chunk))
	}
	if !bytes.Equal(got, []byte("hello world")) {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestWritableQueueRingFullAndHeapOverflow(t *testing.T) {
	q := NewWritableQueue()
	// Fill past the ring's capacity; the excess must land in a heap chunk
	// but still come out in append order.
	big := bytes.Repeat([]byte("x"), ringSize-1)
	q.Append(big)
	tail := []byte("TAIL-IN-HEAP")
	q.Append(tail)

	var got []byte
	for q.Nonempty() {
		chunk := q.Peek()
		got = append(got, chunk...)
		q.Commit(len(chunk))
	}
	want := append(append([]byte{}, big...), tail...)
	if !bytes.Equal(got, want) {
		t.Fatalf("ring/heap overflow did not preserve FIFO order")
	}
}

func TestWritableQueueNeverBackfillsRing(t *testing.T) {
	q := NewWritableQueue()
	// Force a heap chunk to exist.
	q.Append(bytes.Repeat([]byte("a"), ringSize))
	q.Append([]byte("b")) // must go to heap, not back-fill the freed ring byte

	// Drain the ring fully.
	for q.ringLen() > 0 {
		chunk := q.Peek()
		q.Commit(len(chunk))
	}
	if q.head == nil {
		t.Fatalf("expected heap chunk to still hold the second append")
	}
}

func TestWritableQueueRewindAfterShortWrite(t *testing.T) {
	q := NewWritableQueue()
	q.Append([]byte("abcdef"))

	chunk := q.Peek()
	if string(chunk) != "abcdef" {
		t.Fatalf("peek = %q", chunk)
	}
	q.Commit(len(chunk)) // optimistic full commit
	q.Rewind(3)           // only 3 bytes actually made it to the pty

	remaining := q.Peek()
	if string(remaining) != "def" {
		t.Fatalf("after rewind, remaining = %q, want %q", remaining, "def")
	}
}

func TestWritableQueueRewindTwiceIsContractViolation(t *testing.T) {
	q := NewWritableQueue()
	q.Append([]byte("abc"))
	chunk := q.Peek()
	q.Commit(len(chunk))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on second Rewind for the same Peek")
		}
	}()
	q.Rewind(1)
	q.Rewind(1)
}

func TestWritableQueueRewindWithoutPeekPanics(t *testing.T) {
	q := NewWritableQueue()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on Rewind without a prior Peek")
		}
	}()
	q.Rewind(1)
}
