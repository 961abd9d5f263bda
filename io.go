package nast

// Flush drains as many queued response bytes as the response writer will
// currently accept, rewinding whatever a short write did not take. A host
// integration that writes the pty on a non-blocking fd should call Flush
// again once the fd becomes writable to finish draining.
func (t *Terminal) Flush() {
	for t.queue.Nonempty() {
		chunk := t.queue.Peek()
		if len(chunk) == 0 {
			return
		}
		t.queue.Commit(len(chunk))
		n, err := t.response.Write(chunk)
		if n < len(chunk) {
			t.queue.Rewind(len(chunk) - n)
		}
		if err != nil {
			return
		}
	}
}

// PendingOutput reports whether queued response bytes remain undelivered.
func (t *Terminal) PendingOutput() bool {
	return t.queue.Nonempty()
}
