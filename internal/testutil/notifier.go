package testutil

import "sync"

// Notification is one recorded alert.
type Notification struct {
	Title   string
	Message string
}

// RecordingNotifier captures notifications for assertions. A non-nil Err is
// returned from every Notify call after recording.
type RecordingNotifier struct {
	mu   sync.Mutex
	Err  error
	sent []Notification
}

func (r *RecordingNotifier) Notify(title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Notification{Title: title, Message: message})
	return r.Err
}

func (r *RecordingNotifier) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}
