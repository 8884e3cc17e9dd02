package notifyfakes

import (
	"sync"

	"github.com/sellerhq/seller-console/notify"
)

var _ notify.Notifier = (*FakeNotifier)(nil)

// Notice is one recorded notification.
type Notice struct {
	Level   string
	ID      string
	Message string
}

// FakeNotifier records every notice for assertions. Unlike the console
// notifier it does not deduplicate; pair it with notify semantics under
// test by counting recorded notices.
type FakeNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (f *FakeNotifier) Info(id, message string) {
	f.record("info", id, message)
}

func (f *FakeNotifier) Success(id, message string) {
	f.record("success", id, message)
}

func (f *FakeNotifier) Error(id, message string) {
	f.record("error", id, message)
}

// Notices returns a copy of everything recorded so far.
func (f *FakeNotifier) Notices() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notice, len(f.notices))
	copy(out, f.notices)
	return out
}

// WithID returns the recorded notices carrying the given id.
func (f *FakeNotifier) WithID(id string) []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Notice
	for _, n := range f.notices {
		if n.ID == id {
			out = append(out, n)
		}
	}
	return out
}

func (f *FakeNotifier) record(level, id, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, Notice{Level: level, ID: id, Message: message})
}
