package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"larder/internal/domain/repository"
	"larder/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryBlobStore is an in-memory BlobStore for exercising the list store
// across simulated process restarts.
type memoryBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: make(map[string][]byte)}
}

func (m *memoryBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, repository.ErrBlobNotFound
	}

	cloned := make([]byte, len(data))
	copy(cloned, data)

	return cloned, nil
}

func (m *memoryBlobStore) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := make([]byte, len(data))
	copy(cloned, data)
	m.blobs[key] = cloned

	return nil
}

// notification captures one Notify call.
type notification struct {
	kind   service.NotificationKind
	title  string
	detail string
}

// recordingNotifier records notifications in call order so tests can assert
// both counts and ordering.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{}
}

func (n *recordingNotifier) Notify(kind service.NotificationKind, title, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, notification{kind: kind, title: title, detail: detail})
}

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]notification(nil), n.calls...)
}

func (n *recordingNotifier) count(kind service.NotificationKind) int {
	total := 0
	for _, call := range n.all() {
		if call.kind == kind {
			total++
		}
	}

	return total
}

// fakeReachability is a controllable runtime reachability signal.
type fakeReachability struct {
	mu          sync.Mutex
	online      bool
	nextID      int
	subscribers map[int]func(bool)
}

func newFakeReachability(online bool) *fakeReachability {
	return &fakeReachability{
		online:      online,
		subscribers: make(map[int]func(bool)),
	}
}

func (f *fakeReachability) Online() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.online
}

func (f *fakeReachability) Subscribe(fn func(online bool)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subscribers[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		delete(f.subscribers, id)
	}
}

func (f *fakeReachability) subscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.subscribers)
}

// setOnline flips the signal and fans the new state out to subscribers, the
// way the runtime delivers transition events.
func (f *fakeReachability) setOnline(online bool) {
	f.mu.Lock()
	f.online = online
	fns := make([]func(bool), 0, len(f.subscribers))
	for _, fn := range f.subscribers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(online)
	}
}

// fakeUpdateWorker records registration attempts.
type fakeUpdateWorker struct {
	mu            sync.Mutex
	registrations int
	err           error
}

func (w *fakeUpdateWorker) Register(context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.registrations++

	return w.err
}

func (w *fakeUpdateWorker) registerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.registrations
}
