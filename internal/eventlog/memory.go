package eventlog

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/event"
)

// Memory is an in-process log used by tests and local tooling.
type Memory struct {
	mu      sync.Mutex
	streams map[string][]Record
	codec   *event.Codec
	log     *zap.Logger
	now     func() time.Time
}

// NewMemory returns an empty log. A nil codec uses the default registry.
func NewMemory(codec *event.Codec, log *zap.Logger) *Memory {
	if codec == nil {
		codec = event.NewCodec(nil, 0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Memory{streams: map[string][]Record{}, codec: codec, log: log, now: time.Now}
}

// Append encodes p and adds it at the end of the wiki's stream.
func (m *Memory) Append(_ context.Context, wikiID uuid.UUID, userID string, p event.Payload) (event.Event, error) {
	data, enc, err := m.codec.Encode(p)
	if err != nil {
		return event.Event{}, err
	}
	now := m.now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	s := StreamName(wikiID)
	seq := uint64(len(m.streams[s]))
	m.streams[s] = append(m.streams[s], Record{
		Seq: seq, Kind: p.Kind(), UserID: userID, Encoding: enc, Data: data, CreatedAt: now,
	})
	return event.Event{Seq: seq, Timestamp: now, UserID: userID, Payload: p}, nil
}

// AppendRaw stores a pre-encoded record, e.g. a kind written by a newer release.
func (m *Memory) AppendRaw(wikiID uuid.UUID, kind event.Kind, userID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := StreamName(wikiID)
	m.streams[s] = append(m.streams[s], Record{
		Seq: uint64(len(m.streams[s])), Kind: kind, UserID: userID, Data: data, CreatedAt: m.now().UTC(),
	})
}

// Read returns one page of the wiki's stream.
func (m *Memory) Read(ctx context.Context, q Query) (Page, error) {
	if err := q.Validate(); err != nil {
		return Page{}, err
	}
	m.mu.Lock()
	recs := append([]Record(nil), m.streams[StreamName(q.WikiID)]...)
	m.mu.Unlock()
	return Collect(ctx, NewSliceCursor(recs, q.Direction), q, m.codec, m.log)
}

// Delete drops the whole stream.
func (m *Memory) Delete(_ context.Context, wikiID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.streams, StreamName(wikiID))
	return nil
}

// Len reports the number of records in the wiki's stream.
func (m *Memory) Len(wikiID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.streams[StreamName(wikiID)])
}

// Kinds lists the kinds in the wiki's stream, oldest first.
func (m *Memory) Kinds(wikiID uuid.UUID) []event.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []event.Kind
	for _, r := range m.streams[StreamName(wikiID)] {
		out = append(out, r.Kind)
	}
	return out
}

// SliceCursor iterates an ordered record slice.
type SliceCursor struct {
	recs []Record
	dir  Direction
	i    int
	cur  Record
}

// NewSliceCursor walks recs (oldest first) in direction dir.
func NewSliceCursor(recs []Record, dir Direction) *SliceCursor {
	return &SliceCursor{recs: recs, dir: dir}
}

func (c *SliceCursor) Next() bool {
	if c.i >= len(c.recs) {
		return false
	}
	idx := c.i
	if c.dir == Backward {
		idx = len(c.recs) - 1 - c.i
	}
	c.cur = c.recs[idx]
	c.i++
	return true
}

func (c *SliceCursor) Record() (Record, error) { return c.cur, nil }
func (c *SliceCursor) Err() error              { return nil }
func (c *SliceCursor) Close()                  {}
