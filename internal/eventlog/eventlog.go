// Package eventlog implements the storage independent half of the per-wiki
// history: stream naming, read queries and lookahead pagination over a
// cursor of stored records.
package eventlog

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
)

// StreamName returns the log stream of a wiki.
func StreamName(wikiID uuid.UUID) string { return "wiki-" + wikiID.String() }

// Direction selects read order. The zero value reads newest first.
type Direction uint8

const (
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// ParseDirection accepts "forward" or "backward"; empty means backward.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "backward", "backwards":
		return Backward, nil
	case "forward", "forwards":
		return Forward, nil
	}
	return 0, errs.Invalid("direction", "Direction must be forward or backward")
}

// Query selects one page of a wiki's history.
type Query struct {
	WikiID    uuid.UUID
	UserIDs   []string     // empty: any user
	Kinds     []event.Kind // empty: any kind
	Page      int          // 1-based
	PageSize  int
	Direction Direction
}

// Validate checks paging bounds.
func (q Query) Validate() error {
	var v errs.ValidationError
	if q.Page < 1 {
		v.Add("page", "Page must be at least 1")
	}
	if q.PageSize < 1 {
		v.Add("pageSize", "Page size must be at least 1")
	}
	return v.OrNil()
}

// initialCap bounds the preallocation of a page; PageSize is caller input.
const initialCap = 64

// Skip is the number of matching records preceding the page. ok is false
// when that number does not fit in an int, so no stream can reach the page.
func (q Query) Skip() (n int, ok bool) {
	if q.Page > 1 && q.PageSize > 0 && q.Page-1 > math.MaxInt/q.PageSize {
		return 0, false
	}
	return (q.Page - 1) * q.PageSize, true
}

// Page is a slice of history plus lookahead metadata.
type Page struct {
	Events   []event.Event
	Page     int
	PageSize int
	HasMore  bool
}

// TotalCount is a lower bound on matching events that needs no count query.
// It saturates at math.MaxInt.
func (p Page) TotalCount() int {
	extra := len(p.Events)
	if p.HasMore {
		extra++
	}
	if p.Page > 1 && p.PageSize > 0 && p.Page-1 > (math.MaxInt-extra)/p.PageSize {
		return math.MaxInt
	}
	return p.PageSize*(p.Page-1) + extra
}

// TotalPages is a lower bound on the number of pages.
func (p Page) TotalPages() int {
	if p.HasMore {
		return p.Page + 1
	}
	return p.Page
}

// Record is one stored, still encoded, entry of a stream.
type Record struct {
	Seq       uint64
	Kind      event.Kind
	UserID    string
	Encoding  event.Encoding
	Data      []byte
	CreatedAt time.Time
}

// Cursor walks records of one stream in the requested direction.
type Cursor interface {
	Next() bool
	Record() (Record, error)
	Err() error
	Close()
}

// Collect reads from cur until one page plus one lookahead record has been
// gathered. Kind filtering happens before decoding and user filtering after.
// Records whose kind is unknown to the codec's registry, or whose payload
// does not decode, are skipped without counting toward the page.
// Collect always closes cur.
func Collect(ctx context.Context, cur Cursor, q Query, codec *event.Codec, log *zap.Logger) (Page, error) {
	defer cur.Close()
	if log == nil {
		log = zap.NewNop()
	}

	out := Page{Page: q.Page, PageSize: q.PageSize, Events: []event.Event{}}
	skip, ok := q.Skip()
	if !ok {
		return out, nil
	}
	want := q.PageSize
	if want < math.MaxInt {
		want++
	}
	out.Events = make([]event.Event, 0, min(want, initialCap))

	kinds := toSet(q.Kinds)
	users := toSet(q.UserIDs)
	skipped := 0
	for cur.Next() {
		if err := ctx.Err(); err != nil {
			return Page{}, err
		}
		rec, err := cur.Record()
		if err != nil {
			return Page{}, err
		}
		if kinds != nil && !kinds[rec.Kind] {
			continue
		}
		p, err := codec.Decode(rec.Kind, rec.Encoding, rec.Data)
		if err != nil {
			if errors.Is(err, errs.ErrUnknownKind) {
				log.Debug("skip unknown event kind", zap.String("kind", string(rec.Kind)), zap.Uint64("seq", rec.Seq))
			} else {
				log.Warn("skip undecodable event", zap.String("kind", string(rec.Kind)), zap.Uint64("seq", rec.Seq), zap.Error(err))
			}
			continue
		}
		if users != nil && !users[rec.UserID] {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		out.Events = append(out.Events, event.Event{
			Seq:       rec.Seq,
			Timestamp: rec.CreatedAt,
			UserID:    rec.UserID,
			Payload:   p,
		})
		if len(out.Events) == want {
			break
		}
	}
	if err := cur.Err(); err != nil {
		return Page{}, err
	}

	if len(out.Events) > q.PageSize {
		out.Events = out.Events[:q.PageSize]
		out.HasMore = true
	}
	return out, nil
}

func toSet[T comparable](xs []T) map[T]bool {
	if len(xs) == 0 {
		return nil
	}
	m := make(map[T]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}
