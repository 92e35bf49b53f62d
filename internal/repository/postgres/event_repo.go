package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
)

var tracer = otel.Tracer("github.com/projeli/wiki-service/internal/repository/postgres")

// EventRepo stores wiki history in wiki_events, one stream per wiki.
type EventRepo struct {
	db    *DB
	codec *event.Codec
	log   *zap.Logger
}

// NewEventRepo constructs an event repository. A nil codec uses the default registry.
func NewEventRepo(db *DB, codec *event.Codec, log *zap.Logger) *EventRepo {
	if codec == nil {
		codec = event.NewCodec(nil, 0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EventRepo{db: db, codec: codec, log: log}
}

const (
	nextSeqSQL = `
INSERT INTO wiki_streams (stream, next_seq) VALUES ($1, 1)
ON CONFLICT (stream) DO UPDATE SET next_seq = wiki_streams.next_seq + 1
RETURNING next_seq - 1`
	insertEventSQL = `
INSERT INTO wiki_events (stream, seq, kind, user_id, encoding, payload)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at`
)

// Append encodes p and writes it at the end of the wiki's stream.
func (r *EventRepo) Append(ctx context.Context, wikiID uuid.UUID, userID string, p event.Payload) (ev event.Event, err error) {
	stream := eventlog.StreamName(wikiID)
	ctx, span := tracer.Start(ctx, "eventlog.Append", trace.WithAttributes(
		attribute.String("wiki.stream", stream),
		attribute.String("event.kind", string(p.Kind())),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	data, enc, err := r.codec.Encode(p)
	if err != nil {
		return event.Event{}, err
	}

	var (
		seq int64
		at  time.Time
	)
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, nextSeqSQL, stream).Scan(&seq); err != nil {
			return err
		}
		return tx.QueryRow(ctx, insertEventSQL, stream, seq, string(p.Kind()), userID, int16(enc), data).Scan(&at)
	})
	if err != nil {
		return event.Event{}, err
	}
	span.SetAttributes(attribute.Int64("event.seq", seq))
	return event.Event{Seq: uint64(seq), Timestamp: at, UserID: userID, Payload: p}, nil
}

// Read returns one page of the wiki's stream. Kind filtering runs in SQL.
func (r *EventRepo) Read(ctx context.Context, q eventlog.Query) (eventlog.Page, error) {
	if err := q.Validate(); err != nil {
		return eventlog.Page{}, err
	}
	stream := eventlog.StreamName(q.WikiID)
	ctx, span := tracer.Start(ctx, "eventlog.Read", trace.WithAttributes(
		attribute.String("wiki.stream", stream),
		attribute.Int("page", q.Page),
		attribute.Int("page_size", q.PageSize),
	))
	defer span.End()

	order := "DESC"
	if q.Direction == eventlog.Forward {
		order = "ASC"
	}
	sql := `SELECT seq, kind, user_id, encoding, payload, created_at FROM wiki_events WHERE stream=$1`
	args := []any{stream}
	if len(q.Kinds) > 0 {
		kinds := make([]string, len(q.Kinds))
		for i, k := range q.Kinds {
			kinds[i] = string(k)
		}
		sql += ` AND kind = ANY($2)`
		args = append(args, kinds)
	}
	sql += ` ORDER BY seq ` + order

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		span.RecordError(err)
		return eventlog.Page{}, err
	}
	page, err := eventlog.Collect(ctx, &rowsCursor{rows: rows}, q, r.codec, r.log)
	if err != nil {
		span.RecordError(err)
		return eventlog.Page{}, err
	}
	span.SetAttributes(attribute.Int("events", len(page.Events)), attribute.Bool("has_more", page.HasMore))
	return page, nil
}

// Delete drops the wiki's stream.
func (r *EventRepo) Delete(ctx context.Context, wikiID uuid.UUID) error {
	stream := eventlog.StreamName(wikiID)
	ctx, span := tracer.Start(ctx, "eventlog.Delete", trace.WithAttributes(attribute.String("wiki.stream", stream)))
	defer span.End()

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM wiki_events WHERE stream=$1`, stream); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM wiki_streams WHERE stream=$1`, stream)
		return err
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// rowsCursor adapts pgx.Rows to eventlog.Cursor.
type rowsCursor struct{ rows pgx.Rows }

func (c *rowsCursor) Next() bool { return c.rows.Next() }

func (c *rowsCursor) Record() (eventlog.Record, error) {
	var (
		rec  eventlog.Record
		seq  int64
		kind string
		enc  int16
	)
	if err := c.rows.Scan(&seq, &kind, &rec.UserID, &enc, &rec.Data, &rec.CreatedAt); err != nil {
		return eventlog.Record{}, err
	}
	rec.Seq = uint64(seq)
	rec.Kind = event.Kind(kind)
	rec.Encoding = event.Encoding(enc)
	return rec, nil
}

func (c *rowsCursor) Err() error { return c.rows.Err() }
func (c *rowsCursor) Close()     { c.rows.Close() }
