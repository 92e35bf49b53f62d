package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
)

func TestEventRepo_Append(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db, nil, zaptest.NewLogger(t))

	wikiID, pageID := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())
	stream := eventlog.StreamName(wikiID)
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO wiki_streams`).
		WithArgs(stream).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(int64(4)))
	mock.ExpectQuery(`INSERT INTO wiki_events`).
		WithArgs(stream, int64(4), string(event.KindPageCreated), "u1", int16(event.EncodingJSON), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(at))
	mock.ExpectCommit()

	ev, err := r.Append(context.Background(), wikiID, "u1", &event.PageCreated{PageID: pageID, Title: "Home", Slug: "home"})
	require.NoError(t, err)
	require.Equal(t, uint64(4), ev.Seq)
	require.Equal(t, at, ev.Timestamp)
	require.Equal(t, event.KindPageCreated, ev.Kind())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Read_KindFilterInSQL(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	codec := event.NewCodec(nil, 0)
	r := NewEventRepo(db, codec, zaptest.NewLogger(t))

	wikiID := uuid.Must(uuid.NewV7())
	stream := eventlog.StreamName(wikiID)
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"seq", "kind", "user_id", "encoding", "payload", "created_at"})
	for i := 5; i >= 0; i-- {
		data, enc, err := codec.Encode(&event.PageDeleted{PageID: uuid.Must(uuid.NewV7())})
		require.NoError(t, err)
		rows.AddRow(int64(i), string(event.KindPageDeleted), "u1", int16(enc), data, now)
	}

	mock.ExpectQuery(`FROM wiki_events WHERE stream=\$1 AND kind = ANY\(\$2\) ORDER BY seq DESC`).
		WithArgs(stream, []string{string(event.KindPageDeleted)}).
		WillReturnRows(rows)

	page, err := r.Read(context.Background(), eventlog.Query{
		WikiID: wikiID, Kinds: []event.Kind{event.KindPageDeleted}, Page: 2, PageSize: 2,
	})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	require.True(t, page.HasMore)
	require.Equal(t, uint64(3), page.Events[0].Seq)
	require.Equal(t, uint64(2), page.Events[1].Seq)
	require.Equal(t, 5, page.TotalCount())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Read_SkipsUnknownKinds(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db, nil, zaptest.NewLogger(t))

	wikiID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()
	mock.ExpectQuery(`FROM wiki_events WHERE stream=\$1 ORDER BY seq ASC`).
		WithArgs(eventlog.StreamName(wikiID)).
		WillReturnRows(pgxmock.NewRows([]string{"seq", "kind", "user_id", "encoding", "payload", "created_at"}).
			AddRow(int64(0), string(event.KindWikiCreated), "u1", int16(0), []byte(`{"status":"Draft"}`), now).
			AddRow(int64(1), "WikiRenamedEvent", "u1", int16(0), []byte(`{}`), now).
			AddRow(int64(2), string(event.KindWikiUpdatedContent), "u2", int16(0), []byte(`not json`), now))

	page, err := r.Read(context.Background(), eventlog.Query{WikiID: wikiID, Page: 1, PageSize: 10, Direction: eventlog.Forward})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	require.False(t, page.HasMore)
	require.Equal(t, event.KindWikiCreated, page.Events[0].Kind())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db, nil, nil)

	wikiID := uuid.Must(uuid.NewV7())
	stream := eventlog.StreamName(wikiID)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM wiki_events WHERE stream=\$1`).
		WithArgs(stream).
		WillReturnResult(pgxmock.NewResult("DELETE", 12))
	mock.ExpectExec(`DELETE FROM wiki_streams WHERE stream=\$1`).
		WithArgs(stream).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, r.Delete(context.Background(), wikiID))
	require.NoError(t, mock.ExpectationsWereMet())
}
