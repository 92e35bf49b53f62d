package event

import (
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
)

func TestDefaultRegistryIsClosedSet(t *testing.T) {
	t.Parallel()

	reg := Default()
	require.Len(t, reg.Kinds(), 20)
	require.True(t, reg.Known(KindWikiUpdatedOwnership))
	require.False(t, reg.Known("WikiPageVersionCreatedEvent"))

	tg, ok := reg.Target(KindCategoryUpdatedPages)
	require.True(t, ok)
	require.Equal(t, TargetCategory, tg)
	tg, _ = reg.Target(KindMemberRemoved)
	require.Equal(t, TargetMember, tg)
}

func TestRegistryDecodeUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Default().Decode("SomethingNewEvent", []byte(`{}`))
	require.ErrorIs(t, err, errs.ErrUnknownKind)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewRegistry(
			Variant{TargetWiki, func() Payload { return &WikiCreated{} }},
			Variant{TargetWiki, func() Payload { return &WikiCreated{} }},
		)
	})
}

func TestCodecWireShape(t *testing.T) {
	t.Parallel()

	c := NewCodec(nil, 0)
	id := uuid.Must(uuid.FromString("0190a0c4-5b1e-7cc0-8000-000000000001"))
	data, enc, err := c.Encode(&PageUpdatedStatus{PageID: id, Status: model.PagePublished})
	require.NoError(t, err)
	require.Equal(t, EncodingJSON, enc)
	require.JSONEq(t, `{"wikiPageId":"0190a0c4-5b1e-7cc0-8000-000000000001","status":"Published"}`, string(data))

	p, err := c.Decode(KindPageUpdatedStatus, enc, data)
	require.NoError(t, err)
	got, ok := p.(*PageUpdatedStatus)
	require.True(t, ok)
	require.Equal(t, model.PagePublished, got.Status)
}

func TestCodecCompressesLargePayloads(t *testing.T) {
	t.Parallel()

	c := NewCodec(nil, 256)
	body := strings.Repeat("wiki content line\n", 200)
	data, enc, err := c.Encode(&WikiUpdatedContent{Content: &body})
	require.NoError(t, err)
	require.Equal(t, EncodingJSONZstd, enc)
	require.Less(t, len(data), len(body))

	p, err := c.Decode(KindWikiUpdatedContent, enc, data)
	require.NoError(t, err)
	require.Equal(t, body, *p.(*WikiUpdatedContent).Content)

	small := "short"
	_, enc, err = c.Encode(&WikiUpdatedContent{Content: &small})
	require.NoError(t, err)
	require.Equal(t, EncodingJSON, enc)
}

func TestCodecRejectsUnknownEncoding(t *testing.T) {
	t.Parallel()

	_, err := NewCodec(nil, 0).Decode(KindPageDeleted, Encoding(7), []byte(`{}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrUnknownKind)

	_, err = NewCodec(nil, 0).Decode("Gone", EncodingJSON, []byte(`{}`))
	require.ErrorIs(t, err, errs.ErrUnknownKind)
}
