package sync

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	id := uuid.Must(uuid.NewV7())

	data, err := Encode(&ProjectMemberAdded{ProjectID: id, UserID: "u2", PerformingUserID: "u1"})
	require.NoError(t, err)
	m, err := Decode(data)
	require.NoError(t, err)
	added, ok := m.(*ProjectMemberAdded)
	require.True(t, ok)
	require.Equal(t, "u2", added.UserID)
	require.Equal(t, id, m.Project())

	raw := []byte(`{"type":"ProjectUpdated","data":{"projectId":"` + id.String() + `","projectName":"P","projectSlug":"p","members":[{"userId":"u1","isOwner":true}]}}`)
	m, err = Decode(raw)
	require.NoError(t, err)
	upd := m.(*ProjectUpdated)
	require.Equal(t, []ProjectMember{{UserID: "u1", IsOwner: true}}, upd.Members)
}

func TestDecode_Rejects(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"type":"ProjectArchived","data":{}}`))
	require.ErrorIs(t, err, ErrUnknownMessage)

	_, err = Decode([]byte(`{"type":"ProjectDeleted","data":{}}`))
	require.ErrorContains(t, err, "projectId is required")

	_, err = Decode([]byte(`not json`))
	require.Error(t, err)
}
