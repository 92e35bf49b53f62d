package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissionBitsAreStable(t *testing.T) {
	t.Parallel()

	// stored contract: these values must never change
	want := map[Permissions]uint64{
		EditWikiMemberPermissions: 1,
		EditWiki:                  2,
		PublishWiki:               4,
		ArchiveWiki:               8,
		CreateWikiPages:           2048,
		EditWikiPages:             4096,
		PublishWikiPages:          8192,
		ArchiveWikiPages:          16384,
		DeleteWikiPages:           1 << 20,
		CreateWikiCategories:      1 << 21,
		EditWikiCategories:        1 << 22,
		DeleteWikiCategories:      1 << 30,
		DeleteWiki:                1 << 63,
	}
	for p, v := range want {
		if uint64(p) != v {
			t.Fatalf("%s: want %d, got %d", p, v, uint64(p))
		}
	}
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), uint64(PermAll))
	require.Equal(t, 13, PermAllNamed.Count())
	require.NotEqual(t, PermAll, PermAllNamed)
}

func TestPermissionsOps(t *testing.T) {
	t.Parallel()

	p := Union(EditWiki, PublishWiki)
	require.True(t, p.Has(EditWiki))
	require.True(t, p.Has(EditWiki|PublishWiki))
	require.False(t, p.Has(EditWiki|ArchiveWiki))
	require.True(t, p.Has(PermNone))

	require.Equal(t, PublishWiki|ArchiveWiki, Difference(EditWiki|PublishWiki, EditWiki|ArchiveWiki))
	require.True(t, Covers(EditWiki, p))
	require.False(t, Covers(DeleteWiki, p))

	require.Equal(t, "EditWiki|PublishWiki", p.String())
	require.Equal(t, "All", PermAll.String())
	require.Equal(t, "None", PermNone.String())

	got, ok := ParsePermission("archivewikipages")
	require.True(t, ok)
	require.Equal(t, ArchiveWikiPages, got)
	_, ok = ParsePermission("nope")
	require.False(t, ok)
}

func TestCanGrant(t *testing.T) {
	t.Parallel()

	actor := EditWikiMemberPermissions | EditWikiPages | PublishWikiPages

	cases := []struct {
		name      string
		cur, req  Permissions
		wantAllow bool
	}{
		{"no change", EditWiki, EditWiki, true},
		{"grant held bit", PermNone, EditWikiPages, true},
		{"revoke held bit", EditWikiPages | PublishWikiPages, EditWikiPages, true},
		{"grant unheld bit", PermNone, DeleteWiki, false},
		{"revoke unheld bit", ArchiveWiki, PermNone, false},
		{"mixed", PermNone, EditWikiPages | ArchiveWiki, false},
	}
	for _, tc := range cases {
		if got := CanGrant(actor, tc.cur, tc.req); got != tc.wantAllow {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.wantAllow, got)
		}
	}
}

func TestMemberCan(t *testing.T) {
	t.Parallel()

	owner := Member{IsOwner: true}
	require.True(t, owner.Can(DeleteWiki))

	m := Member{Permissions: EditWikiPages}
	require.True(t, m.Can(EditWikiPages))
	require.False(t, m.Can(ArchiveWiki))
}
