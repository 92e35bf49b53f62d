package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestSidebarNormalize(t *testing.T) {
	t.Parallel()

	in := Sidebar{Items: []SidebarItem{
		{Index: "a", Title: "Home", Slug: strp("home"), Category: []SidebarItem{{Title: "dropped"}}},
		{Title: "Guides", Category: []SidebarItem{
			{Index: "b", Title: "Setup", Slug: strp("setup")},
			{Index: "c", Title: "Nested group", Category: []SidebarItem{}},
		}},
		{Index: "d", Title: "Orphan"},
	}}

	n := 0
	out := in.Normalize(func() string { n++; return "gen" })

	require.Equal(t, 1, n)
	require.Len(t, out.Items, 2)
	require.Nil(t, out.Items[0].Category)
	require.Equal(t, "gen", out.Items[1].Index)
	require.Len(t, out.Items[1].Category, 1)
	require.Equal(t, "setup", *out.Items[1].Category[0].Slug)

	again := out.Normalize(func() string { t.Fatalf("index must be kept"); return "" })
	require.True(t, out.Equal(again))
}

func TestSidebarEqual(t *testing.T) {
	t.Parallel()

	a := Sidebar{Items: []SidebarItem{{Index: "1", Title: "A", Slug: strp("a")}}}
	b := Sidebar{Items: []SidebarItem{{Index: "1", Title: "A", Slug: strp("a")}}}
	require.True(t, a.Equal(b))

	b.Items[0].Slug = strp("b")
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(Sidebar{}))
	require.True(t, Sidebar{}.Equal(Sidebar{Items: []SidebarItem{}}))
}

func TestWikiLookups(t *testing.T) {
	t.Parallel()

	w := &Wiki{Status: WikiDraft, Members: []Member{
		{UserID: "u1", IsOwner: true, Permissions: PermAll},
		{UserID: "u2", Permissions: EditWikiPages},
	}}

	o, ok := w.Owner()
	require.True(t, ok)
	require.Equal(t, "u1", o.UserID)

	require.True(t, w.VisibleTo("u2", false))
	require.False(t, w.VisibleTo("stranger", false))
	require.True(t, w.VisibleTo("stranger", true))

	w.Status = WikiPublished
	require.True(t, w.VisibleTo("stranger", false))
}
