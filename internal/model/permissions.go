package model

import (
	"math/bits"
	"strings"
)

// Permissions is a set of capability bits held by a wiki member.
// Bit positions are persisted and must never be renumbered.
type Permissions uint64

const (
	PermNone Permissions = 0

	EditWikiMemberPermissions Permissions = 1 << 0

	EditWiki    Permissions = 1 << 1
	PublishWiki Permissions = 1 << 2
	ArchiveWiki Permissions = 1 << 3

	CreateWikiPages  Permissions = 1 << 11
	EditWikiPages    Permissions = 1 << 12
	PublishWikiPages Permissions = 1 << 13
	ArchiveWikiPages Permissions = 1 << 14

	DeleteWikiPages Permissions = 1 << 20

	CreateWikiCategories Permissions = 1 << 21
	EditWikiCategories   Permissions = 1 << 22
	DeleteWikiCategories Permissions = 1 << 30

	DeleteWiki Permissions = 1 << 63

	// PermAll is the owner-equivalent set with every bit raised.
	PermAll Permissions = ^Permissions(0)
)

var permissionNames = []struct {
	bit  Permissions
	name string
}{
	{EditWikiMemberPermissions, "EditWikiMemberPermissions"},
	{EditWiki, "EditWiki"},
	{PublishWiki, "PublishWiki"},
	{ArchiveWiki, "ArchiveWiki"},
	{CreateWikiPages, "CreateWikiPages"},
	{EditWikiPages, "EditWikiPages"},
	{PublishWikiPages, "PublishWikiPages"},
	{ArchiveWikiPages, "ArchiveWikiPages"},
	{DeleteWikiPages, "DeleteWikiPages"},
	{CreateWikiCategories, "CreateWikiCategories"},
	{EditWikiCategories, "EditWikiCategories"},
	{DeleteWikiCategories, "DeleteWikiCategories"},
	{DeleteWiki, "DeleteWiki"},
}

// PermAllNamed is the union of every named bit. A demoted owner receives it.
var PermAllNamed = func() Permissions {
	var p Permissions
	for _, n := range permissionNames {
		p |= n.bit
	}
	return p
}()

// Has reports whether every bit of want is present in p.
func (p Permissions) Has(want Permissions) bool { return p&want == want }

// Union returns the bits present in either set.
func Union(a, b Permissions) Permissions { return a | b }

// Difference returns the bits that differ between a and b.
func Difference(a, b Permissions) Permissions { return a ^ b }

// Covers reports whether allowed holds every bit of requested.
func Covers(requested, allowed Permissions) bool { return allowed.Has(requested) }

// Count returns the number of raised bits.
func (p Permissions) Count() int { return bits.OnesCount64(uint64(p)) }

// Names lists the named bits contained in p.
func (p Permissions) Names() []string {
	var out []string
	for _, n := range permissionNames {
		if p.Has(n.bit) {
			out = append(out, n.name)
		}
	}
	return out
}

// String renders the set for logs.
func (p Permissions) String() string {
	switch p {
	case PermNone:
		return "None"
	case PermAll:
		return "All"
	}
	return strings.Join(p.Names(), "|")
}

// ParsePermission resolves a bit by its name.
func ParsePermission(name string) (Permissions, bool) {
	switch name {
	case "None":
		return PermNone, true
	case "All":
		return PermAll, true
	}
	for _, n := range permissionNames {
		if strings.EqualFold(n.name, name) {
			return n.bit, true
		}
	}
	return 0, false
}

// CanGrant reports whether an actor holding actor may move a member from
// current to requested. Every changed bit must be held by the actor.
func CanGrant(actor, current, requested Permissions) bool {
	d := Difference(requested, current)
	return d == PermNone || Covers(d, actor)
}
