package model

import (
	"fmt"
	"time"

	"github.com/projeli/wiki-service/internal/errs"
)

// WikiStatus is the lifecycle state of a wiki. Values are persisted.
type WikiStatus uint16

const (
	WikiUncreated WikiStatus = 0
	WikiDraft     WikiStatus = 1
	WikiPublished WikiStatus = 2
	WikiArchived  WikiStatus = 3
)

func (s WikiStatus) String() string {
	switch s {
	case WikiUncreated:
		return "Uncreated"
	case WikiDraft:
		return "Draft"
	case WikiPublished:
		return "Published"
	case WikiArchived:
		return "Archived"
	default:
		return fmt.Sprintf("WikiStatus(%d)", uint16(s))
	}
}

// ParseWikiStatus maps a status name to its value.
func ParseWikiStatus(s string) (WikiStatus, error) {
	switch s {
	case "Uncreated":
		return WikiUncreated, nil
	case "Draft":
		return WikiDraft, nil
	case "Published":
		return WikiPublished, nil
	case "Archived":
		return WikiArchived, nil
	}
	return 0, fmt.Errorf("unknown wiki status %q", s)
}

func (s WikiStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *WikiStatus) UnmarshalText(b []byte) error {
	v, err := ParseWikiStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PageStatus is the lifecycle state of a page. Values are persisted.
type PageStatus uint16

const (
	PageDraft     PageStatus = 0
	PagePublished PageStatus = 1
	PageArchived  PageStatus = 2
)

func (s PageStatus) String() string {
	switch s {
	case PageDraft:
		return "Draft"
	case PagePublished:
		return "Published"
	case PageArchived:
		return "Archived"
	default:
		return fmt.Sprintf("PageStatus(%d)", uint16(s))
	}
}

// ParsePageStatus maps a status name to its value.
func ParsePageStatus(s string) (PageStatus, error) {
	switch s {
	case "Draft":
		return PageDraft, nil
	case "Published":
		return PagePublished, nil
	case "Archived":
		return PageArchived, nil
	}
	return 0, fmt.Errorf("unknown page status %q", s)
}

func (s PageStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *PageStatus) UnmarshalText(b []byte) error {
	v, err := ParsePageStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// lifecycle is the shared transition table of wikis and pages:
// Draft is initial only, Published and Archived alternate.
type lifecycle int

const (
	stateDraft lifecycle = iota
	statePublished
	stateArchived
	stateOther
)

func checkTransition(from, to lifecycle) (noop bool, ok bool) {
	if to == stateDraft || to == stateOther {
		return false, false
	}
	if from == to {
		return true, true
	}
	switch to {
	case statePublished:
		return false, from == stateDraft || from == stateArchived
	case stateArchived:
		return false, from == statePublished
	}
	return false, false
}

func wikiState(s WikiStatus) lifecycle {
	switch s {
	case WikiUncreated, WikiDraft:
		return stateDraft
	case WikiPublished:
		return statePublished
	case WikiArchived:
		return stateArchived
	}
	return stateOther
}

func pageState(s PageStatus) lifecycle {
	switch s {
	case PageDraft:
		return stateDraft
	case PagePublished:
		return statePublished
	case PageArchived:
		return stateArchived
	}
	return stateOther
}

// TransitionWiki validates a wiki status change. noop is true when the
// wiki already has the target status.
func TransitionWiki(from, to WikiStatus) (noop bool, err error) {
	noop, ok := checkTransition(wikiState(from), wikiState(to))
	if !ok {
		return false, &errs.TransitionError{From: from.String(), Target: to.String()}
	}
	return noop, nil
}

// TransitionPage validates a page status change.
func TransitionPage(from, to PageStatus) (noop bool, err error) {
	noop, ok := checkTransition(pageState(from), pageState(to))
	if !ok {
		return false, &errs.TransitionError{From: from.String(), Target: to.String()}
	}
	return noop, nil
}

// StampPublished sets *at on the first publication and never clears it.
func StampPublished(at **time.Time, published bool, now time.Time) {
	if published && *at == nil {
		t := now
		*at = &t
	}
}
