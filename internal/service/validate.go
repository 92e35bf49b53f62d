package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/errs"
)

const (
	categoryTextMax = 32
	pageTextMax     = 64
	maxCategories   = 128
)

const textClass = `[\p{L}\p{Mn}\p{Nd}\p{Pc}\s\.,!?'"()&+\-*/\\:;@%<>=|{}\[\]^~]`

var (
	categoryNameRe = regexp.MustCompile(fmt.Sprintf(`^%s{3,%d}$`, textClass, categoryTextMax))
	categorySlugRe = regexp.MustCompile(fmt.Sprintf(`^[a-z0-9-]{3,%d}$`, categoryTextMax))
	pageTitleRe    = regexp.MustCompile(fmt.Sprintf(`^%s{3,%d}$`, textClass, pageTextMax))
	pageSlugRe     = regexp.MustCompile(fmt.Sprintf(`^[a-z0-9-]{3,%d}$`, pageTextMax))
)

// checkText applies the shared length and character rules for names,
// titles and slugs. label is the capitalised field name used in messages.
func checkText(v *errs.ValidationError, field, label, value string, max int, re *regexp.Regexp, charMsg string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, label+" is required")
		return false
	}
	n := utf8.RuneCountInString(value)
	switch {
	case n < 3:
		v.Add(field, label+" must be at least 3 characters long")
	case n > max:
		v.Add(field, fmt.Sprintf("%s must be at most %d characters long", label, max))
	case !re.MatchString(value):
		v.Add(field, charMsg)
	default:
		return true
	}
	return false
}

const slugCharsMsg = "Slug may only contain lowercase letters, numbers, and hyphens"

// slugTaken looks up an existing entity by slug. lookup returns the id of
// the holder or errs.ErrNotFound.
func slugTaken(ctx context.Context, self uuid.UUID, lookup func(context.Context) (uuid.UUID, error)) (bool, error) {
	id, err := lookup(ctx)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return id != self, nil
}

func (g *guard) validateCategory(ctx context.Context, wikiID, self uuid.UUID, name, slug string) error {
	var v errs.ValidationError
	checkText(&v, "name", "Name", name, categoryTextMax, categoryNameRe, "Name contains invalid characters")
	if checkText(&v, "slug", "Slug", slug, categoryTextMax, categorySlugRe, slugCharsMsg) {
		taken, err := slugTaken(ctx, self, func(ctx context.Context) (uuid.UUID, error) {
			c, err := g.Categories.GetBySlug(ctx, wikiID, slug)
			if err != nil {
				return uuid.Nil, err
			}
			return c.ID, nil
		})
		if err != nil {
			return err
		}
		if taken {
			v.Add("slug", "A category with this slug already exists")
		}
	}
	return v.OrNil()
}

func (g *guard) validatePage(ctx context.Context, wikiID, self uuid.UUID, title, slug string) error {
	var v errs.ValidationError
	checkText(&v, "title", "Title", title, pageTextMax, pageTitleRe, "Title contains invalid characters")
	if checkText(&v, "slug", "Slug", slug, pageTextMax, pageSlugRe, slugCharsMsg) {
		taken, err := slugTaken(ctx, self, func(ctx context.Context) (uuid.UUID, error) {
			p, err := g.Pages.GetBySlug(ctx, wikiID, slug)
			if err != nil {
				return uuid.Nil, err
			}
			return p.ID, nil
		})
		if err != nil {
			return err
		}
		if taken {
			v.Add("slug", "A page with this slug already exists")
		}
	}
	return v.OrNil()
}

// slugConflict turns a unique violation raced past validation into the
// same field error validation would have produced.
func slugConflict(err error, msg string) error {
	if errors.Is(err, errs.ErrAlreadyExists) {
		return errs.Invalid("slug", msg)
	}
	return err
}
