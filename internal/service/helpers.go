// Package service implements the business rules between the HTTP handlers
// and the repositories: slug generation, form-data coercion, pagination,
// uniqueness checks. Services throw apperr errors and never format HTTP
// responses.
package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/generic"
	"github.com/forgestack/atlas-backend/pkg/util"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// searchFilter builds a case-insensitive regex $or across the given fields.
func searchFilter(search string, fields ...string) []bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	or := make([]bson.M, len(fields))
	for i, f := range fields {
		or[i] = bson.M{f: pattern}
	}
	return or
}

// applyString overwrites dst only when the request supplied the field.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// applyList decodes a supplied delimited string into the stored array.
func applyList(dst *[]string, src *string) {
	if src != nil {
		*dst = util.ParseArrayFromString(*src)
	}
}

// applyBool coerces a supplied string boolean onto the stored flag.
func applyBool(dst *bool, src *string) {
	if src != nil {
		*dst = util.ParseBool(*src)
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// findByIDOrSlug resolves a public identifier: slug first, internal id only
// when the identifier is syntactically a valid ObjectID.
func findByIDOrSlug[T generic.Entity](ctx context.Context, repo *repository.SluggedRepository[T], idOrSlug, resource string) (T, error) {
	entity, err := repo.FindBySlug(ctx, idOrSlug)
	if err == nil {
		return entity, nil
	}
	if !errors.Is(err, generic.ErrNotFound) {
		return entity, err
	}

	if util.IsValidObjectID(idOrSlug) {
		id, _ := util.ParseObjectID(idOrSlug)
		entity, err = repo.GetByID(ctx, id)
		if err == nil {
			return entity, nil
		}
		if !errors.Is(err, generic.ErrNotFound) {
			return entity, err
		}
	}

	var zero T
	return zero, apperr.NotFound(resource)
}

// ensureUniqueSlug raises a conflict when another document owns the slug.
// The database unique index remains the final arbiter under races; this
// pre-check only provides the friendlier error. Pass NilObjectID on create.
func ensureUniqueSlug[T generic.Entity](ctx context.Context, repo *repository.SluggedRepository[T], slug, resource string, excludeID primitive.ObjectID) error {
	exists, err := repo.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict(resource, "slug")
	}
	return nil
}
