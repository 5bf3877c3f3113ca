package auth

import (
	"strings"

	"github.com/google/uuid"
)

// CanMutate reports whether callerID may modify a resource authored by
// resourceAuthorID. An empty id on either side never grants access. Likes
// are not governed by this rule.
func CanMutate(resourceAuthorID, callerID string) bool {
	author, caller := normalizeID(resourceAuthorID), normalizeID(callerID)
	if author == "" || caller == "" {
		return false
	}
	return author == caller
}

// normalizeID maps equivalent spellings of the same id onto one form:
// UUIDs in any case or with braces collapse to the canonical string.
func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
