// Package params defines the request payloads accepted by the per-resource
// services. Add params mirror the "new" model forms; update params carry the
// record key plus optional pointer fields, so omitted fields marshal to
// nothing and the backend leaves them unchanged (patch semantics).
package params

import "trackwallet/internal/api/primitives"

type AddUserParams struct {
	UserID         primitives.UserID    `json:"userId"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	ProfilePicture primitives.URLString `json:"profilePicture"`
}

type UpdateUserParams struct {
	UserID         primitives.UserID     `json:"userId"`
	Name           *string               `json:"name,omitempty"`
	ProfilePicture *primitives.URLString `json:"profilePicture,omitempty"`
}
