package http

import (
	"context"
	"net/http"

	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/utils"
	"github.com/mkarev/go-dataset-hub/models"
)

const (
	apiKeyHeader = "X-API-KEY"
	groupHeader  = "X-Group"
)

// auth resolves the request identity from one of two credential kinds and
// stores the full user record in the request context under
// [utils.UserCtxKey].
//
// Credential resolution order:
//  1. "Authorization: Bearer <jwt>" — the token is validated and the user
//     is loaded by the subject claim.
//  2. "X-API-KEY: <key>" — the user owning the key is loaded directly.
//
// Requests with neither header, a malformed header, an invalid token, or an
// unknown API key are rejected with 401 Unauthorized. The response body never
// distinguishes an unknown credential from a malformed one.
//
// An optional "X-Group" header selects the working group for the request;
// it must name one of the user's memberships, otherwise the request is
// rejected with 403 Forbidden.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		user, err := h.resolveUser(ctx, r)
		if err != nil {
			log.Err(err).Msg("request identity not resolved")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if group := r.Header.Get(groupHeader); group != "" {
			if !user.MemberOf(group) {
				log.Err(ErrGroupNotAllowed).Str("group", group).Str("username", user.Username).Send()
				http.Error(w, ErrGroupNotAllowed.Error(), http.StatusForbidden)
				return
			}
			user.UserGroups = promoteGroup(user.UserGroups, group)
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) resolveUser(ctx context.Context, r *http.Request) (models.User, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return h.userFromBearerToken(ctx, authHeader)
	}

	if apiKey := r.Header.Get(apiKeyHeader); apiKey != "" {
		return h.services.AuthService.FindUserByAPIKey(ctx, apiKey)
	}

	return models.User{}, ErrNoCredentialsProvided
}

func (h *Handler) userFromBearerToken(ctx context.Context, authHeader string) (models.User, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.User{}, ErrInvalidAuthorizationHeader
	}
	if tokenString == "" {
		return models.User{}, ErrEmptyToken
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	return h.services.AuthService.GetUser(ctx, token.Username)
}

// promoteGroup moves group to the front of groups, making it the working
// group for the request without losing the other memberships.
func promoteGroup(groups []string, group string) []string {
	promoted := make([]string, 0, len(groups))
	promoted = append(promoted, group)
	for _, g := range groups {
		if g != group {
			promoted = append(promoted, g)
		}
	}
	return promoted
}
