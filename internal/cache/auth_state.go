package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/finotty/duqueLoja/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState shopper auth snapshot kept in Redis so token checks do
// not hit the database on every request. TokenInvalidBefore is a Unix
// timestamp in seconds, 0 when unset.
type UserAuthState struct {
	UserID             uint   `json:"user_id"`
	Status             string `json:"status"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	UpdatedAt          int64  `json:"updated_at"`
}

// AdminAuthState admin auth snapshot
type AdminAuthState struct {
	AdminID            uint   `json:"admin_id"`
	Username           string `json:"username"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	IsSuper            bool   `json:"is_super"`
	UpdatedAt          int64  `json:"updated_at"`
}

func userAuthStateKey(userID uint) string   { return fmt.Sprintf("auth:user:%d", userID) }
func adminAuthStateKey(adminID uint) string { return fmt.Sprintf("auth:admin:%d", adminID) }

func unixOrZero(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.Unix()
}

// getAuthState loads one snapshot; a zero id short-circuits to a miss
// so callers never cache anonymous identities.
func getAuthState[T any](ctx context.Context, id uint, key string) (*T, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	var state T
	hit, err := GetJSON(ctx, key, &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// BuildUserAuthState builds an auth snapshot from a user row
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:             user.ID,
		Status:             user.Status,
		TokenVersion:       user.TokenVersion,
		TokenInvalidBefore: unixOrZero(user.TokenInvalidBefore),
		UpdatedAt:          time.Now().Unix(),
	}
}

// BuildAdminAuthState builds an auth snapshot from an admin row
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	return &AdminAuthState{
		AdminID:            admin.ID,
		Username:           admin.Username,
		TokenVersion:       admin.TokenVersion,
		TokenInvalidBefore: unixOrZero(admin.TokenInvalidBefore),
		IsSuper:            admin.IsSuper,
		UpdatedAt:          time.Now().Unix(),
	}
}

// GetUserAuthState reads a user auth snapshot
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	return getAuthState[UserAuthState](ctx, userID, userAuthStateKey(userID))
}

// SetUserAuthState writes a user auth snapshot
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// DelUserAuthState removes a user auth snapshot
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, userAuthStateKey(userID))
}

// GetAdminAuthState reads an admin auth snapshot
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	return getAuthState[AdminAuthState](ctx, adminID, adminAuthStateKey(adminID))
}

// SetAdminAuthState writes an admin auth snapshot
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, adminAuthStateKey(state.AdminID), state, authStateCacheTTL)
}

// DelAdminAuthState removes an admin auth snapshot
func DelAdminAuthState(ctx context.Context, adminID uint) error {
	if adminID == 0 {
		return nil
	}
	return Del(ctx, adminAuthStateKey(adminID))
}
