package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	DashboardKeyPrefix = "dashboard:%d"
)

const (
	UserTTL      = 5 * time.Minute
	DashboardTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func DashboardKey(userID uint) string {
	return fmt.Sprintf(DashboardKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateDashboard drops the cached summary after any entry write so the
// next dashboard read reflects it.
func InvalidateDashboard(ctx context.Context, userID uint) {
	Invalidate(ctx, DashboardKey(userID))
}
