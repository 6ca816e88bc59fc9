package cli

import (
	"testing"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/session"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	member := &models.User{ID: "u1", Email: "user@example.com"}
	admin := &models.User{ID: "u2", Email: "admin@example.com", IsAdmin: true}

	tests := []struct {
		name   string
		snap   session.Snapshot
		access Access
		want   Decision
	}{
		{
			name:   "public screen with no session",
			snap:   session.Snapshot{},
			access: AccessPublic,
			want:   DecisionAllow,
		},
		{
			name:   "public screen while loading",
			snap:   session.Snapshot{Loading: true},
			access: AccessPublic,
			want:   DecisionAllow,
		},
		{
			name:   "user screen while loading",
			snap:   session.Snapshot{Loading: true},
			access: AccessUser,
			want:   DecisionWait,
		},
		{
			name:   "admin screen while loading",
			snap:   session.Snapshot{Loading: true},
			access: AccessAdmin,
			want:   DecisionWait,
		},
		{
			name:   "user screen with no session",
			snap:   session.Snapshot{},
			access: AccessUser,
			want:   DecisionSignIn,
		},
		{
			name:   "user screen with token but no identity",
			snap:   session.Snapshot{Token: "t"},
			access: AccessUser,
			want:   DecisionSignIn,
		},
		{
			name:   "user screen with identity but no token",
			snap:   session.Snapshot{User: member},
			access: AccessUser,
			want:   DecisionSignIn,
		},
		{
			name:   "user screen with member session",
			snap:   session.Snapshot{User: member, Token: "t"},
			access: AccessUser,
			want:   DecisionAllow,
		},
		{
			name:   "admin screen with member session",
			snap:   session.Snapshot{User: member, Token: "t"},
			access: AccessAdmin,
			want:   DecisionDashboard,
		},
		{
			name:   "admin screen with admin session",
			snap:   session.Snapshot{User: admin, Token: "t"},
			access: AccessAdmin,
			want:   DecisionAllow,
		},
		{
			name:   "admin screen with no session",
			snap:   session.Snapshot{},
			access: AccessAdmin,
			want:   DecisionSignIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decide(tt.snap, tt.access))
		})
	}
}
