package permissions_test

import (
	"cinema/permissions"
	"cinema/shared/constant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		action permissions.Action
		want   bool
	}{
		{name: "guest can read", role: constant.RoleGuest, action: permissions.ActionRead, want: true},
		{name: "guest cannot reserve", role: constant.RoleGuest, action: permissions.ActionReserve, want: false},
		{name: "customer can reserve", role: constant.RoleCustomer, action: permissions.ActionReserve, want: true},
		{name: "customer cannot manage", role: constant.RoleCustomer, action: permissions.ActionManage, want: false},
		{name: "staff can manage", role: constant.RoleStaff, action: permissions.ActionManage, want: true},
		{name: "superadmin can manage", role: constant.RoleSuperAdmin, action: permissions.ActionManage, want: true},
		{name: "unknown role falls back to guest", role: "intruder", action: permissions.ActionRead, want: true},
		{name: "unknown role cannot manage", role: "intruder", action: permissions.ActionManage, want: false},
		{name: "empty role cannot reserve", role: "", action: permissions.ActionReserve, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.Allow(tt.role, tt.action))
		})
	}
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name  string
		role  string
		actor string
		owner string
		want  bool
	}{
		{name: "owner", role: constant.RoleCustomer, actor: "u1", owner: "u1", want: true},
		{name: "other customer", role: constant.RoleCustomer, actor: "u2", owner: "u1", want: false},
		{name: "anonymous never owns", role: constant.RoleGuest, actor: "", owner: "", want: false},
		{name: "staff sees everything", role: constant.RoleStaff, actor: "s1", owner: "u1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.CanAccess(tt.role, tt.actor, tt.owner))
		})
	}
}

func TestEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path   string
		method string
		want   permissions.Permission
	}{
		{
			path: "/health", method: http.MethodGet,
			want: permissions.Permission{Path: "/health", Method: http.MethodGet, Skip: true},
		},
		{
			path: "/v1/screenings", method: http.MethodPost,
			want: permissions.Permission{Path: "/v1/screenings", Method: http.MethodPost, Action: permissions.ActionManage},
		},
		{
			path: "/v1/reservations", method: http.MethodPost,
			want: permissions.Permission{Path: "/v1/reservations", Method: http.MethodPost, Action: permissions.ActionReserve},
		},
		{
			path: "/v1/unknown", method: http.MethodGet,
			want: permissions.Permission{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, data.FindPermissions(tt.path, tt.method))
		})
	}
}
