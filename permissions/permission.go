// Package permissions maps endpoints to actions and actions to the roles allowed to perform them.
package permissions

import (
	"cinema/shared/constant"
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Action string

const (
	ActionRead      Action = "read"
	ActionManage    Action = "manage"
	ActionReserve   Action = "reserve"
	ActionReadOwn   Action = "read_own"
	ActionCancelOwn Action = "cancel_own"
)

var policy = map[string][]Action{
	constant.RoleSuperAdmin: {ActionRead, ActionManage, ActionReserve, ActionReadOwn, ActionCancelOwn},
	constant.RoleStaff:      {ActionRead, ActionManage, ActionReserve, ActionReadOwn, ActionCancelOwn},
	constant.RoleCustomer:   {ActionRead, ActionReserve, ActionReadOwn, ActionCancelOwn},
	constant.RoleGuest:      {ActionRead},
}

// Allow reports whether role may perform action. Unknown roles are treated as guests.
func Allow(role string, action Action) bool {
	actions, ok := policy[role]
	if !ok {
		actions = policy[constant.RoleGuest]
	}

	return slices.Contains(actions, action)
}

// IsStaff reports whether role may act on records owned by others.
func IsStaff(role string) bool {
	return Allow(role, ActionManage)
}

// CanAccess reports whether actor may see or change a record created by owner.
func CanAccess(role, actor, owner string) bool {
	if IsStaff(role) {
		return true
	}

	return actor != constant.Empty && actor == owner
}

type Permission struct {
	Action Action `json:"action"`
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for a route pattern, or a zero Permission when none is declared.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
