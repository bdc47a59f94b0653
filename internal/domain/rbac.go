package domain

// EnforceRequest lives here so middleware can depend on it without importing rbac.
type EnforceRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=80"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        string   `json:"name" binding:"omitempty,max=80"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// PermissionMatrix is the toggle grid for one role.
type PermissionMatrix struct {
	RoleID     string                     `json:"role_id"`
	RoleName   string                     `json:"role_name"`
	Categories []PermissionMatrixCategory `json:"categories"`
}

type PermissionMatrixCategory struct {
	Category    string                  `json:"category"`
	Permissions []PermissionMatrixEntry `json:"permissions"`
}

type PermissionMatrixEntry struct {
	PermissionResponse
	Granted bool `json:"granted"`
}

type UpdateRolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"omitempty,dive,uuid"`
}
