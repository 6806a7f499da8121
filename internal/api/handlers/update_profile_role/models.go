package update_profile_role

// UpdateRoleRequest HTTP request model
type UpdateRoleRequest struct {
	Role string `json:"role"`
}
