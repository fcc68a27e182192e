package entity

import (
	"time"
)

const (
	AdminRolePrincipal = "principal"
	AdminRoleAdmin     = "admin"
	AdminRoleModerator = "moderator"
)

const (
	PermManageProducts  = "manage_products"
	PermManageOrders    = "manage_orders"
	PermManageDelivery  = "manage_delivery"
	PermManageInquiries = "manage_inquiries"
	PermManageAdmins    = "manage_admins"
	PermViewAuditLog    = "view_audit_log"
)

// PermissionsForRole derives the default permission set for a role.
// Records may carry an explicit override instead.
func PermissionsForRole(role string) []string {
	switch role {
	case AdminRolePrincipal:
		return []string{
			PermManageProducts, PermManageOrders, PermManageDelivery,
			PermManageInquiries, PermManageAdmins, PermViewAuditLog,
		}
	case AdminRoleAdmin:
		return []string{
			PermManageProducts, PermManageOrders, PermManageDelivery,
			PermManageInquiries, PermViewAuditLog,
		}
	case AdminRoleModerator:
		return []string{PermManageProducts, PermManageInquiries}
	}
	return nil
}

func IsValidAdminRole(role string) bool {
	switch role {
	case AdminRolePrincipal, AdminRoleAdmin, AdminRoleModerator:
		return true
	}
	return false
}

// AdminRecord is keyed by email in the admins collection.
type AdminRecord struct {
	Email            string     `json:"email" firestore:"email"`
	Role             string     `json:"role" firestore:"role"`
	Permissions      []string   `json:"permissions" firestore:"permissions"`
	IsActive         bool       `json:"is_active" firestore:"isActive"`
	SuspendedAt      *time.Time `json:"suspended_at,omitempty" firestore:"suspendedAt,omitempty"`
	SuspendedBy      string     `json:"suspended_by,omitempty" firestore:"suspendedBy,omitempty"`
	SuspensionReason string     `json:"suspension_reason,omitempty" firestore:"suspensionReason,omitempty"`
	CreatedAt        time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func (a *AdminRecord) HasPermission(perm string) bool {
	for _, p := range a.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// AuditLogEntry is append-only; entries are never updated or deleted.
type AuditLogEntry struct {
	ID         string    `json:"id" firestore:"id"`
	AdminEmail string    `json:"admin_email" firestore:"adminEmail"`
	Action     string    `json:"action" firestore:"action"`
	TargetType string    `json:"target_type" firestore:"targetType"`
	TargetID   string    `json:"target_id" firestore:"targetId"`
	Details    string    `json:"details,omitempty" firestore:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
}
