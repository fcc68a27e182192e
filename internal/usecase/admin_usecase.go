package usecase

import (
	"context"
	"strings"
	"time"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
	"campussell/pkg/utils"
)

type AdminUseCase struct {
	adminRepo           repository.AdminRepository
	auditRepo           repository.AuditLogRepository
	principalAdminEmail string
}

func NewAdminUseCase(adminRepo repository.AdminRepository, auditRepo repository.AuditLogRepository, principalAdminEmail string) *AdminUseCase {
	return &AdminUseCase{
		adminRepo:           adminRepo,
		auditRepo:           auditRepo,
		principalAdminEmail: strings.ToLower(principalAdminEmail),
	}
}

func (uc *AdminUseCase) isPrincipal(email string) bool {
	return strings.EqualFold(email, uc.principalAdminEmail)
}

func (uc *AdminUseCase) GetAdmin(ctx context.Context, email string) (*entity.AdminRecord, error) {
	return uc.adminRepo.GetByEmail(ctx, strings.ToLower(email))
}

func (uc *AdminUseCase) ListAdmins(ctx context.Context) ([]*entity.AdminRecord, error) {
	return uc.adminRepo.List(ctx)
}

// EnsurePrincipalAdmin creates the principal record on first boot if it is
// missing. Idempotent.
func (uc *AdminUseCase) EnsurePrincipalAdmin(ctx context.Context) error {
	_, err := uc.adminRepo.GetByEmail(ctx, uc.principalAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	admin := &entity.AdminRecord{
		Email:       uc.principalAdminEmail,
		Role:        entity.AdminRolePrincipal,
		Permissions: entity.PermissionsForRole(entity.AdminRolePrincipal),
		IsActive:    true,
	}

	logger.Info("Creating principal admin record for %s", uc.principalAdminEmail)
	return uc.adminRepo.Create(ctx, admin)
}

func (uc *AdminUseCase) CreateAdmin(ctx context.Context, actorEmail, email, role string) (*entity.AdminRecord, error) {
	email = strings.ToLower(email)

	if role == entity.AdminRolePrincipal || uc.isPrincipal(email) {
		return nil, errors.Conflict("There is exactly one principal admin")
	}
	if !entity.IsValidAdminRole(role) {
		return nil, errors.BadRequest("Invalid admin role: "+role, nil)
	}

	if _, err := uc.adminRepo.GetByEmail(ctx, email); err == nil {
		return nil, errors.Conflict("Admin record already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	admin := &entity.AdminRecord{
		Email:       email,
		Role:        role,
		Permissions: entity.PermissionsForRole(role),
		IsActive:    true,
	}

	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	uc.logAction(ctx, actorEmail, "create_admin", email, "role "+role)
	return admin, nil
}

func (uc *AdminUseCase) UpdateAdminRole(ctx context.Context, actorEmail, email, role string) (*entity.AdminRecord, error) {
	email = strings.ToLower(email)

	if uc.isPrincipal(email) {
		return nil, errors.Conflict("The principal admin role cannot be changed")
	}
	if role == entity.AdminRolePrincipal {
		return nil, errors.Conflict("There is exactly one principal admin")
	}
	if !entity.IsValidAdminRole(role) {
		return nil, errors.BadRequest("Invalid admin role: "+role, nil)
	}

	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	previous := admin.Role
	admin.Role = role
	admin.Permissions = entity.PermissionsForRole(role)

	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	uc.logAction(ctx, actorEmail, "update_admin_role", email, previous+" -> "+role)
	return admin, nil
}

func (uc *AdminUseCase) SuspendAdmin(ctx context.Context, actorEmail, email, reason string) (*entity.AdminRecord, error) {
	email = strings.ToLower(email)

	if uc.isPrincipal(email) {
		return nil, errors.Conflict("The principal admin cannot be suspended")
	}

	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin.IsActive = false
	admin.SuspendedAt = &now
	admin.SuspendedBy = actorEmail
	admin.SuspensionReason = reason

	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	uc.logAction(ctx, actorEmail, "suspend_admin", email, reason)
	return admin, nil
}

func (uc *AdminUseCase) ReactivateAdmin(ctx context.Context, actorEmail, email string) (*entity.AdminRecord, error) {
	email = strings.ToLower(email)

	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	admin.IsActive = true
	admin.SuspendedAt = nil
	admin.SuspendedBy = ""
	admin.SuspensionReason = ""

	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	uc.logAction(ctx, actorEmail, "reactivate_admin", email, "")
	return admin, nil
}

func (uc *AdminUseCase) DeleteAdmin(ctx context.Context, actorEmail, email string) error {
	email = strings.ToLower(email)

	if uc.isPrincipal(email) {
		return errors.Conflict("The principal admin cannot be deleted")
	}

	if _, err := uc.adminRepo.GetByEmail(ctx, email); err != nil {
		return err
	}

	if err := uc.adminRepo.Delete(ctx, email); err != nil {
		return err
	}

	uc.logAction(ctx, actorEmail, "delete_admin", email, "")
	return nil
}

func (uc *AdminUseCase) GetAuditLog(ctx context.Context, adminEmail string, page, limit int) ([]*entity.AuditLogEntry, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.auditRepo.List(ctx, adminEmail, pagination.PageSize, pagination.Offset)
}

func (uc *AdminUseCase) logAction(ctx context.Context, actorEmail, action, targetID, details string) {
	entry := &entity.AuditLogEntry{
		AdminEmail: actorEmail,
		Action:     action,
		TargetType: "admin",
		TargetID:   targetID,
		Details:    details,
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		logger.LogAuditError(actorEmail, action, err)
	}
}
