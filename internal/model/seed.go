package model

import (
	"context"
	"errors"

	"inventory/internal/entity"

	"gorm.io/gorm"
)

// SeedDefaultRoles ensures the fixed role set exists. The operation is
// idempotent so restarts and concurrent instances converge on the same two
// rows.
func SeedDefaultRoles(ctx context.Context, repo Repository) error {
	if repo == nil {
		return nil
	}

	for _, name := range []string{entity.RoleAdmin, entity.RoleUser} {
		_, err := repo.GetRoleByName(ctx, name)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			role := entity.DbRole{Name: name}
			if err := repo.CreateRole(ctx, &role); err != nil {
				// Another instance may have seeded the row between the
				// lookup and the insert.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return err
			}
		default:
			return err
		}
	}
	return nil
}
