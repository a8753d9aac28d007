// Package identityrepo reads the users table maintained by the identity
// service. The marketplace never writes it.
package identityrepo

import (
	"context"
	"errors"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the database model for user snapshots.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	Role         string `gorm:"index"`
	Verification string
	VehicleType  *string
	Rating       float64
}

// TableName returns the table name for GORM.
func (UserDTO) TableName() string {
	return "users"
}

// GormIdentityStore implements ports.IdentityStore against the shared
// users table.
type GormIdentityStore struct {
	db *gorm.DB
}

// NewGormIdentityStore creates a new GORM identity store.
func NewGormIdentityStore(db *gorm.DB) *GormIdentityStore {
	return &GormIdentityStore{db: db}
}

// FindByID resolves a user by id.
func (s *GormIdentityStore) FindByID(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListVerifiedDrivers returns every driver whose verification passed.
func (s *GormIdentityStore) ListVerifiedDrivers(ctx context.Context) ([]*identity.User, error) {
	var dtos []UserDTO
	err := s.db.WithContext(ctx).
		Where("role = ? AND verification = ?",
			identity.RoleDriver.String(), identity.VerificationVerified.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	users := make([]*identity.User, 0, len(dtos))
	for _, dto := range dtos {
		user, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func toDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := identity.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	verification, err := identity.VerificationFromString(dto.Verification)
	if err != nil {
		return nil, err
	}

	var vehicleType *identity.VehicleType
	if dto.VehicleType != nil && *dto.VehicleType != "" {
		vt, err := identity.VehicleTypeFromString(*dto.VehicleType)
		if err != nil {
			return nil, err
		}
		vehicleType = &vt
	}

	return identity.RestoreUser(id, dto.Name, dto.Phone, role, verification, vehicleType, dto.Rating)
}
