package server

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/forgestack/atlas-backend/internal/config"
	"github.com/forgestack/atlas-backend/internal/model"
)

// PopulateInitialData creates the first super admin account when the users
// collection is empty and seed credentials are configured. Subsequent starts
// are no-ops.
func PopulateInitialData(ctx context.Context, cfg *config.Config, repos *Repositories, logger *zap.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := repos.Users.Count(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	admin := &model.User{
		Email:       cfg.Seed.AdminEmail,
		Password:    string(hash),
		FirstName:   "Super",
		LastName:    "Admin",
		Role:        model.RoleSuperAdmin,
		Status:      model.StatusActive,
		Permissions: []string{},
		Metadata:    model.UserMetadata{EmailVerified: true},
	}
	if err := repos.Users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	logger.Info("seeded initial super admin", zap.String("email", admin.Email))
	return nil
}
