package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MonirMohammed1995/matrimony-management-server/config"
	"github.com/MonirMohammed1995/matrimony-management-server/database"
	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

const dbTimeout = 10 * time.Second

// Handler bundles the dependencies every route needs. The allocator is
// an interface so creation paths can be exercised without a live
// deployment; in production it is the store itself.
type Handler struct {
	Store *database.Store
	Cfg   *config.Config
	Alloc database.IDAllocator
}

func New(store *database.Store, cfg *config.Config) *Handler {
	return &Handler{
		Store: store,
		Cfg:   cfg,
		Alloc: store,
	}
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// isAdmin reports whether the account holds the admin role. A missing
// account is simply not an admin.
func (h *Handler) isAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := h.Store.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}
