package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/generic"
)

// fakeUserRepo is an in-memory repository.IUserRepository.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo(seed ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
	for _, u := range seed {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	u.SetID(primitive.NewObjectID())
	u.Touch(time.Now())
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, generic.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindOne(context.Context, bson.M) (*model.User, error) {
	return nil, generic.ErrNotFound
}

func (r *fakeUserRepo) Find(context.Context, bson.M, *options.FindOptions) ([]*model.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Count(context.Context, bson.M) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Replace(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return generic.ErrNotFound
	}
	u.Touch(time.Now())
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return generic.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindPage(_ context.Context, _ bson.M, _, _ int, _ bson.D) ([]*model.User, int64, error) {
	out := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (r *fakeUserRepo) FindByResetTokenHash(_ context.Context, hash string) (*model.User, error) {
	for _, u := range r.users {
		if hash != "" && u.Metadata.ResetTokenHash == hash {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (r *fakeUserRepo) FindByVerificationTokenHash(_ context.Context, hash string) (*model.User, error) {
	for _, u := range r.users {
		if hash != "" && u.Metadata.VerificationTokenHash == hash {
			return u, nil
		}
	}
	return nil, generic.ErrNotFound
}

func (r *fakeUserRepo) IncrementLoginAttempts(_ context.Context, id primitive.ObjectID) error {
	u, ok := r.users[id]
	if !ok {
		return generic.ErrNotFound
	}
	u.Security.LoginAttempts++
	return nil
}

func (r *fakeUserRepo) RecordLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return generic.ErrNotFound
	}
	u.Security.LastLoginAt = &at
	u.Security.LoginAttempts = 0
	return nil
}

// fakeSettingsRepo is an in-memory repository.ISettingsRepository. When
// raceDoc is set, Insert behaves as if a concurrent writer created the
// singleton first.
type fakeSettingsRepo struct {
	doc     *model.WebsiteConfig
	raceDoc *model.WebsiteConfig
	inserts int
}

func (r *fakeSettingsRepo) Get(context.Context) (*model.WebsiteConfig, error) {
	if r.doc == nil {
		return nil, generic.ErrNotFound
	}
	return r.doc, nil
}

func (r *fakeSettingsRepo) Insert(_ context.Context, cfg *model.WebsiteConfig) error {
	if r.raceDoc != nil {
		r.doc = r.raceDoc
		return repository.ErrSingletonExists
	}
	if r.doc != nil {
		return repository.ErrSingletonExists
	}
	cfg.Key = model.WebsiteConfigKey
	cfg.SetID(primitive.NewObjectID())
	cfg.Touch(time.Now())
	r.doc = cfg
	r.inserts++
	return nil
}

func (r *fakeSettingsRepo) Replace(_ context.Context, cfg *model.WebsiteConfig) error {
	if r.doc == nil {
		return generic.ErrNotFound
	}
	cfg.Touch(time.Now())
	r.doc = cfg
	return nil
}
