package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/pkg/generic"
)

// CareerRepository persists open positions. Careers have no slug; lookups
// are by internal id only.
type CareerRepository struct {
	*generic.MongoBaseRepository[*model.Career]
}

func NewCareerRepository(db *mongo.Database) *CareerRepository {
	return &CareerRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Career](db.Collection("careers")),
	}
}
