package generic

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity is an interface that all persisted models must implement.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
	// Touch stamps UpdatedAt (and CreatedAt when unset) before a write.
	Touch(now time.Time)
}
