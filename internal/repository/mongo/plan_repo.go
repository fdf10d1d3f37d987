// internal/repository/mongo/plan_repo.go
package mongo

import (
	"context"
	"errors"
	"log"

	"github.com/Gokul-G-G/Travel-Planner/internal/domain"
	"github.com/Gokul-G-G/Travel-Planner/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlanCollectionName is the collection backing the plans resource.
const PlanCollectionName = "plans"

// mongoPlanRepository implements repository.PlanRepository
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new Plan repository backed by MongoDB.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(PlanCollectionName),
	}
}

// Create inserts a new plan with a freshly generated ObjectID and returns the stored record.
func (r *mongoPlanRepository) Create(ctx context.Context, fields domain.PlanFields) (*domain.Plan, error) {
	plan := &domain.Plan{
		ID:          primitive.NewObjectID(),
		Destination: fields.Destination,
		StartDate:   fields.StartDate,
		EndDate:     fields.EndDate,
		Activities:  fields.Activities,
		Version:     0,
	}

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		return nil, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("failed to convert inserted plan ID")
	}
	plan.ID = insertedID
	return plan, nil
}

// GetAll returns every plan in natural order. No filter, no paging.
func (r *mongoPlanRepository) GetAll(ctx context.Context) ([]domain.Plan, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []domain.Plan{}
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByID retrieves a single plan by its ID.
func (r *mongoPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// UpdateByID writes every field of fields onto the stored plan: present
// fields are $set, absent ones are $unset. The post-update document is returned.
func (r *mongoPlanRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields domain.PlanFields) (*domain.Plan, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var plan domain.Plan
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, buildPlanUpdate(fields), opts).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// DeleteByID removes a plan and returns the removed document.
func (r *mongoPlanRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	var plan domain.Plan
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// buildPlanUpdate never returns an empty update: each of the four fields
// lands in exactly one of $set or $unset.
func buildPlanUpdate(fields domain.PlanFields) bson.M {
	set := bson.M{}
	unset := bson.M{}

	if fields.Destination != nil {
		set["destination"] = *fields.Destination
	} else {
		unset["destination"] = ""
	}
	if fields.StartDate != nil {
		set["startDate"] = *fields.StartDate
	} else {
		unset["startDate"] = ""
	}
	if fields.EndDate != nil {
		set["endDate"] = *fields.EndDate
	} else {
		unset["endDate"] = ""
	}
	if fields.Activities != nil {
		set["activities"] = fields.Activities
	} else {
		unset["activities"] = ""
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// EnsurePlanIndexes creates necessary indexes for the plans collection. Call during startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "destination", Value: 1}},
			Options: options.Index().SetName("destination_1"),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
