package tutorRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/database"
	"github.com/blue9kamrul/SkillBridge-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTutorRepo implements TutorRepository using MongoDB. It also holds the
// users collection because profile creation/removal flips the user role in
// the same transaction.
type MongoTutorRepo struct {
	coll     *mongo.Collection
	userColl *mongo.Collection
}

// NewMongoTutorRepo creates a new instance of TutorRepository using MongoDB.
func NewMongoTutorRepo() TutorRepository {
	db := database.DB()
	repo := &MongoTutorRepo{
		coll:     db.Collection("tutor_profiles"),
		userColl: db.Collection("users"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create tutor profile indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTutorRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a tutor profile by its unique ID. Returns (nil, nil) when absent.
func (r *MongoTutorRepo) GetByID(ctx context.Context, id string) (*models.TutorProfile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var profile models.TutorProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the tutor profile owned by the given user.
func (r *MongoTutorRepo) GetByUserID(ctx context.Context, userID string) (*models.TutorProfile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var profile models.TutorProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tutor profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// GetAll retrieves all tutor profiles.
func (r *MongoTutorRepo) GetAll(ctx context.Context) ([]models.TutorProfile, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tutor profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.TutorProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode tutor profiles: %w", err)
	}
	return profiles, nil
}

// CreateWithRoleFlip inserts the profile and promotes the owning user to the
// tutor role as a single all-or-nothing unit. A crash between the two writes
// must leave neither applied, hence the transaction.
func (r *MongoTutorRepo) CreateWithRoleFlip(ctx context.Context, profile *models.TutorProfile) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, profile); err != nil {
			return fmt.Errorf("insert tutor profile failed: %w", err)
		}
		update := bson.M{"$set": bson.M{"role": models.RoleTutor, "updated_at": time.Now()}}
		res, err := r.userColl.UpdateOne(sc, bson.M{"id": profile.UserID}, update)
		if err != nil {
			return fmt.Errorf("user role update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("user %s not found", profile.UserID)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("tutor profile transaction failed: %w", err)
	}

	return nil
}

// DeleteWithRoleFlip removes the user's profile and demotes the user to the
// given role as a single all-or-nothing unit.
func (r *MongoTutorRepo) DeleteWithRoleFlip(ctx context.Context, userID string, role models.Role) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.DeleteOne(sc, bson.M{"user_id": userID}); err != nil {
			return fmt.Errorf("delete tutor profile failed: %w", err)
		}
		update := bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}}
		if _, err := r.userColl.UpdateOne(sc, bson.M{"id": userID}, update); err != nil {
			return fmt.Errorf("user role update failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("tutor profile transaction failed: %w", err)
	}

	return nil
}

// Update modifies an existing tutor profile record.
func (r *MongoTutorRepo) Update(ctx context.Context, profile *models.TutorProfile) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile)
	if err != nil {
		return fmt.Errorf("failed to update tutor profile %s: %w", profile.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("tutor profile %s not found", profile.ID)
	}
	return nil
}

// Delete removes a tutor profile record by its ID.
func (r *MongoTutorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete tutor profile %s: %w", id, err)
	}
	return nil
}

// Count returns the total number of tutor profiles.
func (r *MongoTutorRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tutor profiles: %w", err)
	}
	return n, nil
}
