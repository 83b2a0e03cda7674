package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/microblog/platform/internal/core/domain"
)

const profilesCollection = "user_profiles"

type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: db.Collection(profilesCollection)}
}

// EnsureIndexes enforces one profile per auth account. Idempotent.
func (r *MongoProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "auth_user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type mongoProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AuthUserID  string             `bson:"auth_user_id"`
	DisplayName string             `bson:"display_name"`
	Bio         string             `bson:"bio,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	doc := mongoProfile{
		AuthUserID:  profile.AuthUserID,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		CreatedAt:   profile.CreatedAt.Unix(),
		UpdatedAt:   profile.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MongoProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProfileRepository) FindByAuthUserID(ctx context.Context, authUserID string) (*domain.Profile, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"auth_user_id": authUserID}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProfileRepository) List(ctx context.Context, limit, offset int64) ([]*domain.Profile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Profile
	for cur.Next(ctx) {
		var mp mongoProfile
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	return out, cur.Err()
}

func (r *MongoProfileRepository) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(profile.ID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	update := bson.M{"$set": bson.M{
		"display_name": profile.DisplayName,
		"bio":          profile.Bio,
		"updated_at":   profile.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (r *MongoProfileRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (mp mongoProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:          mp.ID.Hex(),
		AuthUserID:  mp.AuthUserID,
		DisplayName: mp.DisplayName,
		Bio:         mp.Bio,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}
}
