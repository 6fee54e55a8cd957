package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openfolio/accounts/internal/accounts/domain"
	"github.com/openfolio/accounts/internal/accounts/store"
)

type accountsRepo struct {
	col *mongo.Collection
}

func (r *accountsRepo) GetByIdentity(ctx context.Context, identity string) (domain.Account, error) {
	var a domain.Account
	err := r.col.FindOne(ctx, bson.M{"identity": identity}).Decode(&a)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		// The unique index on identity turns a lost race into a clean
		// duplicate-key error rather than a second account.
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *accountsRepo) ReplaceProfile(
	ctx context.Context,
	identity string,
	u domain.ProfileUpdate,
) (domain.Account, error) {
	update := bson.M{
		"$set": bson.M{
			"display_name":      u.DisplayName,
			"full_name":         u.FullName,
			"date_of_birth":     u.DateOfBirth,
			"gender":            u.Gender,
			"avatar_type":       u.AvatarType,
			"company":           u.Company,
			"university":        u.University,
			"profession":        u.Profession,
			"profile_completed": true,
		},
		"$currentDate": bson.M{"updated_at": true},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a domain.Account
	err := r.col.FindOneAndUpdate(ctx, bson.M{"identity": identity}, update, opts).Decode(&a)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, identity, newHash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"identity": identity},
		bson.M{
			"$set":         bson.M{"password_hash": newHash},
			"$currentDate": bson.M{"updated_at": true},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}
