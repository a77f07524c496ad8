package service

import (
	"errors"
	"fmt"

	"building/internal/model"
	"building/pkg/generic"
	"building/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func parseID(id string) (primitive.ObjectID, error) {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return objID, nil
}

func checkEmail(email string) error {
	if err := util.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// toUpdateResult converts a driver update result, translating a zero match
// into ErrNotFound.
func toUpdateResult(res *mongo.UpdateResult, err error) (*model.UpdateResult, error) {
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, fmt.Errorf("%w: no document matched", ErrNotFound)
		}
		return nil, err
	}
	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}
