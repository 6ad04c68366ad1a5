package mongodb

import (
	"GameAdmin/internal/building/domain"
	"GameAdmin/internal/building/infra/persistence/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollectionName = "building_configuration"

var errNilCollection = errors.New("mongodb building_configuration collection is nil")

type ConfigRepo struct {
	coll *mongo.Collection
}

func NewConfigRepo(db *mongo.Database) *ConfigRepo {
	if db == nil {
		return &ConfigRepo{}
	}
	return &ConfigRepo{coll: db.Collection(defaultCollectionName)}
}

// EnsureIndexes 建 building_type 唯一索引，类型重复靠它兜底。
func (r *ConfigRepo) EnsureIndexes(ctx context.Context) error {
	if r.coll == nil {
		return domain.ErrSystemUnavailable.WithCause(errNilCollection)
	}
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "building_type", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_building_type"),
	})
	if err != nil {
		return domain.ErrSystemUnavailable.WithCause(err)
	}
	return nil
}

func (r *ConfigRepo) List(ctx context.Context) ([]domain.Configuration, error) {
	if r.coll == nil {
		return nil, domain.ErrSystemUnavailable.WithCause(errNilCollection)
	}
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	var docs []model.ConfigurationDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, domain.ErrSystemUnavailable.WithCause(err)
	}
	out := make([]domain.Configuration, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToDomain())
	}
	return out, nil
}

func (r *ConfigRepo) Get(ctx context.Context, id int64) (domain.Configuration, error) {
	if r.coll == nil {
		return domain.Configuration{}, domain.ErrSystemUnavailable.WithCause(errNilCollection)
	}
	var doc model.ConfigurationDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	switch {
	case err == nil:
		return doc.ToDomain(), nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.Configuration{}, domain.ErrNotFound.WithData("id", id)
	default:
		return domain.Configuration{}, domain.ErrSystemUnavailable.WithData("id", id).WithCause(err)
	}
}

func (r *ConfigRepo) Create(ctx context.Context, c domain.Configuration) error {
	if r.coll == nil {
		return domain.ErrSystemUnavailable.WithCause(errNilCollection)
	}
	_, err := r.coll.InsertOne(ctx, model.ToDoc(c))
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrTypeExist.WithData("buildingType", string(c.BuildingType)).WithCause(err)
	default:
		return domain.ErrSystemUnavailable.WithData("buildingType", string(c.BuildingType)).WithCause(err)
	}
}

func (r *ConfigRepo) Update(ctx context.Context, c domain.Configuration) error {
	if r.coll == nil {
		return domain.ErrSystemUnavailable.WithCause(errNilCollection)
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{
		"building_cost":     c.BuildingCost,
		"construction_time": c.ConstructionTime,
		"mtime":             c.Mtime,
	}})
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("id", c.ID).WithCause(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound.WithData("id", c.ID)
	}
	return nil
}

func (r *ConfigRepo) Delete(ctx context.Context, id int64) error {
	if r.coll == nil {
		return domain.ErrSystemUnavailable.WithCause(errNilCollection)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.ErrSystemUnavailable.WithData("id", id).WithCause(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound.WithData("id", id)
	}
	return nil
}
