package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopforge/commerce-api/internal/core/domain"
)

const (
	storeCollection       = "stores"
	storeConfigCollection = "store_configs"
)

type MongoStoreRepository struct {
	stores  *mongo.Collection
	configs *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *MongoStoreRepository {
	return &MongoStoreRepository{
		stores:  db.Collection(storeCollection),
		configs: db.Collection(storeConfigCollection),
	}
}

type mongoStore struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Domain      string             `bson:"domain"`
	CreatedAt   int64              `bson:"created_at"`
}

type mongoStoreConfig struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	StoreID        string             `bson:"store_id"`
	Theme          string             `bson:"theme"`
	LogoURL        string             `bson:"logo_url,omitempty"`
	BannerURL      string             `bson:"banner_url,omitempty"`
	PrimaryColor   string             `bson:"primary_color,omitempty"`
	SecondaryColor string             `bson:"secondary_color,omitempty"`
	Metadata       map[string]any     `bson:"metadata,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
}

func (r *MongoStoreRepository) CreateStore(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	doc := mongoStore{
		OwnerID:     store.OwnerID,
		Name:        store.Name,
		Description: store.Description,
		Domain:      store.Domain,
		CreatedAt:   store.CreatedAt.Unix(),
	}

	res, err := r.stores.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateStore
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}

	created := *store
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoStoreRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID cannot name an existing store.
		return nil, domain.ErrStoreNotFound
	}

	var ms mongoStore
	if err := r.stores.FindOne(ctx, bson.M{"_id": oid, "owner_id": ownerID}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}

	return &domain.Store{
		ID:          ms.ID.Hex(),
		OwnerID:     ms.OwnerID,
		Name:        ms.Name,
		Description: ms.Description,
		Domain:      ms.Domain,
		CreatedAt:   unixToTime(ms.CreatedAt),
	}, nil
}

func (r *MongoStoreRepository) CreateConfig(ctx context.Context, cfg *domain.StoreConfig) (*domain.StoreConfig, error) {
	doc := mongoStoreConfig{
		StoreID:        cfg.StoreID,
		Theme:          cfg.Theme,
		LogoURL:        cfg.LogoURL,
		BannerURL:      cfg.BannerURL,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		Metadata:       cfg.Metadata,
		CreatedAt:      cfg.CreatedAt.Unix(),
	}

	res, err := r.configs.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert store config: %w", err)
	}

	created := *cfg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
