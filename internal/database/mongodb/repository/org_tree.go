package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orgchart/config"
	"orgchart/internal/core"
	client "orgchart/internal/database/client"
	"orgchart/internal/database/mongodb/model"
	"orgchart/internal/orgtree"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const indexTimeout = 10 * time.Second

type OrgTreeRepository struct {
	logger     *zap.Logger
	collection *mongo.Collection
	documentID string
}

func NewOrgTreeRepository(logger *zap.Logger, config *config.Configuration, mongoClient *client.MongoClient) *OrgTreeRepository {
	collection := mongoClient.Client().Database(config.MongoDB.Database).Collection(config.MongoDB.Collection)
	return newOrgTreeRepository(logger, collection)
}

// 索引建立失敗不阻擋啟動，只留下警告
func newOrgTreeRepository(logger *zap.Logger, collection *mongo.Collection) *OrgTreeRepository {
	repository := &OrgTreeRepository{
		logger:     logger,
		collection: collection,
		documentID: core.MongoTreeDocumentID,
	}
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if err := repository.ensureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure MongoDB indexes",
			zap.String("collection", collection.Name()),
			zap.Error(err),
		)
	}
	return repository
}

func (repository *OrgTreeRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.OrgTreeIndexes)
	return err
}

func (repository *OrgTreeRepository) Backend() string {
	return string(core.StorageMongo)
}

func (repository *OrgTreeRepository) Exists(contextValue context.Context) (bool, error) {
	count, err := repository.collection.CountDocuments(contextValue, bson.M{"_id": repository.documentID})
	if err != nil {
		return false, fmt.Errorf("count tree document: %w", err)
	}
	return count > 0, nil
}

func (repository *OrgTreeRepository) Load(contextValue context.Context) (_ *orgtree.Node, returnedError error) {
	var document model.OrgTree
	returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": repository.documentID}).Decode(&document)
	if errors.Is(returnedError, mongo.ErrNoDocuments) {
		return orgtree.NewVirtualRoot(), nil
	}
	if returnedError != nil {
		return nil, fmt.Errorf("find tree document: %w", returnedError)
	}
	if document.Root == nil {
		return orgtree.NewVirtualRoot(), nil
	}
	// bson 會把空陣列以外的 nil slice 存成 null
	if err := orgtree.FillChildren(document.Root); err != nil {
		return nil, fmt.Errorf("decode tree document: %w", err)
	}
	return document.Root, nil
}

func (repository *OrgTreeRepository) Save(contextValue context.Context, root *orgtree.Node) (returnedError error) {
	document := model.OrgTree{
		ID:        repository.documentID,
		Root:      root,
		Employees: orgtree.Len(root),
		UpdatedAt: time.Now().UTC(),
	}
	_, returnedError = repository.collection.ReplaceOne(
		contextValue,
		bson.M{"_id": repository.documentID},
		document,
		options.Replace().SetUpsert(true),
	)
	if returnedError != nil {
		return fmt.Errorf("replace tree document: %w", returnedError)
	}
	return nil
}

// Update load → fn → save；兩個請求同時寫入時以後寫者為準
func (repository *OrgTreeRepository) Update(contextValue context.Context, fn func(root *orgtree.Node) error) error {
	root, err := repository.Load(contextValue)
	if err != nil {
		return err
	}
	if err := fn(root); err != nil {
		return err
	}
	return repository.Save(contextValue, root)
}
