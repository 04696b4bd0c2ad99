package model

import (
	"time"

	"orgchart/internal/orgtree"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrgTree 整棵組織樹存成單一文件
type OrgTree struct {
	ID        string        `json:"id" bson:"_id"`
	Root      *orgtree.Node `json:"root" bson:"root"`
	Employees int           `json:"employees" bson:"employees"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

var OrgTreeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("idx_updatedAt"),
	},
}
