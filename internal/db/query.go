package db

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KeisukeTTTT/estate-management/internal/models"
)

// SortField orders results by a stored field. Dotted paths reach into included relations.
type SortField struct {
	Field string
	Desc  bool
}

func Asc(field string) SortField  { return SortField{Field: field} }
func Desc(field string) SortField { return SortField{Field: field, Desc: true} }

// Relation joins the record referenced by LocalField into the result under As.
// Optional relations keep records whose reference is empty or dangling; required
// relations drop them.
type Relation struct {
	As         string
	From       models.Kind
	LocalField string
	Optional   bool
	Include    []Relation
}

// Query is the read shape the services need: a filter, an ordering and relation includes.
type Query struct {
	Filter  bson.M
	Sort    []SortField
	Include []Relation
}

// Pipeline renders q as an aggregation. Relations are joined before sorting so
// that sort fields may name joined values.
func (q Query) Pipeline() mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if len(q.Filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: q.Filter}})
	}
	for _, rel := range q.Include {
		pipeline = append(pipeline, rel.stages()...)
	}
	if len(q.Sort) > 0 {
		sort := bson.D{}
		for _, f := range q.Sort {
			dir := 1
			if f.Desc {
				dir = -1
			}
			sort = append(sort, bson.E{Key: f.Field, Value: dir})
		}
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	return pipeline
}

func (r Relation) stages() []bson.D {
	inner := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$eq", Value: bson.A{"$_id", "$$ref"}},
		}}}}},
	}
	for _, nested := range r.Include {
		for _, stage := range nested.stages() {
			inner = append(inner, stage)
		}
	}

	lookup := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: r.From.Collection()},
		{Key: "let", Value: bson.D{{Key: "ref", Value: "$" + r.LocalField}}},
		{Key: "pipeline", Value: inner},
		{Key: "as", Value: r.As},
	}}}
	unwind := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + r.As},
		{Key: "preserveNullAndEmptyArrays", Value: r.Optional},
	}}}
	return []bson.D{lookup, unwind}
}
