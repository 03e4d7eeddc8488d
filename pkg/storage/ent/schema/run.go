package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity.
// Each row records one completed training run. Rows are write-once.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		// id is the run identifier (a UUID)
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		// created_at is when the run finished training
		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// data_path is the corpus directory the run was trained on
		field.String("data_path").
			Immutable(),

		// artifact_dir is where the model and category files were written
		field.String("artifact_dir").
			Immutable(),

		field.Int("hidden_size").
			Immutable(),

		field.Int("iterations").
			Immutable(),

		field.Float("learning_rate").
			Immutable(),

		// seed holds the bit pattern of the uint64 RNG seed.
		// database/sql rejects uint64 values with the high bit set.
		field.Int64("seed").
			Immutable(),

		// loss is the mean training loss over all iterations
		field.Float("loss").
			Immutable(),

		// accuracy is the fraction of sampled predictions that were correct
		field.Float("accuracy").
			Immutable(),

		// categories is the ordered label list the model was trained with
		field.Strings("categories").
			Immutable(),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		// Index on created_at for newest-first listing
		index.Fields("created_at"),
	}
}
