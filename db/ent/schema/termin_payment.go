package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type TerminPayment struct{ ent.Schema }

func (TerminPayment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "termin_payments"},
	}
}

func (TerminPayment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.Int("sequence").Min(1),
		field.String("period_label").Optional().Nillable(),
		field.String("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.String("source_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("synthesized").Default(false),
	}
}

func (TerminPayment) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY installments -> ONE contract (FK: termin_payments.contract_id)
		edge.From("contract", Contract.Type).
			Ref("termin_payments").
			Field("contract_id").
			Required().
			Unique(),
	}
}

func (TerminPayment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id", "sequence").Unique(),
	}
}
