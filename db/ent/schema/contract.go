package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/constants"
	"github.com/prasetyadi/contracts-tracker/db/ent/schema/utils"
)

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("customer_name").NotEmpty(),
		field.String("customer_address").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("customer_npwp").Optional().Nillable(),
		field.String("representative_name").Optional().Nillable(),
		field.String("representative_title").Optional().Nillable(),
		field.Int("connectivity_count").Default(0).Min(0),
		field.Int("non_connectivity_count").Default(0).Min(0),
		field.Int("bundling_count").Default(0).Min(0),
		field.String("installation_cost").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.String("subscription_cost").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.String("payment_method").NotEmpty().
			Validate(utils.EnumValidator(constants.PaymentMethods...)),
		field.String("payment_description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("payment_confidence").NotEmpty().
			Validate(utils.EnumValidator(constants.Confidences...)),
		field.Time("valid_from").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("valid_until").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("customer_contact_name").Optional().Nillable(),
		field.String("customer_contact_email").Optional().Nillable(),
		field.String("customer_contact_phone").Optional().Nillable(),
		field.String("telkom_contact_name").Optional().Nillable(),
		field.String("telkom_contact_email").Optional().Nillable(),
		field.String("telkom_contact_phone").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contract -> MANY termin installments
		edge.To("termin_payments", TerminPayment.Type),
		// ONE contract -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
