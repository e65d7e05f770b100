// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "customer_name", Type: field.TypeString},
		{Name: "customer_address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "customer_npwp", Type: field.TypeString, Nullable: true},
		{Name: "representative_name", Type: field.TypeString, Nullable: true},
		{Name: "representative_title", Type: field.TypeString, Nullable: true},
		{Name: "connectivity_count", Type: field.TypeInt, Default: 0},
		{Name: "non_connectivity_count", Type: field.TypeInt, Default: 0},
		{Name: "bundling_count", Type: field.TypeInt, Default: 0},
		{Name: "installation_cost", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "subscription_cost", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "payment_method", Type: field.TypeString},
		{Name: "payment_description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "payment_confidence", Type: field.TypeString},
		{Name: "valid_from", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "customer_contact_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_contact_email", Type: field.TypeString, Nullable: true},
		{Name: "customer_contact_phone", Type: field.TypeString, Nullable: true},
		{Name: "telkom_contact_name", Type: field.TypeString, Nullable: true},
		{Name: "telkom_contact_email", Type: field.TypeString, Nullable: true},
		{Name: "telkom_contact_phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
	}
	// ContractFilesColumns holds the columns for the "contract_files" table.
	ContractFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ContractFilesTable holds the schema information for the "contract_files" table.
	ContractFilesTable = &schema.Table{
		Name:       "contract_files",
		Columns:    ContractFilesColumns,
		PrimaryKey: []*schema.Column{ContractFilesColumns[0]},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "page_tokens", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_contracts_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_contract_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{ContractFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
			{
				Name:    "extractjob_contract_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10]},
			},
		},
	}
	// TerminPaymentsColumns holds the columns for the "termin_payments" table.
	TerminPaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "period_label", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "source_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "synthesized", Type: field.TypeBool, Default: false},
		{Name: "contract_id", Type: field.TypeUUID},
	}
	// TerminPaymentsTable holds the schema information for the "termin_payments" table.
	TerminPaymentsTable = &schema.Table{
		Name:       "termin_payments",
		Columns:    TerminPaymentsColumns,
		PrimaryKey: []*schema.Column{TerminPaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "termin_payments_contracts_termin_payments",
				Columns:    []*schema.Column{TerminPaymentsColumns[6]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "terminpayment_contract_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{TerminPaymentsColumns[6], TerminPaymentsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractsTable,
		ContractFilesTable,
		ExtractJobTable,
		TerminPaymentsTable,
	}
)

func init() {
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	ContractFilesTable.Annotation = &entsql.Annotation{
		Table: "contract_files",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = ContractsTable
	ExtractJobTable.ForeignKeys[1].RefTable = ContractFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	TerminPaymentsTable.ForeignKeys[0].RefTable = ContractsTable
	TerminPaymentsTable.Annotation = &entsql.Annotation{
		Table: "termin_payments",
	}
}
