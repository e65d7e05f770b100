package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// serialized ContractRecord. It documents the output contract toward the
// persistence layer and is used locally to validate records before they are
// stored.
func BuildRecordJSONSchema() map[string]any {
	contact := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"title": map[string]any{"type": "string"},
			"email": map[string]any{"type": "string"},
			"phone": map[string]any{"type": "string"},
		},
	}
	installment := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sequence":    map[string]any{"type": "integer", "minimum": 1},
			"period":      map[string]any{"type": "string"},
			"amount":      decimalProp(),
			"source_text": map[string]any{"type": "string"},
		},
		"required": []string{"sequence", "amount"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"customer": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": "string"},
					"address": map[string]any{"type": "string"},
					"tax_id":  map[string]any{"type": "string"},
					"representative": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":  map[string]any{"type": "string"},
							"title": map[string]any{"type": "string"},
						},
					},
					"contact": contact,
				},
			},
			"services": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"connectivity":     countProp(),
					"non_connectivity": countProp(),
					"bundling":         countProp(),
				},
				"required": []string{"connectivity", "non_connectivity", "bundling"},
			},
			"cost_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"installation_cost": decimalProp(),
						"subscription_cost": decimalProp(),
					},
					"required": []string{"installation_cost", "subscription_cost"},
				},
			},
			"payment": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"method": map[string]any{
						"type": "string",
						"enum": []string{
							string(PaymentOneTime),
							string(PaymentRecurring),
							string(PaymentTermin),
							string(PaymentUnknown),
						},
					},
					"description": map[string]any{"type": "string"},
					"confidence": map[string]any{
						"type": "string",
						"enum": []string{
							string(ConfidenceHigh),
							string(ConfidenceMedium),
							string(ConfidenceLow),
						},
					},
					"source_text":  map[string]any{"type": "string"},
					"installments": map[string]any{"type": "array", "items": installment},
					"total_count":  map[string]any{"type": "integer", "minimum": 0},
					"total_amount": decimalProp(),
				},
				"required": []string{"method", "confidence"},
			},
			"telkom_contact": contact,
			"validity": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"start_date": map[string]any{"type": "string"},
					"end_date":   map[string]any{"type": "string"},
				},
			},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"extracted_at": map[string]any{"type": "string"},
					"elapsed_ns":   map[string]any{"type": "integer"},
				},
			},
		},
		"required": []string{"customer", "services", "metadata"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d+)?$`,
	}
}

func countProp() map[string]any {
	return map[string]any{
		"type":    "integer",
		"minimum": 0,
		"maximum": MaxServiceCount,
	}
}

// ValidateRecordJSON validates a serialized record against the schema.
func ValidateRecordJSON(data []byte) error {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("contract_record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("contract_record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
