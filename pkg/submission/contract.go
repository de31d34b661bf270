package submission

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

const requestSchemaName = "CreateTemplateVersionRequest"

//go:embed contract.yaml
var contractDocument []byte

var (
	contractOnce   sync.Once
	contractSchema *openapi3.Schema
	contractErr    error
)

// ContractDocument returns the OpenAPI description of the payload the backend
// accepts.
func ContractDocument() []byte {
	return append([]byte(nil), contractDocument...)
}

// ValidateContract checks a payload against the backend contract.
func ValidateContract(req CreateTemplateVersionRequest) error {
	schema, err := requestSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("submission: encode request: %w", err)
	}
	return ValidatePayload(schema, raw)
}

// ValidatePayload checks an already encoded payload against schema. A nil
// schema uses the embedded request contract.
func ValidatePayload(schema *openapi3.Schema, raw []byte) error {
	if schema == nil {
		var err error
		if schema, err = requestSchema(); err != nil {
			return err
		}
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("submission: decode payload: %w", err)
	}
	if err := schema.VisitJSON(payload); err != nil {
		return fmt.Errorf("submission: contract: %w", err)
	}
	return nil
}

func requestSchema() (*openapi3.Schema, error) {
	contractOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(contractDocument)
		if err != nil {
			contractErr = fmt.Errorf("submission: load contract: %w", err)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			contractErr = fmt.Errorf("submission: invalid contract: %w", err)
			return
		}
		ref, ok := doc.Components.Schemas[requestSchemaName]
		if !ok || ref == nil || ref.Value == nil {
			contractErr = fmt.Errorf("submission: contract schema %q missing", requestSchemaName)
			return
		}
		contractSchema = ref.Value
	})
	return contractSchema, contractErr
}
