package submission

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

const (
	// ProvisionerTerraform is the only provisioner the variables form submits.
	ProvisionerTerraform = "terraform"
	// StorageMethodFile marks the template source as an uploaded file.
	StorageMethodFile = "file"
)

// CreateTemplateVersionRequest is the fixed-shape payload handed to the host's
// submit action. Tags always encode as an object, never null.
type CreateTemplateVersionRequest struct {
	TemplateID         uuid.UUID         `json:"template_id" yaml:"template_id"`
	Provisioner        string            `json:"provisioner" yaml:"provisioner"`
	StorageMethod      string            `json:"storage_method" yaml:"storage_method"`
	Tags               map[string]string `json:"tags" yaml:"tags"`
	UserVariableValues []parameter.Value `json:"user_variable_values" yaml:"user_variable_values"`
}

// NewRequest builds the payload for templateID from values, preserving their
// order.
func NewRequest(templateID uuid.UUID, values []parameter.Value) CreateTemplateVersionRequest {
	out := make([]parameter.Value, len(values))
	copy(out, values)
	return CreateTemplateVersionRequest{
		TemplateID:         templateID,
		Provisioner:        ProvisionerTerraform,
		StorageMethod:      StorageMethodFile,
		Tags:               map[string]string{},
		UserVariableValues: out,
	}
}
