package scene

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
)

const (
	// ProviderKind is the node kind that injects a preset for its children.
	ProviderKind = "Provider"
	// SpacerKind is blank space between nodes. It resolves no theme.
	SpacerKind = "Spacer"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Kinds lists the node kinds a scene may use.
func Kinds() []string {
	return append(components.Names(), ProviderKind, SpacerKind)
}

func isKind(kind string) bool {
	for _, k := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// validatorInstance returns the shared validator used by the scene package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_kind", func(fl validator.FieldLevel) bool {
			return isKind(fl.Field().String())
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			_, err := presets.Lookup(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks structure and cross-field rules of a scene.
func Validate(s *Scene) error {
	if s == nil {
		return themeerrors.NewValidationError("scene", "scene is nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	for i, node := range s.Components {
		if err := validateNode(node, fmt.Sprintf("components[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(node Node, field string) error {
	if node.Kind == ProviderKind && node.Preset == "" {
		return themeerrors.NewValidationError(field+".preset", "provider requires a preset", nil)
	}
	if node.Kind != ProviderKind && node.Preset != "" {
		return themeerrors.NewValidationError(field+".preset", fmt.Sprintf("preset is only valid on %s nodes", ProviderKind), nil)
	}
	if len(node.Children) > 0 && !acceptsChildren(node.Kind) {
		return themeerrors.NewValidationError(field+".children", fmt.Sprintf("%s does not take children", node.Kind), nil)
	}

	for i, child := range node.Children {
		if err := validateNode(child, fmt.Sprintf("%s.children[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func acceptsChildren(kind string) bool {
	switch kind {
	case components.BoxName, components.CardName, components.StackName, ProviderKind:
		return true
	default:
		return false
	}
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("scene", err.Error(), err)
}

// yamlishFieldName lowers the struct namespace and drops the root type, so
// Scene.Components[0].Kind becomes components[0].kind.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
