package collect

import (
	"fmt"

	"shape-exporter/internal/common"
	"shape-exporter/internal/diagnostic"
	"shape-exporter/internal/model"
)

// Environment is the read-only view of the host needed by the collector.
type Environment interface {
	// MarkedElements returns every declaration and member carrying the marker.
	MarkedElements() []model.Element
	// AllMembers returns the own and inherited members of a declaration.
	// It returns nil for unknown identities.
	AllMembers(decl string) []model.Element
}

// Collect builds the Mapping for one pass over env.
func Collect(env Environment) (*model.Mapping, *diagnostic.Diagnostics) {
	mapping := model.NewMapping()
	diags := &diagnostic.Diagnostics{}

	for _, el := range env.MarkedElements() {
		switch el.Kind {
		case model.KindDeclaration:
			mapping.Ensure(el.Name)

		case model.KindField:
			if el.Owner == "" {
				diags.AddWarning(diagnostic.CodeUnresolvedOwner,
					fmt.Sprintf("marked field at %s has no named owner, skipped", el.Pos), "", el.Name)
				continue
			}

			mapping.Append(el.Owner, el.Member())

		case model.KindMethod, model.KindOther:
			diags.AddInfo(diagnostic.CodeIgnoredElement,
				fmt.Sprintf("%s at %s is not a struct declaration or field", el.Kind, el.Pos), el.Owner, el.Name)
		}
	}

	for _, id := range mapping.Keys() {
		members, _ := mapping.Members(id)
		if !common.IsEmpty(members) {
			continue
		}

		inherited := FieldsOf(env.AllMembers(id))
		if common.IsEmpty(inherited) {
			continue
		}

		mapping.Replace(id, inherited)
		diags.AddInfo(diagnostic.CodeExpandedMembers,
			fmt.Sprintf("no marked fields, expanded to %d inherited fields", len(inherited)), id, "")
	}

	return mapping, diags
}

// FieldsOf keeps only the field-like elements, as members.
func FieldsOf(elements []model.Element) []model.Member {
	var members []model.Member
	for _, el := range elements {
		if el.IsField() {
			members = append(members, el.Member())
		}
	}

	return members
}
