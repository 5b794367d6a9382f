package spec

import (
	"fmt"
	"strings"

	"github.com/lycosa9527/mindgraph/pkg/errors"
)

// Validate checks a normalized spec against its type's requirements:
// required fields present, collections within limits, labels legal.
// It fails before any layout work, so rendering never sees a bad spec.
func Validate(g *Graph) error {
	if g == nil {
		return errors.New(errors.ErrCodeInvalidSpec, "spec must not be nil")
	}
	t, cfg, err := Lookup(string(g.Type))
	if err != nil {
		return err
	}
	for _, field := range cfg.Required {
		if !hasField(g, field) {
			return errors.New(errors.ErrCodeInvalidSpec, "missing key: %s", field)
		}
	}

	switch t {
	case TypeBubbleMap:
		return validateAll(
			errors.ValidateLabel("topic", g.Topic),
			errors.ValidateLabelList("attributes", g.Attributes),
		)
	case TypeCircleMap:
		return validateAll(
			errors.ValidateLabel("topic", g.Topic),
			errors.ValidateLabelList("context", g.Context),
		)
	case TypeDoubleBubbleMap:
		return validateAll(
			errors.ValidateLabel("left", g.Left),
			errors.ValidateLabel("right", g.Right),
			errors.ValidateLabelList("similarities", g.Similarities),
			errors.ValidateLabelList("left_differences", g.LeftDifferences),
			errors.ValidateLabelList("right_differences", g.RightDifferences),
		)
	case TypeBridgeMap:
		return validateBridge(g)
	case TypeTreeMap, TypeMindMap:
		return validateAll(
			errors.ValidateLabel("topic", g.Topic),
			validateBranches("children", g.Children),
		)
	case TypeSemanticWeb:
		return validateAll(
			errors.ValidateLabel("topic", g.Topic),
			validateBranches("branches", g.Branches),
		)
	case TypeFlowchart:
		return validateAll(
			errors.ValidateLabel("title", g.Title),
			validateSteps(g.Steps, true),
		)
	case TypeFlowMap:
		return validateFlowMap(g)
	case TypeMultiFlowMap:
		return validateAll(
			errors.ValidateLabel("event", g.Event),
			errors.ValidateLabelList("causes", g.Causes),
			errors.ValidateLabelList("effects", g.Effects),
		)
	case TypeBraceMap:
		return validateBrace(g)
	case TypeTimeline:
		return validateTimeline(g)
	case TypeConceptMap:
		return validateConcept(g)
	default:
		return errors.New(errors.ErrCodeUnknownType, "unsupported graph type: %s", t)
	}
}

// hasField reports whether a required spec field carries content.
func hasField(g *Graph, field string) bool {
	switch field {
	case "topic":
		return strings.TrimSpace(g.Topic) != ""
	case "title":
		return strings.TrimSpace(g.Title) != ""
	case "event":
		return strings.TrimSpace(g.Event) != ""
	case "left":
		return strings.TrimSpace(g.Left) != ""
	case "right":
		return strings.TrimSpace(g.Right) != ""
	case "attributes":
		return len(g.Attributes) > 0
	case "context":
		return len(g.Context) > 0
	case "causes":
		return len(g.Causes) > 0
	case "effects":
		return len(g.Effects) > 0
	case "similarities":
		return len(g.Similarities) > 0
	case "left_differences":
		return len(g.LeftDifferences) > 0
	case "right_differences":
		return len(g.RightDifferences) > 0
	case "children":
		return len(g.Children) > 0
	case "branches":
		return len(g.Branches) > 0
	case "steps":
		return len(g.Steps) > 0
	case "events":
		return len(g.Events) > 0
	case "parts":
		return len(g.Parts) > 0
	case "concepts":
		return len(g.Concepts) > 0
	case "analogies":
		return len(g.Analogies) > 0
	default:
		return false
	}
}

func validateAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// validateBranches checks a hierarchy level and recurses into children.
func validateBranches(field string, branches []Branch) error {
	if len(branches) == 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s cannot be empty", field)
	}
	if len(branches) > errors.MaxListItems {
		return errors.New(errors.ErrCodeInvalidSpec,
			"%s cannot have more than %d items", field, errors.MaxListItems)
	}
	for i, b := range branches {
		if err := errors.ValidateLabel(fmt.Sprintf("%s[%d].label", field, i), b.Label); err != nil {
			return err
		}
		if len(b.Children) > 0 {
			if err := validateBranches(fmt.Sprintf("%s[%d].children", field, i), b.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateBridge(g *Graph) error {
	if err := errors.ValidateLabel("relating_factor", g.RelatingFactor); err != nil {
		return err
	}
	if len(g.Analogies) > errors.MaxListItems {
		return errors.New(errors.ErrCodeInvalidSpec,
			"analogies cannot have more than %d items", errors.MaxListItems)
	}
	for i, pair := range g.Analogies {
		if err := errors.ValidateLabel(fmt.Sprintf("analogies[%d].left", i), pair.Left); err != nil {
			return err
		}
		if err := errors.ValidateLabel(fmt.Sprintf("analogies[%d].right", i), pair.Right); err != nil {
			return err
		}
	}
	return nil
}

// validateSteps checks a step sequence. Flowcharts additionally constrain
// the step kind; flow maps accept any text steps.
func validateSteps(steps []Step, kinded bool) error {
	if len(steps) > errors.MaxListItems {
		return errors.New(errors.ErrCodeInvalidSpec,
			"steps cannot have more than %d items", errors.MaxListItems)
	}
	for i, s := range steps {
		if err := errors.ValidateLabel(fmt.Sprintf("steps[%d].text", i), s.Text); err != nil {
			return err
		}
		if !kinded {
			continue
		}
		switch s.Kind {
		case StepStart, StepProcess, StepDecision, StepEnd:
		default:
			return errors.New(errors.ErrCodeInvalidSpec,
				"steps[%d].type must be one of: start, process, decision, end", i)
		}
	}
	return nil
}

func validateFlowMap(g *Graph) error {
	if err := errors.ValidateLabel("title", g.Title); err != nil {
		return err
	}
	if err := validateSteps(g.Steps, false); err != nil {
		return err
	}
	known := make(map[string]bool, len(g.Steps))
	for _, s := range g.Steps {
		known[s.Text] = true
	}
	for i, group := range g.Substeps {
		if !known[group.Step] {
			return errors.New(errors.ErrCodeInvalidSpec,
				"substeps[%d].step does not match any step", i)
		}
		if err := errors.ValidateLabelList(fmt.Sprintf("substeps[%d].substeps", i), group.Substeps); err != nil {
			return err
		}
	}
	return nil
}

func validateBrace(g *Graph) error {
	if err := errors.ValidateLabel("topic", g.Topic); err != nil {
		return err
	}
	if len(g.Parts) > errors.MaxListItems {
		return errors.New(errors.ErrCodeInvalidSpec,
			"parts cannot have more than %d items", errors.MaxListItems)
	}
	for i, part := range g.Parts {
		if err := errors.ValidateLabel(fmt.Sprintf("parts[%d].name", i), part.Name); err != nil {
			return err
		}
		if len(part.Subparts) > errors.MaxListItems {
			return errors.New(errors.ErrCodeInvalidSpec,
				"parts[%d].subparts cannot have more than %d items", i, errors.MaxListItems)
		}
		for j, sub := range part.Subparts {
			if err := errors.ValidateLabel(fmt.Sprintf("parts[%d].subparts[%d].name", i, j), sub.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateTimeline(g *Graph) error {
	if err := errors.ValidateLabel("title", g.Title); err != nil {
		return err
	}
	if len(g.Events) > errors.MaxListItems {
		return errors.New(errors.ErrCodeInvalidSpec,
			"events cannot have more than %d items", errors.MaxListItems)
	}
	for i, ev := range g.Events {
		if err := errors.ValidateLabel(fmt.Sprintf("events[%d].title", i), ev.Title); err != nil {
			return err
		}
	}
	return nil
}

func validateConcept(g *Graph) error {
	if err := errors.ValidateLabel("topic", g.Topic); err != nil {
		return err
	}
	if err := errors.ValidateLabelList("concepts", g.Concepts); err != nil {
		return err
	}
	known := make(map[string]bool, len(g.Concepts)+1)
	known[g.Topic] = true
	for _, c := range g.Concepts {
		known[c] = true
	}
	for i, rel := range g.Relationships {
		if !known[rel.From] {
			return errors.New(errors.ErrCodeInvalidSpec,
				"relationships[%d].from references unknown concept: %s", i, rel.From)
		}
		if !known[rel.To] {
			return errors.New(errors.ErrCodeInvalidSpec,
				"relationships[%d].to references unknown concept: %s", i, rel.To)
		}
	}
	return nil
}
