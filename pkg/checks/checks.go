// Package checks implements the validation rules for an agent
// configuration root: agent frontmatter and model values, skill packages,
// command documents, JSON validity, markdown cross-references, stale doc
// patterns, builder-skill grounding files, and the meta-review pipeline
// wiring. Each check is a pure function of the directory tree that reports
// findings rather than failing; only filesystem-level read errors
// propagate as errors.
package checks

import "fmt"

// Severity classifies a finding as blocking or advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category is the stable identifier for a class of finding. These tags are
// part of the output contract and must not be renamed.
type Category string

const (
	CategoryAgentDir          Category = "AGENT_DIR"
	CategoryAgentFrontmatter  Category = "AGENT_FRONTMATTER"
	CategoryAgentField        Category = "AGENT_FIELD"
	CategoryAgentModel        Category = "AGENT_MODEL"
	CategorySkillRef          Category = "SKILL_REF"
	CategorySkillDir          Category = "SKILL_DIR"
	CategorySkillFile         Category = "SKILL_FILE"
	CategorySkillFrontmatter  Category = "SKILL_FRONTMATTER"
	CategorySkillField        Category = "SKILL_FIELD"
	CategorySkillNameMismatch Category = "SKILL_NAME_MISMATCH"
	CategoryCmdDir            Category = "CMD_DIR"
	CategoryCmdFrontmatter    Category = "CMD_FRONTMATTER"
	CategoryCmdField          Category = "CMD_FIELD"
	CategoryJSONInvalid       Category = "JSON_INVALID"
	CategoryDocRef            Category = "DOC_REF"
	CategoryStale             Category = "STALE"
	CategoryGrounding         Category = "GROUNDING"
	CategoryMetaPipeline      Category = "META_PIPELINE"
	CategoryConfig            Category = "CONFIG"
)

// Finding is one reported problem: a severity, a stable category tag, and
// a message naming the offending file. Findings are immutable values.
type Finding struct {
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// String renders the finding in the `[CATEGORY] message` report form.
func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s", f.Category, f.Message)
}

// Result collects the findings produced by a single check, errors and
// warnings separately, each in deterministic traversal order.
type Result struct {
	Errors   []Finding
	Warnings []Finding
}

func (r *Result) errorf(category Category, format string, args ...any) {
	r.Errors = append(r.Errors, Finding{
		Severity: SeverityError,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Result) warnf(category Category, format string, args ...any) {
	r.Warnings = append(r.Warnings, Finding{
		Severity: SeverityWarning,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Func is a single check: given the config root it returns its findings.
// A returned error means the filesystem itself failed mid-check and the
// whole run should abort; rule violations are findings, never errors.
type Func func(root string) (Result, error)

type registeredCheck struct {
	name string
	fn   Func
}

// registry holds all checks in their fixed execution order. Findings are
// reported in this order, so it is part of the output contract.
var registry = []registeredCheck{
	{"agents", CheckAgents},
	{"skills", CheckSkills},
	{"commands", CheckCommands},
	{"json", CheckJSON},
	{"references", CheckReferences},
	{"stale", CheckStale},
	{"grounding", CheckGrounding},
	{"meta-pipeline", CheckMetaPipeline},
}

// Names returns all registered check names in execution order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, c := range registry {
		names = append(names, c.name)
	}
	return names
}

// Lookup returns the check registered under name, if any.
func Lookup(name string) (Func, bool) {
	for _, c := range registry {
		if c.name == name {
			return c.fn, true
		}
	}
	return nil, false
}
