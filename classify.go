package docsnip

import (
	"fmt"
	"strings"
)

// Reason identifies why a document could not be processed automatically.
type Reason string

// Reason constants. The empty Reason marks a successfully processed document.
const (
	ReasonUnsupportedExtension Reason = "unsupported_extension"
	ReasonNoUsageSection       Reason = "no_usage_section"
	ReasonWrongBlockCount      Reason = "wrong_block_count"
	ReasonBadImportShape       Reason = "bad_import_shape"
	ReasonMissingImport        Reason = "missing_import"
	ReasonBadUsageShape        Reason = "bad_usage_shape"
	ReasonMissingUsage         Reason = "missing_usage"
	ReasonIOFailure            Reason = "io_failure"
	ReasonDuplicateName        Reason = "duplicate_name"
)

// Classification is the verdict for a single document. A valid
// classification has no Reason and carries exactly one import block and
// one usage block.
type Classification struct {
	Reason Reason    `json:"reason,omitempty"`
	Detail string    `json:"detail,omitempty"`
	Import CodeBlock `json:"import"`
	Usage  CodeBlock `json:"usage"`
}

// Valid reports whether the document can be processed automatically.
func (c Classification) Valid() bool {
	return c.Reason == ""
}

// Invalid returns a classification rejecting a document.
func Invalid(reason Reason, format string, args ...any) Classification {
	return Classification{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Classifier decides whether a document's code blocks match the expected
// import + usage shape.
type Classifier interface {
	Classify(doc *Document) Classification
}

// Policy names a classification strategy.
type Policy string

// Policy constants.
const (
	// PolicyStrict requires a usage section with exactly two well-shaped blocks.
	PolicyStrict Policy = "strict"

	// PolicyContent partitions every block of the document by content.
	PolicyContent Policy = "content"
)

// NewClassifier returns the classifier implementing policy.
// An empty policy selects PolicyStrict.
func NewClassifier(policy Policy) (Classifier, error) {
	switch policy {
	case PolicyStrict, "":
		return StrictClassifier{}, nil
	case PolicyContent:
		return ContentClassifier{}, nil
	default:
		return nil, Errorf(EINVALID, "unknown classification policy %q", policy)
	}
}

// Ensure classifiers implement Classifier at compile time.
var (
	_ Classifier = StrictClassifier{}
	_ Classifier = ContentClassifier{}
)

// StrictClassifier expects the usage section to contain exactly an import
// block followed by a usage block consisting of a single element.
type StrictClassifier struct{}

// Classify implements Classifier.
func (StrictClassifier) Classify(doc *Document) Classification {
	section, ok := ExtractUsageSection(doc.Content)
	if !ok {
		return Invalid(ReasonNoUsageSection, "could not find %q section", UsageHeading)
	}
	return ClassifySection(section)
}

// ClassifySection applies the strict rules to the code blocks of section.
func ClassifySection(section string) Classification {
	var blocks []CodeBlock
	for b := range CodeBlocks(section) {
		blocks = append(blocks, b)
		if len(blocks) > 2 {
			break
		}
	}
	switch {
	case len(blocks) > 2:
		return Invalid(ReasonWrongBlockCount, "has more than 2 code blocks")
	case len(blocks) < 2:
		return Invalid(ReasonWrongBlockCount, "has %d code blocks, want 2", len(blocks))
	}

	imp, usage := blocks[0], blocks[1]
	if strings.Count(imp.Code, "import") > 1 {
		return Invalid(ReasonBadImportShape, "import code block has more than one import")
	}
	if !strings.HasSuffix(imp.Code, `"`) && !strings.HasSuffix(imp.Code, `";`) {
		return Invalid(ReasonBadImportShape, `import code block does not end with " or ";`)
	}
	if !strings.HasPrefix(usage.Code, "<") || !strings.HasSuffix(usage.Code, ">") {
		return Invalid(ReasonBadUsageShape, "usage code block is not a single element")
	}

	return Classification{Import: imp, Usage: usage}
}

// ContentClassifier scans every code block of the document, in any order,
// and picks the first block mentioning "import" and the first block that
// does not. No shape checks are applied.
type ContentClassifier struct{}

// Classify implements Classifier.
func (ContentClassifier) Classify(doc *Document) Classification {
	var imp, usage *CodeBlock
	for b := range CodeBlocks(doc.Content) {
		if strings.Contains(b.Code, "import") {
			if imp == nil {
				imp = &b
			}
		} else if usage == nil {
			usage = &b
		}
		if imp != nil && usage != nil {
			break
		}
	}

	if imp == nil {
		return Invalid(ReasonMissingImport, "no code block contains an import")
	}
	if usage == nil {
		return Invalid(ReasonMissingUsage, "no code block without an import")
	}
	return Classification{Import: *imp, Usage: *usage}
}
