package xmldoc

import "fmt"

// Severity classifies an Issue. The core currently has exactly one
// severity (spec.md §7: "one error class"); the type exists so a
// future severity can be added without breaking Issue's shape.
type Severity int

const (
	SeverityError Severity = iota
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is a structured diagnostic produced during tokenizing or
// document building: {severity, message, span}. The core never raises
// exceptions; malformed input produces a parse tree and a list of
// Issues, pushed in detection order to an append-only sink (spec.md §5,
// §7).
type Issue struct {
	Severity Severity
	Message  string
	Span     Span
}

// String renders "<message> at <span>", a supplemented convenience
// (SPEC_FULL.md §4) for quick display in tests and example code.
func (i Issue) String() string {
	return fmt.Sprintf("%s at %s", i.Message, i.Span)
}

// IssueSink receives diagnostics in document order. A *[]Issue (via
// IssueSlice) is the built-in implementation; callers may supply their
// own to integrate with existing error-reporting infrastructure.
type IssueSink interface {
	Add(Issue)
}

// IssueSlice is an append-only IssueSink backed by a slice, the
// default sink used when a caller does not supply one.
type IssueSlice struct {
	Issues []Issue
}

// Add appends issue to the slice.
func (s *IssueSlice) Add(issue Issue) {
	s.Issues = append(s.Issues, issue)
}

// The message taxonomy. Every diagnostic the tokenizer and document
// builder can emit is named here; message text is the identifier
// itself, matching spec.md §6 ("message text is fixed and testable").
const (
	MsgMissingNameQuestionMarkExclamationPointOrForwardSlash = "missingNameQuestionMarkExclamationPointOrForwardSlash"
	MsgExpectedNameQuestionMarkExclamationPointOrForwardSlash = "expectedNameQuestionMarkExclamationPointOrForwardSlash"

	MsgMissingDeclarationOrProcessingInstructionName  = "missingDeclarationOrProcessingInstructionName"
	MsgExpectedDeclarationOrProcessingInstructionName = "expectedDeclarationOrProcessingInstructionName"

	MsgExpectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket = "expectedDOCTYPENameCommentDashesOrCDATALeftSquareBracket"

	// Start / end / empty-element tag reader (§4.2.1)
	MsgExpectedEmptyElementRightAngleBracket = "expectedEmptyElementRightAngleBracket"
	MsgExpectedWhitespaceBetweenAttributes   = "expectedWhitespaceBetweenAttributes"
	MsgExpectedWhitespaceStartTagRightAngleBracketOrEmptyElementForwardSlash  = "expectedWhitespaceStartTagRightAngleBracketOrEmptyElementForwardSlash"
	MsgExpectedAttributeNameStartTagRightAngleBracketOrEmptyElementForwardSlash = "expectedAttributeNameStartTagRightAngleBracketOrEmptyElementForwardSlash"
	MsgMissingStartTagRightAngleBracket = "missingStartTagRightAngleBracket"
	MsgMissingEmptyElementRightAngleBracket = "missingEmptyElementRightAngleBracket"
	MsgMissingEndTagName  = "missingEndTagName"
	MsgExpectedEndTagName = "expectedEndTagName"
	MsgExpectedEndTagRightAngleBracket = "expectedEndTagRightAngleBracket"
	MsgMissingEndTagRightAngleBracket  = "missingEndTagRightAngleBracket"

	// Declaration reader (§4.2.2)
	MsgMissingDeclarationVersionAttribute  = "missingDeclarationVersionAttribute"
	MsgExpectedDeclarationVersionAttribute = "expectedDeclarationVersionAttribute"
	MsgInvalidDeclarationVersionAttributeValue = "invalidDeclarationVersionAttributeValue"
	MsgExpectedDeclarationEncodingOrStandaloneAttribute           = "expectedDeclarationEncodingOrStandaloneAttribute"
	MsgExpectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark = "expectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark"
	MsgInvalidDeclarationStandaloneAttributeValue = "invalidDeclarationStandaloneAttributeValue"
	MsgExpectedDeclarationRightQuestionMark = "expectedDeclarationRightQuestionMark"
	MsgExpectedDeclarationRightAngleBracket = "expectedDeclarationRightAngleBracket"
	MsgMissingDeclarationRightQuestionMark  = "missingDeclarationRightQuestionMark"
	MsgMissingDeclarationRightAngleBracket  = "missingDeclarationRightAngleBracket"

	// Processing instruction reader (§4.2.3)
	MsgMissingProcessingInstructionRightQuestionMark  = "missingProcessingInstructionRightQuestionMark"
	MsgMissingProcessingInstructionRightAngleBracket  = "missingProcessingInstructionRightAngleBracket"
	MsgExpectedProcessingInstructionRightQuestionMark = "expectedProcessingInstructionRightQuestionMark"

	// DOCTYPE reader (§4.2.5)
	MsgMissingDOCTYPERootElementName  = "missingDOCTYPERootElementName"
	MsgExpectedDOCTYPERootElementName = "expectedDOCTYPERootElementName"
	MsgInvalidDOCTYPEExternalIdType   = "invalidDOCTYPEExternalIdType"
	MsgMissingDOCTYPEPublicIdentifier  = "missingDOCTYPEPublicIdentifier"
	MsgExpectedDOCTYPEPublicIdentifier = "expectedDOCTYPEPublicIdentifier"
	MsgMissingDOCTYPESystemIdentifier  = "missingDOCTYPESystemIdentifier"
	MsgExpectedDOCTYPESystemIdentifier = "expectedDOCTYPESystemIdentifier"
	MsgMissingInternalDefinitionRightSquareBracket = "missingInternalDefinitionRightSquareBracket"
	MsgExpectedDOCTYPERightAngleBracket = "expectedDOCTYPERightAngleBracket"
	MsgMissingDOCTYPERightAngleBracket  = "missingDOCTYPERightAngleBracket"

	// Comment reader (§4.2.6)
	MsgExpectedCommentSecondStartDash = "expectedCommentSecondStartDash"
	MsgMissingCommentSecondStartDash  = "missingCommentSecondStartDash"
	MsgMissingCommentClosingDashes       = "missingCommentClosingDashes"
	MsgMissingCommentSecondClosingDash   = "missingCommentSecondClosingDash"
	MsgMissingCommentRightAngleBracket   = "missingCommentRightAngleBracket"

	// CDATA reader (§4.2.7)
	MsgMissingCDATAName  = "missingCDATAName"
	MsgExpectedCDATAName = "expectedCDATAName"
	MsgMissingCDATASecondLeftSquareBracket  = "missingCDATASecondLeftSquareBracket"
	MsgExpectedCDATASecondLeftSquareBracket = "expectedCDATASecondLeftSquareBracket"

	// Attribute reader (§4.2.8)
	MsgMissingAttributeEqualsSign  = "missingAttributeEqualsSign"
	MsgExpectedAttributeEqualsSign = "expectedAttributeEqualsSign"
	MsgMissingAttributeValue  = "missingAttributeValue"
	MsgExpectedAttributeValue = "expectedAttributeValue"
	MsgMissingQuotedStringEndQuote = "missingQuotedStringEndQuote"

	// Unrecognized-tag reader (§4.2.9)
	MsgMissingTagRightAngleBracket = "missingTagRightAngleBracket"

	// Element builder (§4.4)
	MsgMissingElementEndTag                   = "missingElementEndTag"
	MsgExpectedElementEndTagWithDifferentName  = "expectedElementEndTagWithDifferentName"

	// Document builder (§4.5)
	MsgMissingDocumentRootElement             = "missingDocumentRootElement"
	MsgDocumentDeclarationMustBeFirstSegment   = "documentDeclarationMustBeFirstSegment"
	MsgDocumentCanHaveOneDeclaration           = "documentCanHaveOneDeclaration"
	MsgDocumentDOCTYPEMustBeAfterDeclaration   = "documentDOCTYPEMustBeAfterDeclaration"
	MsgDocumentCanHaveOneDOCTYPE               = "documentCanHaveOneDOCTYPE"
	MsgDocumentCanHaveOneRootElement           = "documentCanHaveOneRootElement"
	MsgDocumentCannotHaveTextAtRootLevel       = "documentCannotHaveTextAtRootLevel"
	MsgDocumentCannotHaveCDATAAtRootLevel      = "documentCannotHaveCDATAAtRootLevel"
)

func newIssue(message string, span Span) Issue {
	return Issue{Severity: SeverityError, Message: message, Span: span}
}

func report(sink IssueSink, message string, span Span) {
	if sink == nil {
		return
	}
	sink.Add(newIssue(message, span))
}
