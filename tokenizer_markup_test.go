package xmldoc

import "testing"

func firstIssueMessages(t *testing.T, input string) []string {
	t.Helper()
	_, issues := tokenize(input)
	var out []string
	for _, iss := range issues {
		out = append(out, iss.Message)
	}
	return out
}

func assertHasMsg(t *testing.T, input, want string) {
	t.Helper()
	msgs := firstIssueMessages(t, input)
	for _, m := range msgs {
		if m == want {
			return
		}
	}
	t.Errorf("tokenize(%q) issues = %v, want %s", input, msgs, want)
}

func TestDeclarationWrongFirstAttributeName(t *testing.T) {
	assertHasMsg(t, `<?xml encoding="utf-8"?>`, MsgExpectedDeclarationVersionAttribute)
}

func TestDeclarationWrongVersionValue(t *testing.T) {
	assertHasMsg(t, `<?xml version="2.0"?>`, MsgInvalidDeclarationVersionAttributeValue)
}

func TestDeclarationMissingVersionAtEOF(t *testing.T) {
	assertHasMsg(t, `<?xml`, MsgMissingDeclarationVersionAttribute)
}

func TestDeclarationSecondAttributeWrongName(t *testing.T) {
	assertHasMsg(t, `<?xml version="1.0" bogus="x"?>`, MsgExpectedDeclarationEncodingOrStandaloneAttribute)
}

func TestDeclarationThirdAttributeWrongName(t *testing.T) {
	assertHasMsg(t, `<?xml version="1.0" encoding="utf-8" bogus="x"?>`,
		MsgExpectedDeclarationEncodingOrStandaloneAttributeOrRightQuestionMark)
}

func TestDeclarationInvalidStandaloneValue(t *testing.T) {
	assertHasMsg(t, `<?xml version="1.0" standalone="maybe"?>`, MsgInvalidDeclarationStandaloneAttributeValue)
}

func TestDeclarationSpuriousBeforeQuestionMark(t *testing.T) {
	assertHasMsg(t, `<?xml version="1.0" encoding="utf-8" standalone="yes" @ ?>`, MsgExpectedDeclarationRightQuestionMark)
}

func TestDeclarationSpuriousBeforeRightAngle(t *testing.T) {
	assertHasMsg(t, `<?xml version="1.0"?x>`, MsgExpectedDeclarationRightAngleBracket)
}

func TestDeclarationUnterminatedAtEOF(t *testing.T) {
	assertHasMsg(t, `<?xml version="1.0"`, MsgMissingDeclarationRightQuestionMark)
}

func TestProcessingInstructionUnterminated(t *testing.T) {
	assertHasMsg(t, `<?pi data`, MsgMissingProcessingInstructionRightQuestionMark)
}

func TestProcessingInstructionBareRightAngle(t *testing.T) {
	assertHasMsg(t, `<?pi data>`, MsgExpectedProcessingInstructionRightQuestionMark)
}

func TestCommentMissingSecondStartDashAtEOF(t *testing.T) {
	assertHasMsg(t, `<!-`, MsgMissingCommentSecondStartDash)
}

func TestCommentWrongSecondStartDash(t *testing.T) {
	assertHasMsg(t, `<!-x not a comment-->`, MsgExpectedCommentSecondStartDash)
}

func TestCommentUnterminatedNoClosingDashes(t *testing.T) {
	assertHasMsg(t, `<!-- body`, MsgMissingCommentClosingDashes)
}

func TestCommentUnterminatedOneClosingDash(t *testing.T) {
	assertHasMsg(t, `<!-- body-`, MsgMissingCommentSecondClosingDash)
}

func TestCommentUnterminatedTwoClosingDashesNoAngle(t *testing.T) {
	assertHasMsg(t, `<!-- body--`, MsgMissingCommentRightAngleBracket)
}

func TestCDATAWrongName(t *testing.T) {
	assertHasMsg(t, `<![WRONG[x]]>`, MsgExpectedCDATAName)
}

func TestCDATAMissingNameAtEOF(t *testing.T) {
	assertHasMsg(t, `<![`, MsgMissingCDATAName)
}

func TestCDATAMissingSecondBracket(t *testing.T) {
	assertHasMsg(t, `<![CDATA x]]>`, MsgExpectedCDATASecondLeftSquareBracket)
}

func TestDOCTYPEExpectedRootName(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE >`, MsgExpectedDOCTYPERootElementName)
}

func TestDOCTYPEMissingRootNameAtEOF(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE `, MsgMissingDOCTYPERootElementName)
}

func TestDOCTYPEInvalidExternalIdKeyword(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE a BOGUS "x">`, MsgInvalidDOCTYPEExternalIdType)
}

func TestDOCTYPEExpectedPublicIdentifier(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE a PUBLIC >`, MsgExpectedDOCTYPEPublicIdentifier)
}

func TestDOCTYPEMissingPublicIdentifierAtEOF(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE a PUBLIC `, MsgMissingDOCTYPEPublicIdentifier)
}

func TestDOCTYPEMissingRightAngleBracket(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE a`, MsgMissingDOCTYPERightAngleBracket)
}

func TestDOCTYPEInternalSubsetUnterminated(t *testing.T) {
	assertHasMsg(t, `<!DOCTYPE a [`, MsgMissingInternalDefinitionRightSquareBracket)
}

func TestReadDeclarationXMLCaseSensitiveLiteral(t *testing.T) {
	// The "xml" name match that selects Declaration vs. ProcessingInstruction
	// is an exact literal comparison, not case-insensitive Matches.
	segs, _ := tokenize(`<?XML version="1.0"?>`)
	if _, ok := segs[0].(*ProcessingInstruction); !ok {
		t.Fatalf("segs[0] = %T, want *ProcessingInstruction (literal \"xml\" required)", segs[0])
	}
}
