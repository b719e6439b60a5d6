package xmldoc

import "testing"

func TestDeclarationAccessors(t *testing.T) {
	segs := NewTokenizer(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`, nil).Collect()
	decl := segs[0].(*Declaration)

	if v := decl.Version(); v == nil || v.Value().UnquotedString() != "1.0" {
		t.Errorf("Version() = %+v, want value 1.0", v)
	}
	if e := decl.Encoding(); e == nil || e.Value().UnquotedString() != "UTF-8" {
		t.Errorf("Encoding() = %+v, want value UTF-8", e)
	}
	if s := decl.Standalone(); s == nil || s.Value().UnquotedString() != "yes" {
		t.Errorf("Standalone() = %+v, want value yes", s)
	}
	if len(decl.Attributes()) != 3 {
		t.Errorf("Attributes() = %d entries, want 3", len(decl.Attributes()))
	}
}

func TestDeclarationExposesRejectedSecondAttribute(t *testing.T) {
	sink := &IssueSlice{}
	segs := NewTokenizer(`<?xml version="1.0" bogus="x"?>`, sink).Collect()
	decl := segs[0].(*Declaration)
	// Per the Open Question decision, even a rejected second attribute
	// stays visible through Attributes().
	if len(decl.Attributes()) != 2 {
		t.Fatalf("Attributes() = %d entries, want 2", len(decl.Attributes()))
	}
	if decl.Attributes()[1].NameText() != "bogus" {
		t.Errorf("second attribute = %q, want %q", decl.Attributes()[1].NameText(), "bogus")
	}
	if len(sink.Issues) == 0 {
		t.Errorf("expected at least one diagnostic for the rejected attribute")
	}
}

func TestDOCTYPEWithPublicAndSystemIdentifiers(t *testing.T) {
	segs := NewTokenizer(`<!DOCTYPE html PUBLIC "-//W3C//DTD" "http://example.com/dtd">`, nil).Collect()
	dt := segs[0].(*DOCTYPE)
	if dt.RootName.Text() != "html" {
		t.Errorf("RootName = %q, want html", dt.RootName.Text())
	}
	if dt.PublicID == nil || dt.PublicID.UnquotedString() != "-//W3C//DTD" {
		t.Errorf("PublicID = %+v", dt.PublicID)
	}
	if dt.SystemID == nil || dt.SystemID.UnquotedString() != "http://example.com/dtd" {
		t.Errorf("SystemID = %+v", dt.SystemID)
	}
}

func TestDOCTYPEWithSystemOnly(t *testing.T) {
	segs := NewTokenizer(`<!DOCTYPE html SYSTEM "about:legacy-compat">`, nil).Collect()
	dt := segs[0].(*DOCTYPE)
	if dt.PublicID != nil {
		t.Errorf("PublicID = %+v, want nil", dt.PublicID)
	}
	if dt.SystemID == nil || dt.SystemID.UnquotedString() != "about:legacy-compat" {
		t.Errorf("SystemID = %+v", dt.SystemID)
	}
}

func TestCommentAndCDATAKindAndRoundTrip(t *testing.T) {
	input := "<!-- hi --><![CDATA[<raw>]]>"
	segs := NewTokenizer(input, nil).Collect()
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	c, ok := segs[0].(*Comment)
	if !ok || c.Kind() != KindComment {
		t.Errorf("segs[0] = %T, want *Comment", segs[0])
	}
	cd, ok := segs[1].(*CDATA)
	if !ok || cd.Kind() != KindCDATA {
		t.Errorf("segs[1] = %T, want *CDATA", segs[1])
	}
	if c.String()+cd.String() != input {
		t.Errorf("round trip = %q, want %q", c.String()+cd.String(), input)
	}
}

func TestProcessingInstructionRoundTrip(t *testing.T) {
	input := `<?xml-stylesheet type="text/xsl" href="style.xsl"?>`
	segs := NewTokenizer(input, nil).Collect()
	pi, ok := segs[0].(*ProcessingInstruction)
	if !ok {
		t.Fatalf("segs[0] = %T, want *ProcessingInstruction", segs[0])
	}
	if pi.Name.Text() != "xml-stylesheet" {
		t.Errorf("Name = %q", pi.Name.Text())
	}
	if pi.String() != input {
		t.Errorf("round trip = %q, want %q", pi.String(), input)
	}
}
