// Package xmldoc is a fault-tolerant parser and formatter for XML 1.0
// source text, built for editor-grade use: every byte of input is
// classified, every malformed construct yields a diagnostic with a
// precise span rather than aborting, and the resulting tree losslessly
// reproduces the original input through String().
//
// The pipeline runs in five stages, leaves first:
//
//	CharClass iterator -> Lexer -> Tokenizer -> ElementBuilder -> Document
//
// Parse is the one-shot entry point most callers want:
//
//	doc := xmldoc.Parse(src)
//	for _, issue := range doc.Issues {
//	    fmt.Println(issue)
//	}
//	out := doc.Format(xmldoc.FormatOptions{AlignAttributes: true})
package xmldoc
