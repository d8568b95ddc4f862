// Package md2docx converts a small, line-oriented subset of Markdown into a
// styled Word document (.docx).
//
// # Quick Start
//
// Convert a file on disk with the default theme:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = conv.ConvertFile(ctx, "notes.md", "notes.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or convert in memory:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	os.WriteFile("hello.docx", result.DOCX, 0644)
//
// The result also carries the classified blocks (result.Blocks) for
// inspection and debugging.
//
// # Supported Markdown
//
// Each source line is classified on its own, in this order:
//
//  1. Outside a code fence, a line starting with "#" is a heading. The level
//     is the number of leading "#" characters; the text is the rest of the
//     line with surrounding whitespace removed.
//  2. Outside a code fence, a line starting with "```" opens a fence. Any
//     language tag after the backticks is ignored.
//  3. Inside a code fence, a line starting with "```" closes the fence and
//     emits one code block holding the collected lines.
//  4. Inside a code fence, any other line is collected verbatim.
//  5. An empty or whitespace-only line is a blank paragraph.
//  6. Anything else is a plain paragraph, used verbatim.
//
// Lists, tables, links, emphasis and inline code are not recognized; their
// source text is emitted as plain paragraphs. A fence that is still open at
// the end of the input is dropped together with its content.
//
// # Styling
//
// Headings are bold, left-aligned and colored with Theme.TitleColor. Their
// size is 22pt minus 2pt per level, never below 11pt (see HeadingFontSize).
// Code blocks use Theme.CodeFont at Theme.CodeFontSize, colored with
// Theme.CodeColor on a Theme.CodeBackground shading. Use WithTheme to
// change these values:
//
//	theme := md2docx.DefaultTheme()
//	theme.TitleColor = "003366"
//	conv, err := md2docx.NewConverter(md2docx.WithTheme(theme))
//
// # Errors
//
// ConvertFile fails in two ways only. If the source cannot be read (missing,
// unreadable, or not valid UTF-8) it returns an error matching ErrReadInput
// or ErrInvalidUTF8 and nothing is written. If the document cannot be
// written it returns an error matching ErrWriteOutput; the output is
// written atomically, so no partial file is left behind.
package md2docx
