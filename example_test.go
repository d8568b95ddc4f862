package md2docx_test

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/alnah/go-md2docx"
)

// Example demonstrates converting markdown to a .docx document in memory.
func Example() {
	conv, err := md2docx.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// A .docx file is a zip archive
	if bytes.HasPrefix(result.DOCX, []byte("PK")) {
		fmt.Println("document generated successfully")
	}
	// Output: document generated successfully
}

// ExampleClassify shows the blocks produced for each kind of line.
func ExampleClassify() {
	res := md2docx.Classify([]string{
		"## Setup",
		"",
		"```java",
		"Cipher c = Cipher.getInstance(\"AES\");",
		"```",
		"Done.",
	})

	for _, b := range res.Blocks {
		fmt.Printf("%d %s %d %q\n", b.Line, b.Kind, b.Level, b.Text)
	}
	// Output:
	// 1 heading 2 "Setup"
	// 2 blank 0 ""
	// 3 code 0 "Cipher c = Cipher.getInstance(\"AES\");"
	// 6 paragraph 0 "Done."
}

// ExampleClassify_unterminatedFence shows that an unclosed fence drops its
// content and is reported on the result.
func ExampleClassify_unterminatedFence() {
	res := md2docx.Classify([]string{"intro", "```", "lost"})

	fmt.Println(len(res.Blocks), res.UnterminatedFence, res.DroppedLines)
	// Output: 1 2 1
}

// ExampleHeadingFontSize lists the point sizes of the first heading levels.
func ExampleHeadingFontSize() {
	for level := 1; level <= 7; level++ {
		fmt.Printf("h%d=%g ", level, md2docx.HeadingFontSize(level))
	}
	fmt.Println()
	// Output: h1=20 h2=18 h3=16 h4=14 h5=12 h6=11 h7=11
}

// Example_withTheme demonstrates overriding the heading and code styling.
func Example_withTheme() {
	theme := md2docx.DefaultTheme()
	theme.TitleColor = "#003366"
	theme.CodeFont = "Courier New"

	conv, err := md2docx.NewConverter(md2docx.WithTheme(theme))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(conv.Theme().CodeFont)
	// Output: Courier New
}

// Example_parallel demonstrates sharing one converter across goroutines.
func Example_parallel() {
	conv, err := md2docx.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	docs := []string{"# One", "# Two", "# Three"}
	counts := make([]int, len(docs))

	var wg sync.WaitGroup
	for i, md := range docs {
		wg.Add(1)
		go func(i int, md string) {
			defer wg.Done()
			result, err := conv.Convert(context.Background(), md2docx.Input{Markdown: md})
			if err == nil {
				counts[i] = len(result.Blocks)
			}
		}(i, md)
	}
	wg.Wait()

	fmt.Println(counts)
	// Output: [1 1 1]
}
