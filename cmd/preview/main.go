package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-article-index/digest"
)

func main() {
	filePath := flag.String("file", "README.md", "Markdown document to preview")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read document: %v", err)
	}

	html, err := digest.RenderHTML(data)
	if err != nil {
		log.Fatalf("render html: %v", err)
	}

	fmt.Fprintf(os.Stdout, "%s", html)
}
