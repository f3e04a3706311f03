/*
Package wordcloud lays out a set of ranked words onto an SVG canvas,
spacing them by spiral search and collision detection so overlapping text
stays legible, optionally steering placement away from the edges of a
background image.

The package provides a command line interface, supporting various flags
for tuning canvas size, font selection, and stop-word filtering. To check
the supported commands type:

	$ wordcloud --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"
		"os"

		wordcloud "github.com/wordcloud-go/wordcloud"
	)

	func main() {
		data, _ := os.ReadFile("font.ttf")
		font, err := wordcloud.LoadFont("font.ttf", data)
		if err != nil {
			fmt.Printf("Error loading font: %s", err.Error())
			return
		}
		fontSet, _ := wordcloud.NewFontSetBuilder().Push(font).Build()

		wc, err := wordcloud.NewBuilder().
			Dimensions(1000, 1000).
			FontSet(fontSet).
			Build()
		if err != nil {
			fmt.Printf("Error configuring word cloud: %s", err.Error())
			return
		}

		wc.WriteContent(wordcloud.Rank([]string{"go", "go", "rust"}), 100)
		svg, err := wc.ExportText()
		if err != nil {
			fmt.Printf("Error rendering svg: %s", err.Error())
		}
		_ = svg
	}
*/
package wordcloud
