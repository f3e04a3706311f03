package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	wordcloud "github.com/wordcloud-go/wordcloud"
	"github.com/wordcloud-go/wordcloud/filtering"
	"github.com/wordcloud-go/wordcloud/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬ ┬┌─┐┬─┐┌┬┐┌─┐┬  ┌─┐┬ ┬┌┬┐
│││ │├┬┘ │││  │  │ ││ │ ││
└┴┘└─┘┴└──┴┘└─┘┴─┘└─┘└─┘─┴┘

Word cloud SVG layout engine.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	source       = flag.String("in", "-", "Source text file, or - for stdin")
	destination  = flag.String("out", "out.svg", "Destination SVG file")
	fontPath     = flag.String("font", "", "Font file (TTF/OTF)")
	bgPath       = flag.String("bg", "", "Background image path or URL (optional)")
	width        = flag.Int("width", 1000, "Canvas width")
	height       = flag.Int("height", 1000, "Canvas height")
	maxWords     = flag.Int("max-words", 200, "Maximum number of words to place")
	seed         = flag.Int64("seed", 0, "PRNG seed (0 means derive from current time)")
	textMode     = flag.Bool("text", true, "Emit <text> elements instead of rendered paths")
	debug        = flag.Bool("debug", false, "Also write debug overlay SVGs alongside the output")
	skipStop     = flag.Bool("stopwords", true, "Filter common English stop words before ranking")
	workers      = flag.Int("conc", runtime.NumCPU(), "Number of placement workers")
	spinnerDelay = time.Millisecond * 80
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fontPath == "" {
		log.Fatal(utils.DecorateText("a -font path is required", utils.ErrorMessage))
	}

	msg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ WORDCLOUD", utils.StatusMessage),
		utils.DecorateText("⇢ laying out words (be patient, it may take a while)...", utils.DefaultMessage),
	)
	// Only hide the cursor when stderr is an interactive terminal; a
	// redirected log file shouldn't accumulate ANSI escape codes.
	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	spinner := utils.NewSpinner(msg, spinnerDelay, interactive)
	spinner.Start()

	now := time.Now()
	if err := run(); err != nil {
		spinner.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ WORDCLOUD", utils.StatusMessage),
			utils.DecorateText("✘ "+err.Error(), utils.ErrorMessage),
		)
		spinner.Stop()
		os.Exit(1)
	}

	spinner.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ WORDCLOUD", utils.StatusMessage),
		utils.DecorateText("the word cloud has been written successfully ✔", utils.SuccessMessage),
	)
	spinner.Stop()
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

func run() error {
	words, err := readWords(*source)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if *skipStop {
		words = filtering.RemoveStopWords(words, filtering.NewEnglish())
	}
	ranked := wordcloud.Rank(words)

	fontData, err := os.ReadFile(*fontPath)
	if err != nil {
		return fmt.Errorf("reading font: %w", err)
	}
	font, err := wordcloud.LoadFont(*fontPath, fontData)
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	fontSet, err := wordcloud.NewFontSetBuilder().Push(font).Build()
	if err != nil {
		return fmt.Errorf("building font set: %w", err)
	}

	builder := wordcloud.NewBuilder().
		Dimensions(*width, *height).
		FontSet(fontSet).
		Debug(*debug).
		Workers(*workers)

	if *seed != 0 {
		builder = builder.Seed(*seed)
	}

	if *bgPath != "" {
		path := *bgPath
		if utils.IsValidUrl(path) {
			f, err := utils.DownloadImage(path)
			if err != nil {
				return fmt.Errorf("downloading background image: %w", err)
			}
			defer os.Remove(f.Name())
			defer f.Close()
			path = f.Name()
		}
		img, err := wordcloud.DecodeImageFile(path)
		if err != nil {
			return fmt.Errorf("loading background image: %w", err)
		}
		builder = builder.Image(img)
	}

	wc, err := builder.Build()
	if err != nil {
		return fmt.Errorf("configuring word cloud: %w", err)
	}

	wc.WriteContent(ranked, *maxWords)

	var out string
	if *textMode {
		out, err = wc.ExportText()
	} else {
		out, err = wc.ExportRendered()
	}
	if err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}
	if err := os.WriteFile(*destination, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if *debug {
		if err := wc.ExportDebugToFolder("debug"); err != nil {
			return fmt.Errorf("writing debug overlays: %w", err)
		}
	}
	return nil
}

// readWords tokenizes path (or stdin, for "-") on whitespace.
func readWords(path string) ([]string, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var words []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		w := strings.Trim(scanner.Text(), ".,;:!?\"'()[]{}")
		if w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}
