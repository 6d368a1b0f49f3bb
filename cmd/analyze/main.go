// Command analyze runs a one-off comprehension analysis without the API
// server or the database: word lists come from plain-text files.
//
// Flags:
//
//	--file       path to the text to analyze (required)
//	--known      path to the known-words file (one word per line, # comments)
//	--excluded   path to the excluded-words file
//	--max-words  cap on unknown words shown in the report
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/hanscope/internal/adapter/pinyin"
	"github.com/heartmarshall/hanscope/internal/adapter/segmenter/jieba"
	"github.com/heartmarshall/hanscope/internal/analyzer"
	"github.com/heartmarshall/hanscope/internal/config"
	"github.com/heartmarshall/hanscope/internal/wordfile"
)

func main() {
	fileFlag := flag.String("file", "", "path to the text file to analyze")
	knownFlag := flag.String("known", "", "path to the known-words file")
	excludedFlag := flag.String("excluded", "", "path to the excluded-words file")
	maxWordsFlag := flag.Int("max-words", analyzer.DefaultMaxUnknownDisplay, "max unknown words to show")
	flag.Parse()

	if *fileFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	text, err := os.ReadFile(*fileFlag)
	if err != nil {
		log.Fatalf("read text: %v", err)
	}

	var known, excluded []string
	if *knownFlag != "" {
		if known, err = wordfile.ParseFile(*knownFlag); err != nil {
			log.Fatalf("load known words: %v", err)
		}
	}
	if *excludedFlag != "" {
		if excluded, err = wordfile.ParseFile(*excludedFlag); err != nil {
			log.Fatalf("load excluded words: %v", err)
		}
	}

	seg := jieba.New(config.SegmenterConfig{})
	defer seg.Close()

	a := analyzer.New(seg, analyzer.DefaultMaxWordLength)
	report, err := a.Analyze(string(text), analyzer.NewVocabulary(known), analyzer.NewExclusionSet(excluded))
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	fmt.Print(analyzer.FormatReport(report, pinyin.NewRenderer(), *maxWordsFlag))
}
