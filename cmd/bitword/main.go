// Command bitword inspects a single 64-bit word: it parses the word from a
// binary string or hex literal, applies optional transformations and prints
// binary and hexadecimal renderings.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/wordlab/bitword.go/bitword"
	"github.com/wordlab/bitword.go/configuration"
	"github.com/wordlab/bitword.go/logger"
	"github.com/wordlab/bitword.go/wordio"
)

const envPrefix = "BITWORD"

func main() {
	flagSet := configuration.NewUnsortedFlagSet("bitword", flag.ExitOnError)

	configPath := flagSet.StringP("config", "c", "", "path to a JSON, YAML or TOML config file")
	input := flagSet.StringP("input", "i", "", "word to inspect, as a binary string or 0x-prefixed hex literal")
	rotateLeft := flagSet.Uint("rotate-left", 0, "rotate the word left by the given amount of positions")
	rotateRight := flagSet.Uint("rotate-right", 0, "rotate the word right by the given amount of positions")
	reverse := flagSet.Bool("reverse", false, "mirror the bit order of the word")
	invert := flagSet.Bool("invert", false, "flip every bit of the word")
	sectionFrom := flagSet.Int("section-from", 0, "extract the section starting at this position (1-based, requires --section-to)")
	sectionTo := flagSet.Int("section-to", 0, "extract the section ending at this position (inclusive)")
	stats := flagSet.Bool("stats", false, "print scan statistics about the word")

	flagSet.String("output.format", "both", "output format (bin, hex or both)")
	flagSet.Bool("output.group", false, "group binary output into 4-bit clusters")
	flagSet.Bool("output.lsbFirst", false, "print binary output least-significant bit first")
	flagSet.String("logger.level", logger.DefaultCfg.Level, "the minimum enabled logging level")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		fail(err)
	}

	config := configuration.New()
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fail(err)
		}
	}
	if err := config.LoadFlagSet(flagSet); err != nil {
		fail(err)
	}
	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		fail(err)
	}

	loggerCfg := logger.DefaultCfg
	loggerCfg.Level = config.String(logger.ConfigurationKeyLevel)

	root, err := logger.NewRootLogger(loggerCfg)
	if err != nil {
		fail(err)
	}
	logger.SetGlobalLogger(root)
	log := logger.NewLogger("inspector")

	w, err := parseInput(*input)
	if err != nil {
		fail(err)
	}
	log.Debugf("parsed input word %s", w)

	if *rotateLeft > 0 {
		w = w.RotateLeft(*rotateLeft)
		log.Debugf("rotated left by %d: %s", *rotateLeft, w)
	}
	if *rotateRight > 0 {
		w = w.RotateRight(*rotateRight)
		log.Debugf("rotated right by %d: %s", *rotateRight, w)
	}
	if *reverse {
		w = w.Reverse()
		log.Debugf("reversed: %s", w)
	}
	if *invert {
		w = w.Invert()
		log.Debugf("inverted: %s", w)
	}
	if *sectionFrom > 0 || *sectionTo > 0 {
		w = w.Section(*sectionFrom, *sectionTo)
		log.Debugf("extracted section [%d, %d]: %s", *sectionFrom, *sectionTo, w)
	}

	var printerOpts []wordio.Option
	if config.Bool("output.group") {
		printerOpts = append(printerOpts, wordio.WithNibbleGrouping())
	}
	if config.Bool("output.lsbfirst") {
		printerOpts = append(printerOpts, wordio.WithLSBFirst())
	}
	printer := wordio.NewPrinter(os.Stdout, printerOpts...)

	format := config.String("output.format")
	if format == "bin" || format == "both" {
		if err := printer.PrintBinary(w); err != nil {
			fail(err)
		}
	}
	if format == "hex" || format == "both" {
		if err := printer.PrintHex(w); err != nil {
			fail(err)
		}
	}

	if *stats {
		fmt.Printf("firstSetBit=%d highestSetBit=%d onesCount=%d evenParityBit=%t\n",
			w.FirstSetBit(), w.HighestSetBit(), w.OnesCount(), w.EvenParityBit())
	}
}

func parseInput(text string) (bitword.Word, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		value, err := strconv.ParseUint(text[2:], 16, 64)
		if err != nil {
			return 0, err
		}

		return bitword.Word(value), nil
	}

	return bitword.ParseBinaryString(text)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "bitword:", err)
	os.Exit(1)
}
