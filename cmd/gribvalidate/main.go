// Command gribvalidate parses a GRIB file message-by-message and
// reports which messages succeed or fail, useful for debugging
// framing or decode issues.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	grib "github.com/mmp/wxgrib"
)

var (
	verboseFlag = flag.Bool("v", false, "verbose output (show details for successful messages)")
	quietFlag   = flag.Bool("q", false, "quiet output (only show summary)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <grib-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validate a GRIB1/GRIB2 file by parsing each message individually.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := validate(flag.Arg(0)); err != nil {
		glog.Exitf("validation failed: %v", err)
	}
}

func validate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	boundaries, err := grib.FindMessages(data)
	if err != nil {
		return fmt.Errorf("scanning message boundaries: %w", err)
	}

	if !*quietFlag {
		fmt.Println("=== GRIB file validation ===")
		fmt.Printf("File: %s\n", path)
		fmt.Printf("Total messages found: %d\n\n", len(boundaries))
	}

	success, failed := 0, 0
	for i, b := range boundaries {
		buf := data[b.Start : b.Start+b.Length]
		messages, err := grib.ReadAllWithOptions(buf)
		if err != nil || len(messages) != 1 {
			fmt.Fprintf(os.Stderr, "ERROR: message %d FAILED:\n", i)
			fmt.Fprintf(os.Stderr, "  Offset:  %d\n", b.Start)
			fmt.Fprintf(os.Stderr, "  Length:  %d bytes\n", b.Length)
			fmt.Fprintf(os.Stderr, "  Edition: %d\n", b.Edition)
			fmt.Fprintf(os.Stderr, "  Error:   %v\n\n", err)
			failed++
			continue
		}

		if *verboseFlag {
			m := messages[0]
			t, _ := m.GetTime()
			fmt.Printf("Message %d SUCCESS: edition %d, reference time %s\n", i, m.Edition(), t.Format("2006-01-02 15:04"))
		}
		success++
	}

	if !*quietFlag {
		fmt.Println("=== Summary ===")
	}
	fmt.Printf("Success: %d messages\n", success)
	fmt.Printf("Failed:  %d messages\n", failed)

	if failed > 0 {
		return fmt.Errorf("%d messages failed to parse", failed)
	}
	if !*quietFlag {
		fmt.Println("\nAll messages validated successfully")
	}
	return nil
}
