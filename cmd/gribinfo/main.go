// Command gribinfo examines GRIB edition 1 and 2 files and prints
// summary, listing, or per-record information about their messages.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	grib "github.com/mmp/wxgrib"
	"github.com/mmp/wxgrib/grib1"
	"github.com/mmp/wxgrib/grib2"
)

var (
	listFlag    = flag.Bool("list", false, "List all messages with basic info")
	detailFlag  = flag.Bool("detail", false, "Show detailed information for all messages")
	recordFlag  = flag.Int("record", -1, "Show detailed information for a specific message (0-based)")
	valuesFlag  = flag.Bool("values", false, "Print data values for edition 1 messages (edition 2 value decode is unsupported)")
	summaryFlag = flag.Bool("summary", true, "Show file summary (default)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <grib-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examine GRIB1/GRIB2 files and display information about their messages.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	filename := flag.Arg(0)
	if filename == "" {
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		glog.Exitf("reading %s: %v", filename, err)
	}

	messages, err := grib.ReadAllWithOptions(data, grib.WithSkipErrors())
	if err != nil {
		glog.Exitf("parsing %s: %v", filename, err)
	}
	if len(messages) == 0 {
		fmt.Println("No GRIB messages found in file")
		return
	}

	switch {
	case *recordFlag >= 0:
		if *recordFlag >= len(messages) {
			fmt.Fprintf(os.Stderr, "record %d does not exist (file has %d messages, numbered 0-%d)\n",
				*recordFlag, len(messages), len(messages)-1)
			os.Exit(1)
		}
		showDetail(messages[*recordFlag], *recordFlag, *valuesFlag)
	case *listFlag:
		showList(messages)
	case *detailFlag:
		for i, m := range messages {
			showDetail(m, i, *valuesFlag)
			if i < len(messages)-1 {
				fmt.Println(strings.Repeat("=", 80))
			}
		}
	case *summaryFlag:
		showSummary(filename, messages)
	}
}

func showSummary(filename string, messages []grib.Message) {
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Total messages: %d\n\n", len(messages))

	editions := make(map[int]int)
	names := make(map[string]bool)
	for _, m := range messages {
		editions[m.Edition()]++
		if t, err := m.GetTime(); err == nil {
			names[t.Format("2006-01-02 15:04 MST")] = true
		}
	}

	keys := maps.Keys(editions)
	slices.Sort(keys)
	for _, e := range keys {
		fmt.Printf("Edition %d: %d message(s)\n", e, editions[e])
	}

	times := maps.Keys(names)
	slices.Sort(times)
	fmt.Printf("Reference times: %s\n", strings.Join(times, ", "))
	fmt.Printf("\nUse -list to see all messages, -detail for full information\n")
}

func showList(messages []grib.Message) {
	fmt.Printf("%-5s %-3s %-25s %s\n", "Msg#", "Ed", "Name", "Ref Time")
	fmt.Println(strings.Repeat("-", 70))
	for i, m := range messages {
		t, err := m.GetTime()
		timeStr := "unknown"
		if err == nil {
			timeStr = t.Format("2006-01-02 15:04")
		}
		fmt.Printf("%-5d %-3d %-25s %s\n", i, m.Edition(), m.Name(), timeStr)
	}
}

func showDetail(m grib.Message, index int, showValues bool) {
	fmt.Printf("Message #%d (edition %d)\n", index, m.Edition())
	fmt.Println(strings.Repeat("-", 80))

	switch msg := m.(type) {
	case *grib1.Message:
		showGrib1Detail(msg, showValues)
	case *grib2.Message:
		showGrib2Detail(msg)
	}
}

func showGrib1Detail(m *grib1.Message, showValues bool) {
	pds, err := m.ProductDefinition()
	if err != nil {
		glog.Warningf("product definition: %v", err)
		return
	}
	t, _ := m.GetTime()

	fmt.Printf("Reference time:     %s\n", t.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Centre:             %d\n", pds.Centre)
	fmt.Printf("Parameter:          table 2 version %d, indicator %d\n", pds.Table2Version, pds.IndicatorOfParameter)
	levelUnit := pds.LevelTypeUnit()
	if levelUnit != "" {
		fmt.Printf("Level:              %s, value %s %s\n", pds.LevelTypeName(), pds.LevelValue, levelUnit)
	} else {
		fmt.Printf("Level:              %s, value %s\n", pds.LevelTypeName(), pds.LevelValue)
	}

	gds, err := m.GridDescription()
	if err == nil && gds != nil && gds.LatLon.Valid {
		fmt.Printf("Grid:               %d x %d lat/lon points\n", gds.LatLon.Ni, gds.LatLon.Nj)
	}

	values, err := m.GetValues()
	if err != nil {
		fmt.Printf("Values:             unavailable (%v)\n", err)
		return
	}

	total, valid := 0, 0
	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range values {
		for _, v := range row {
			total++
			if math.IsNaN(v) {
				continue
			}
			valid++
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	fmt.Printf("Data points:        %d (%d valid, %d missing)\n", total, valid, total-valid)
	if valid > 0 {
		fmt.Printf("Value range:        %.6f to %.6f\n", min, max)
	}

	if showValues {
		printGrib1Values(values)
	}
}

func showGrib2Detail(m *grib2.Message) {
	ind, err := m.Indicator()
	if err != nil {
		glog.Warningf("indicator: %v", err)
		return
	}
	ids, err := m.Identification()
	if err != nil {
		glog.Warningf("identification: %v", err)
		return
	}

	fmt.Printf("Discipline:         %s\n", ind.DisciplineName())
	fmt.Printf("Centre:             %s\n", ids.CenterName())
	fmt.Printf("Production status:  %s\n", ids.ProductionStatusName())
	fmt.Printf("Data type:          %s\n", ids.DataTypeName())
	fmt.Printf("Reference time:     %s\n", ids.ReferenceTime.Format("2006-01-02 15:04:05 MST"))

	gds, err := m.GridDefinition()
	if err == nil {
		fmt.Printf("Grid:               %d points, template %d\n", gds.NumDataPoints, gds.TemplateNumber)
	}

	pds, err := m.ProductDefinition()
	if err == nil {
		fmt.Printf("Product template:   %d\n", pds.ProductDefinitionTemplate)
	}

	fmt.Printf("Values:             unavailable (edition 2 value decode is unsupported)\n")
}

const (
	maxValueRows = 20
	maxValueCols = 10
)

func printGrib1Values(values [][]float64) {
	fmt.Println("\nData values:")
	rows := len(values)
	rowsToPrint := rows
	if rowsToPrint > maxValueRows {
		rowsToPrint = maxValueRows
	}
	for j := 0; j < rowsToPrint; j++ {
		fmt.Printf("  Row %3d: ", j)
		row := values[j]
		cols := len(row)
		colsToPrint := cols
		if colsToPrint > maxValueCols {
			colsToPrint = maxValueCols
		}
		for i := 0; i < colsToPrint; i++ {
			if math.IsNaN(row[i]) {
				fmt.Printf("    MISS")
			} else {
				fmt.Printf(" %8.2f", row[i])
			}
		}
		if cols > colsToPrint {
			fmt.Printf(" ... (%d more columns)", cols-colsToPrint)
		}
		fmt.Println()
	}
	if rows > rowsToPrint {
		fmt.Printf("  ... (%d more rows)\n", rows-rowsToPrint)
	}
}
