package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/krishnacharya/fpylll/intmat"
)

func usage() {
	fmt.Println(`usage: latplot -in <basis.txt> [-out report.html]

Reads a textual lattice basis (one "[ v1 ... vn ]" row per line) and writes an
interactive HTML report: per-row Euclidean norm and per-row maximum entry bit
length.`)
	os.Exit(1)
}

func main() {
	in := flag.String("in", "", "textual basis file")
	out := flag.String("out", "basis.html", "output HTML report")
	flag.Usage = usage
	flag.Parse()

	if *in == "" {
		usage()
	}

	m, err := intmat.ReadFile(*in, intmat.ArbitraryPrecision)
	if err != nil {
		fmt.Fprintf(os.Stderr, "latplot: %v\n", err)
		os.Exit(1)
	}
	if m.IsEmpty() {
		fmt.Fprintf(os.Stderr, "latplot: %s holds no basis rows\n", *in)
		os.Exit(1)
	}

	labels := make([]string, m.Rows())
	norms := make([]opts.BarData, m.Rows())
	bitLens := make([]opts.LineData, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "latplot: row %d: %v\n", i, err)
			os.Exit(1)
		}
		norm, err := row.Norm()
		if err != nil {
			fmt.Fprintf(os.Stderr, "latplot: row %d: %v\n", i, err)
			os.Exit(1)
		}
		maxBits := 0
		for j := 0; j < row.Len(); j++ {
			v, err := row.Get(j)
			if err != nil {
				fmt.Fprintf(os.Stderr, "latplot: row %d: %v\n", i, err)
				os.Exit(1)
			}
			if b := v.BitLen(); b > maxBits {
				maxBits = b
			}
		}
		labels[i] = fmt.Sprintf("b%d", i)
		norms[i] = opts.BarData{Value: norm}
		bitLens[i] = opts.LineData{Value: maxBits}
	}

	page := components.NewPage().SetPageTitle("Lattice Basis Profile")

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Row norms",
			Subtitle: fmt.Sprintf("%s, %dx%d", *in, m.Rows(), m.Cols()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "basis row"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Euclidean norm", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	bar.SetXAxis(labels).AddSeries("norm", norms)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Row entry bit lengths",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "basis row"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "max bit length", Type: "value"}),
	)
	line.SetXAxis(labels).AddSeries("bits", bitLens,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	page.AddCharts(bar, line)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "latplot: create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "latplot: render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("latplot: wrote %s (%d rows)\n", *out, m.Rows())
}
