// Command ntrubench sweeps the NTRUEncrypt preset catalog, timing keygen,
// encrypt, and decrypt over many trials and rendering the timing
// distributions as an HTML histogram page, in the shape of the teacher's
// cmd/analysis coefficient-distribution tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"ntrugo/ntru/ternary"
	"ntrugo/ntruencrypt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count: n, Mean: m, Std: std,
		Min: cp[0], Median: cp[n/2], Max: cp[n-1],
	}
}

func freedmanDiaconisBins(x []float64) int {
	n := len(x)
	if n < 2 {
		return 1
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	q1 := cp[n/4]
	q3 := cp[3*n/4]
	iqr := q3 - q1
	if iqr <= 0 {
		if n < 50 {
			return n
		}
		return 50
	}
	bw := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	if bw <= 0 {
		return 20
	}
	k := int(math.Ceil((cp[n-1] - cp[0]) / bw))
	if k < 10 {
		k = 10
	}
	if k > 200 {
		k = 200
	}
	return k
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := freedmanDiaconisBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.3f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3fms, std=%.3fms, median=%.3fms", stats.Count, stats.Mean, stats.Std, stats.Median)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func msSince(t0 time.Time) float64 {
	return float64(time.Since(t0).Microseconds()) / 1000.0
}

func main() {
	runs := flag.Int("runs", 10, "number of trials per preset")
	outDir := flag.String("out", "bench_reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	presets, err := ntruencrypt.AllPresets()
	if err != nil {
		log.Fatalf("AllPresets: %v", err)
	}

	keygenMs := map[string][]float64{}
	encryptMs := map[string][]float64{}
	decryptMs := map[string][]float64{}
	ciphertextBytes := map[string][]float64{}

	src := ternary.CryptoSource{}
	msg := []byte("ntrubench timing probe")

	for name, p := range presets {
		m := msg
		if len(m) > p.MaxMsgLenBytes() {
			m = m[:p.MaxMsgLenBytes()]
		}
		for i := 0; i < *runs; i++ {
			t0 := time.Now()
			kp, err := ntruencrypt.GenerateKeyPair(p, src)
			if err != nil {
				log.Printf("warn: %s keygen run %d: %v", name, i, err)
				continue
			}
			keygenMs[name] = append(keygenMs[name], msSince(t0))

			t1 := time.Now()
			ct, err := ntruencrypt.Encrypt(kp.Public, m, src)
			if err != nil {
				log.Printf("warn: %s encrypt run %d: %v", name, i, err)
				continue
			}
			encryptMs[name] = append(encryptMs[name], msSince(t1))
			ciphertextBytes[name] = append(ciphertextBytes[name], float64(len(ct)))

			t2 := time.Now()
			if _, err := ntruencrypt.Decrypt(kp, ct); err != nil {
				log.Printf("warn: %s decrypt run %d: %v", name, i, err)
				continue
			}
			decryptMs[name] = append(decryptMs[name], msSince(t2))
		}
	}

	outStats := map[string]map[string]summaryStats{}
	for name := range presets {
		outStats[name] = map[string]summaryStats{
			"keygen_ms":        computeStats(keygenMs[name]),
			"encrypt_ms":       computeStats(encryptMs[name]),
			"decrypt_ms":       computeStats(decryptMs[name]),
			"ciphertext_bytes": computeStats(ciphertextBytes[name]),
		}
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("bench_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	add := func(title string, vals []float64) {
		if len(vals) == 0 {
			return
		}
		page.AddCharts(newHistogramChart(title, vals, computeStats(vals)))
	}
	for name := range presets {
		add(name+" keygen", keygenMs[name])
		add(name+" encrypt", encryptMs[name])
		add(name+" decrypt", decryptMs[name])
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("bench_histograms_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
