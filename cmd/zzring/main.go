// Command zzring samples the discrete Gaussian error distribution of a parameter
// set, runs encryption/decryption trials, and reports the empirical statistics
// of both the samples and the decryption noise, optionally as an HTML page of histograms.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/zzring/gaussian"
	"github.com/tuneinsight/zzring/rlwe"
	"github.com/tuneinsight/zzring/utils/sampling"
)

var (
	flagParams     = flag.String("params", "toy", "parameter set: toy, rlwe or ntruprime")
	flagParamsJSON = flag.String("params-json", "", "path to a JSON parameters literal, overrides -params")
	flagSamples    = flag.Int("n", 100000, "number of Gaussian samples")
	flagTrials     = flag.Int("trials", 16, "number of encryption/decryption trials")
	flagSeed       = flag.String("seed", "", "PRNG key, a fresh random PRNG is used if empty")
	flagOut        = flag.String("out", "", "path of the HTML histogram page, none is written if empty")
)

func main() {

	flag.Parse()

	lit, err := parametersLiteral()
	if err != nil {
		log.Fatalf("parameters: %v", err)
	}

	params, err := rlwe.NewParametersFromLiteral(lit)
	if err != nil {
		log.Fatalf("parameters: %v", err)
	}

	log.Printf("P=%d Q=%s sigma=%.3f bound=%d precision=%d", params.P(), params.Q(), params.Sigma(), params.NoiseBound(), params.GaussianParameters().Precision)

	prng, err := newPRNG()
	if err != nil {
		log.Fatalf("prng: %v", err)
	}

	samples := sampleGaussian(params.GaussianTable(), prng, *flagSamples)
	summary("gaussian", samples)

	noise, errors, total, err := runTrials(params, prng, *flagTrials)
	if err != nil {
		log.Fatalf("trials: %v", err)
	}

	summary("decryption noise", noise)
	log.Printf("decryption errors: %d/%d bits", errors, total)

	if *flagOut == "" {
		return
	}

	page := components.NewPage()
	page.AddCharts(
		newHistogramChart("Gaussian samples", samples),
		newHistogramChart("Decryption noise", noise),
	)

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}

	fmt.Println("Histogram page:", *flagOut)
}

func parametersLiteral() (lit rlwe.ParametersLiteral, err error) {

	if *flagParamsJSON != "" {

		var data []byte
		if data, err = os.ReadFile(*flagParamsJSON); err != nil {
			return
		}

		err = json.Unmarshal(data, &lit)
		return
	}

	switch *flagParams {
	case "toy":
		return rlwe.ExampleParametersToy, nil
	case "rlwe":
		return rlwe.ExampleParametersRLWE, nil
	case "ntruprime":
		return rlwe.ExampleParametersNTRUPrime, nil
	default:
		return lit, fmt.Errorf("unknown parameter set %q", *flagParams)
	}
}

func newPRNG() (sampling.PRNG, error) {
	if *flagSeed != "" {
		prng, err := sampling.NewKeyedPRNG([]byte(*flagSeed))
		if err != nil {
			return nil, err
		}
		log.Printf("keyed PRNG, replay with -seed=%q", prng.Key())
		return prng, nil
	}
	prng, err := sampling.NewPRNG()
	return prng, err
}

func sampleGaussian(table *gaussian.Table, prng sampling.PRNG, n int) []float64 {

	draws := make([]int64, n)
	gaussian.NewSamplerFromTable(table, sampling.NewSource(prng)).Read(draws)

	values := make([]float64, n)
	for i, v := range draws {
		values[i] = float64(v)
	}

	return values
}

// runTrials encrypts random messages and returns the centered decryption
// noise of every coefficient along with the number of wrongly decoded bits.
func runTrials(params rlwe.Parameters, prng sampling.PRNG, trials int) (noise []float64, errors, total int, err error) {

	kgen := rlwe.NewKeyGenerator(params, prng)

	sk, pk, err := kgen.GenKeyPairNew(rlwe.NewPublicElement(params, prng))
	if err != nil {
		return
	}

	ecd := rlwe.NewEncoder(params)
	enc := rlwe.NewEncryptor(params, pk, prng)
	dec := rlwe.NewDecryptor(params, sk)
	src := sampling.NewSource(prng)

	Q := params.Q()
	half := new(big.Int).Rsh(Q, 1)

	bits := make([]uint64, params.P())
	have := make([]uint64, params.P())

	for trial := 0; trial < trials; trial++ {

		for i := range bits {
			bits[i] = src.Bit()
		}

		var pt, res *rlwe.Plaintext
		if pt, err = ecd.EncodeNew(bits); err != nil {
			return
		}

		var ct *rlwe.Ciphertext
		if ct, err = enc.EncryptNew(pt); err != nil {
			return
		}

		if res, err = dec.DecryptNew(ct); err != nil {
			return
		}

		ecd.Decode(res, have)

		// res = m + noise
		e := new(big.Int)
		for i := range bits {

			if bits[i] != have[i] {
				errors++
			}

			e.Sub(res.Value.Coeff(i), pt.Value.Coeff(i))
			e.Mod(e, Q)
			if e.Cmp(half) > 0 {
				e.Sub(e, Q)
			}

			noise = append(noise, float64(e.Int64()))
		}

		total += len(bits)
	}

	return
}

func summary(name string, values []float64) {
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stddev, _ := stats.StandardDeviation(values)
	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)
	log.Printf("%s: n=%d mean=%.4f median=%.4f std=%.4f min=%.0f max=%.0f", name, len(values), mean, median, stddev, lo, hi)
}

// maxBins is the largest number of bars of a histogram.
const maxBins = 256

// histogram counts the integer values by bins of equal width, with one bin
// per integer if the range of values allows it and at most maxBins bins.
func histogram(values []float64, maxBins int) (labels []string, counts []int) {

	vmin, _ := stats.Min(values)
	vmax, _ := stats.Max(values)

	lo, hi := int64(vmin), int64(vmax)

	width := (hi - lo + int64(maxBins)) / int64(maxBins)

	counts = make([]int, (hi-lo)/width+1)
	for _, v := range values {
		counts[(int64(v)-lo)/width]++
	}

	labels = make([]string, len(counts))
	for i := range counts {
		start := lo + int64(i)*width
		if width == 1 {
			labels[i] = fmt.Sprintf("%d", start)
		} else {
			labels[i] = fmt.Sprintf("[%d, %d]", start, start+width-1)
		}
	}

	return
}

// newHistogramChart returns a bar chart of the histogram of the values.
func newHistogramChart(title string, values []float64) *charts.Bar {

	xLabels, counts := histogram(values, maxBins)

	items := make([]opts.BarData, len(counts))
	for i := range counts {
		items[i] = opts.BarData{Value: counts[i]}
	}

	stddev, _ := stats.StandardDeviation(values)
	mean, _ := stats.Mean(values)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("n=%d, mean=%.3f, std=%.3f", len(values), mean, stddev)}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}
