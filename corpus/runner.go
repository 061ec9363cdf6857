package corpus

import (
	"context"
	"math/big"
	"runtime"
	"sync"
	"time"

	"github.com/npillmayer/gocky/cky"
	"github.com/npillmayer/gocky/cnf"
)

// Mode selects the query mode a sample is run in.
type Mode int

// Samples may be counted, parsed or recognized.
const (
	CountMode Mode = iota
	ParseMode
	RecognizeMode
)

func (m Mode) String() string {
	switch m {
	case CountMode:
		return "count"
	case ParseMode:
		return "parse"
	case RecognizeMode:
		return "recognize"
	}
	return "unknown"
}

// Result is the outcome of running a single sample.
type Result struct {
	Sample   Sample
	Index    int           // position of the sample in the input
	Accepted bool          // sentence is in the language of the grammar
	Count    *big.Int      // number of derivations, nil in RecognizeMode
	Trees    *cky.TreeSet  // derivation trees, ParseMode only
	Elapsed  time.Duration // time spent on this sample
	Err      error         // parse errors, e.g. an exceeded tree budget
}

// Matches is true if the result agrees with the label of the sample.
// Unlabeled samples always match.
func (r Result) Matches() bool {
	if r.Err != nil {
		return false
	}
	switch r.Sample.Label {
	case CountLabel:
		if r.Count == nil {
			return r.Accepted == (r.Sample.Expected > 0)
		}
		return r.Count.IsInt64() && r.Count.Int64() == int64(r.Sample.Expected)
	case BoolLabel:
		return r.Accepted == r.Sample.Grammatical
	}
	return true
}

// Report collects the results of a run, in input order.
type Report struct {
	Mode    Mode
	Results []Result
	Total   time.Duration // sum of elapsed times of all results
}

// Mismatches returns the number of results not matching their sample's label.
func (rep *Report) Mismatches() int {
	n := 0
	for _, r := range rep.Results {
		if !r.Matches() {
			n++
		}
	}
	return n
}

// Run processes samples against grammar g with the given number of workers.
// If workers is less than 1, one worker per CPU is used. Options are passed on
// to cky.Parse in ParseMode.
//
// If ctx is cancelled, no more samples are dispatched; Run returns the results
// processed so far together with the context's error.
func Run(ctx context.Context, g cnf.View, samples []Sample, workers int, mode Mode,
	opts ...cky.Option) (*Report, error) {
	//
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(samples))
	done := make([]bool, len(samples))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runSample(g, samples[i], mode, opts)
				results[i].Index = i
				done[i] = true
			}
		}()
	}
	var err error
dispatch:
	for i := range samples {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	report := &Report{Mode: mode, Results: make([]Result, 0, len(samples))}
	for i := range results {
		if done[i] {
			report.Results = append(report.Results, results[i])
			report.Total += results[i].Elapsed
		}
	}
	tracer().Infof("%s: %d of %d sentences in %v, %d mismatches", mode,
		len(report.Results), len(samples), report.Total, report.Mismatches())
	return report, err
}

func runSample(g cnf.View, sample Sample, mode Mode, opts []cky.Option) Result {
	r := Result{Sample: sample}
	start := time.Now()
	switch mode {
	case CountMode:
		r.Count = cky.Count(g, sample.Tokens)
		r.Accepted = r.Count.Sign() > 0
	case ParseMode:
		r.Trees, r.Err = cky.Parse(g, sample.Tokens, opts...)
		if r.Err == nil {
			r.Count = big.NewInt(int64(r.Trees.Size()))
			r.Accepted = !r.Trees.Empty()
		}
	case RecognizeMode:
		r.Accepted = cky.Recognize(g, sample.Tokens)
	}
	r.Elapsed = time.Since(start)
	if r.Err != nil {
		tracer().Errorf("sentence at line %d: %v", sample.Line, r.Err)
	}
	return r
}
