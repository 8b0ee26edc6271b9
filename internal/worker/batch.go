package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/calsigns/internal/classify"
	"github.com/ppiankov/calsigns/internal/model"
)

// Accepted date layouts, tried in order
var dateLayouts = []string{"2006-01-02", "01-02"}

// ParseDate parses a full date or a bare month-day
func ParseDate(s string) (model.DayMonth, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.DayMonthOf(t), nil
		}
	}
	return model.DayMonth{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD or MM-DD", s)
}

// SystemResult is one table's classification of a date
type SystemResult struct {
	System  string       `json:"system" yaml:"system"`
	Matched bool         `json:"matched" yaml:"matched"`
	Result  model.Result `json:"result" yaml:"result"`
}

// DateResult is the result of classifying one input date
type DateResult struct {
	Input   string         `json:"input" yaml:"input"`
	Date    model.DayMonth `json:"date" yaml:"date"`
	Systems []SystemResult `json:"systems,omitempty" yaml:"systems,omitempty"`
	Error   error          `json:"-" yaml:"-"`
}

// GetError returns the error from the date result
func (r *DateResult) GetError() error {
	return r.Error
}

// DateJob classifies one input date against every table
type DateJob struct {
	Input  string
	Tables []*model.SignTable
}

// Execute executes the date job
func (j *DateJob) Execute(ctx context.Context) Result {
	day, err := ParseDate(j.Input)
	if err != nil {
		return &DateResult{Input: j.Input, Error: err}
	}

	res := &DateResult{
		Input:   j.Input,
		Date:    day,
		Systems: make([]SystemResult, 0, len(j.Tables)),
	}
	for _, t := range j.Tables {
		if err := ctx.Err(); err != nil {
			res.Error = err
			return res
		}
		r, ok := classify.Match(t, day)
		res.Systems = append(res.Systems, SystemResult{System: t.ID, Matched: ok, Result: r})
	}
	return res
}

// BatchProcessor classifies many dates concurrently
type BatchProcessor struct {
	tables      []*model.SignTable
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(tables []*model.SignTable, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		tables:      tables,
		concurrency: concurrency,
	}
}

// ProcessDates classifies every input, returning one result per input in
// input order. Inputs left unclassified by cancellation carry ctx's error.
func (b *BatchProcessor) ProcessDates(ctx context.Context, inputs []string) []*DateResult {
	if len(inputs) == 0 {
		return []*DateResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, in := range inputs {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(&DateJob{
			Input:  in,
			Tables: b.tables,
		})
	}

	var results []Result
	if ctx.Err() != nil {
		results = pool.Shutdown()
	} else {
		results = pool.Wait()
	}

	dateResults := make([]*DateResult, len(inputs))
	for i, in := range inputs {
		if i < len(results) && results[i] != nil {
			dateResults[i] = results[i].(*DateResult)
			continue
		}
		dateResults[i] = &DateResult{Input: in, Error: cancelCause(ctx)}
	}

	return dateResults
}

func cancelCause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("not classified: %w", err)
	}
	return fmt.Errorf("not classified: %w", context.Canceled)
}

// ProcessFile reads dates from a file and classifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*DateResult, error) {
	dates, err := ReadDatesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read dates: %w", err)
	}

	return b.ProcessDates(ctx, dates), nil
}

// ReadDatesFromFile reads dates from a file (one per line)
func ReadDatesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var dates []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			dates = append(dates, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return dates, nil
}
