package cmd

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trknhr/kanarank/internal/model"
	"github.com/trknhr/kanarank/internal/model/entity"
	"github.com/trknhr/kanarank/internal/utils"
)

type EvaluationCase struct {
	Input        string `json:"input"`
	Expected     string `json:"expected"`
	Category     string `json:"category,omitempty"`
	HistoryKey   string `json:"history_key,omitempty"`
	HistoryValue string `json:"history_value,omitempty"`
}

type EvaluationResult struct {
	Total       int
	Top1Correct int
	Top3Correct int
	ByCategory  map[string]CategoryResult
}

type CategoryResult struct {
	Total       int
	Top1Correct int
	Top3Correct int
}

type Predictor interface {
	Predict(ctx context.Context, req *entity.Request) ([]entity.Candidate, bool, error)
}

// RunEvaluation asks p for every case and counts where the expected value ranks.
func RunEvaluation(ctx context.Context, w io.Writer, p Predictor, newRequest func(string) *entity.Request, cases []EvaluationCase) EvaluationResult {
	result := EvaluationResult{
		ByCategory: make(map[string]CategoryResult),
	}

	for _, c := range cases {
		req := newRequest(utils.NormalizeKey(c.Input))
		if c.HistoryValue != "" {
			req.History = &entity.History{Key: utils.NormalizeKey(c.HistoryKey), Value: c.HistoryValue}
		}
		cands, _, err := p.Predict(ctx, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prediction error for input %q: %v\n", c.Input, err)
			continue
		}

		result.Total++
		categoryResult := result.ByCategory[c.Category]
		categoryResult.Total++

		rank := -1
		for i, cand := range cands {
			if cand.Value == c.Expected {
				rank = i
				break
			}
		}

		switch {
		case rank == 0:
			result.Top1Correct++
			result.Top3Correct++
			categoryResult.Top1Correct++
			categoryResult.Top3Correct++
		case rank > 0 && rank < 3:
			result.Top3Correct++
			categoryResult.Top3Correct++
			fmt.Fprintf(w, "Top3 Hit | Input: %q | Expected: %q | Category: %s\n", c.Input, c.Expected, c.Category)
			printCandidateList(w, cands)
		default:
			fmt.Fprintf(w, "Missed   | Input: %q | Expected: %q | Category: %s\n", c.Input, c.Expected, c.Category)
			printCandidateList(w, cands)
		}

		result.ByCategory[c.Category] = categoryResult
	}
	return result
}

func loadEvaluationCases(filePath string) ([]EvaluationCase, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".csv":
		return loadFromCSV(filePath)
	case ".jsonl":
		return loadFromJSONL(filePath)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .jsonl)", ext)
	}
}

func loadFromCSV(filePath string) ([]EvaluationCase, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	// Find column indices
	columns := map[string]int{}
	for i, col := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(col))] = i
	}
	inputIdx, hasInput := columns["input"]
	expectedIdx, hasExpected := columns["expected"]
	if !hasInput || !hasExpected {
		return nil, fmt.Errorf("CSV must contain 'input' and 'expected' columns")
	}
	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var cases []EvaluationCase
	for i, record := range records[1:] {
		if len(record) <= inputIdx || len(record) <= expectedIdx {
			fmt.Fprintf(os.Stderr, "skipping malformed row %d\n", i+2)
			continue
		}
		c := EvaluationCase{
			Input:        field(record, "input"),
			Expected:     field(record, "expected"),
			Category:     field(record, "category"),
			HistoryKey:   field(record, "history_key"),
			HistoryValue: field(record, "history_value"),
		}
		if c.Input == "" || c.Expected == "" {
			continue
		}
		if c.Category == "" {
			c.Category = "unknown"
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func loadFromJSONL(filePath string) ([]EvaluationCase, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cases []EvaluationCase
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		var c EvaluationCase
		if err := json.Unmarshal(scanner.Bytes(), &c); err != nil {
			fmt.Fprintf(os.Stderr, "JSON decode error: %v\n", err)
			continue
		}
		if c.Category == "" {
			c.Category = "unknown"
		}
		cases = append(cases, c)
	}
	return cases, scanner.Err()
}

func printEvaluationResults(w io.Writer, result EvaluationResult) {
	if result.Total == 0 {
		fmt.Fprintln(w, "no cases evaluated")
		return
	}
	fmt.Fprintf(w, "\nEvaluation Results\n")
	fmt.Fprintf(w, "═══════════════════════════════════════\n")
	fmt.Fprintf(w, "Overall Performance:\n")
	fmt.Fprintf(w, "  Total Cases: %d\n", result.Total)
	fmt.Fprintf(w, "  Top-1 Accuracy: %.2f%% (%d/%d)\n",
		float64(result.Top1Correct)/float64(result.Total)*100,
		result.Top1Correct, result.Total)
	fmt.Fprintf(w, "  Top-3 Accuracy: %.2f%% (%d/%d)\n",
		float64(result.Top3Correct)/float64(result.Total)*100,
		result.Top3Correct, result.Total)

	if len(result.ByCategory) > 1 {
		categories := make([]string, 0, len(result.ByCategory))
		for category := range result.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		fmt.Fprintf(w, "\nBy Category:\n")
		for _, category := range categories {
			catResult := result.ByCategory[category]
			fmt.Fprintf(w, "  %s:\n", category)
			fmt.Fprintf(w, "    Cases: %d\n", catResult.Total)
			fmt.Fprintf(w, "    Top-1: %.2f%% (%d/%d)\n",
				float64(catResult.Top1Correct)/float64(catResult.Total)*100,
				catResult.Top1Correct, catResult.Total)
			fmt.Fprintf(w, "    Top-3: %.2f%% (%d/%d)\n",
				float64(catResult.Top3Correct)/float64(catResult.Total)*100,
				catResult.Top3Correct, catResult.Total)
		}
	}
}

func printCandidateList(w io.Writer, cands []entity.Candidate) {
	for i, c := range cands[:min(5, len(cands))] {
		fmt.Fprintf(w, "  [%d] %s (%d)\n", i+1, c.Value, c.Cost)
	}
}

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var evalFile string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the ranking with CSV or JSONL test cases",
		Example: `
  # Evaluate with CSV file (columns: input, expected, category, history_key, history_value)
  kanarank eval -f eval_data.csv

  # Evaluate only the dictionary aggregators
  kanarank eval -f eval_data.jsonl --filter-models unigram,realtime`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := loadEvaluationCases(evalFile)
			if err != nil {
				return fmt.Errorf("failed to load evaluation cases: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d evaluation cases\n", len(cases))

			engine, events, err := opts.app.engine(opts.filterModels)
			if err != nil {
				return fmt.Errorf("failed to generate model: %w", err)
			}
			if err := model.WaitReady(events); err != nil {
				return fmt.Errorf("failed to load the lexicon: %w", err)
			}

			result := RunEvaluation(cmd.Context(), cmd.OutOrStdout(), engine, opts.app.cfg.NewRequest, cases)
			printEvaluationResults(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&evalFile, "file", "f", "", "Path to CSV or JSONL evaluation file")
	cmd.MarkFlagRequired("file")

	return cmd
}
