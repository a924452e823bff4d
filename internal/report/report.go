// Package report writes puzzle results as HCL documents.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/adventofcode2022/internal/fileutil"
)

// Day1 is the calorie counting result
type Day1 struct {
	Day          int    `hcl:"day"`
	GeneratedAt  string `hcl:"generated_at"`
	Input        string `hcl:"input"`
	Elves        int    `hcl:"elves"`
	MostCalories int    `hcl:"most_calories"`
	Top          []int  `hcl:"top"`
	TopTotal     int    `hcl:"top_total"`
}

// Day2 is the strategy guide result
type Day2 struct {
	Day         int    `hcl:"day"`
	GeneratedAt string `hcl:"generated_at"`
	Input       string `hcl:"input"`
	Decode      string `hcl:"decode"`
	Rounds      int    `hcl:"rounds"`
	Wins        int    `hcl:"wins"`
	Losses      int    `hcl:"losses"`
	Draws       int    `hcl:"draws"`
	TotalScore  int    `hcl:"total_score"`
}

// Timestamp formats t the way reports record generated_at.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Encode renders a tagged report struct as HCL.
func Encode(v any) []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(v, f.Body())
	return hclwrite.Format(f.Bytes())
}

// Write encodes v and replaces path atomically.
func Write(path string, v any) error {
	if err := fileutil.WriteFileAtomic(path, Encode(v), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Read decodes a report written by Write into v.
func Read(path string, v any) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse report: %s", diags.Error())
	}
	if diags := gohcl.DecodeBody(file.Body, nil, v); diags.HasErrors() {
		return fmt.Errorf("failed to decode report: %s", diags.Error())
	}
	return nil
}
