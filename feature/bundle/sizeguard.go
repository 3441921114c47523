package bundle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// Status is the outcome of a size-budget check.
type Status string

const (
	// StatusOK means the archive fits the declared budget.
	StatusOK Status = "ok"
	// StatusOversize means the archive exceeds the declared budget.
	StatusOversize Status = "oversize"
	// StatusSkipped means no budget was declared for the format.
	// Absence of a budget is never conflated with passing one.
	StatusSkipped Status = "skipped"
)

// CheckResult reports the outcome of a size-budget check.
type CheckResult struct {
	// Status is ok, oversize or skipped.
	Status Status `json:"status"`

	// ActualBytes is the archive's byte size on disk.
	ActualBytes int64 `json:"actual_bytes"`

	// BudgetBytes is the declared budget, zero when skipped.
	BudgetBytes int64 `json:"budget_bytes"`
}

var budgetRe = regexp.MustCompile(`(?i)^\s*(\d+)\s*kb\s*$`)

// ParseBudget parses a declared budget string such as "150kb"
// (case-insensitive) into bytes, using 1kb = 1024 bytes. An empty string
// means no budget was declared and parses to zero without error.
func ParseBudget(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	m := budgetRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid size budget %q: expected <number>kb", s)
	}
	kb, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size budget %q: %w", s, err)
	}
	return kb * 1024, nil
}

// Check compares the archive's actual byte size against the budget.
// A zero budget means none was declared and yields StatusSkipped. Oversize
// archives are reported, never fatal; publishing constraints are advisory
// at generation time.
func Check(archivePath string, budgetBytes int64) (CheckResult, error) {
	info, err := os.Stat(archivePath)
	if err != nil {
		return CheckResult{}, fmt.Errorf("stat archive %s: %w", archivePath, err)
	}

	result := CheckResult{ActualBytes: info.Size(), BudgetBytes: budgetBytes}
	switch {
	case budgetBytes <= 0:
		result.Status = StatusSkipped
		result.BudgetBytes = 0
	case info.Size() <= budgetBytes:
		result.Status = StatusOK
	default:
		result.Status = StatusOversize
	}
	return result, nil
}
