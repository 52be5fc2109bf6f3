package differ

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxSampleLen = 120

// ContentDiffer produces compact, human-readable summaries of text changes
// between two observations of the same page. Summaries are diagnostic
// only; change detection itself runs on fingerprints.
type ContentDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewContentDiffer creates a new ContentDiffer.
func NewContentDiffer() *ContentDiffer {
	return &ContentDiffer{dmp: diffmatchpatch.New()}
}

// Summarize diffs two normalized text snapshots and returns a one-line
// summary: segment counts plus a short sample of the first inserted text.
// Identical inputs return the empty string.
func (cd *ContentDiffer) Summarize(oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	diffs := cd.dmp.DiffMain(oldText, newText, false)
	diffs = cd.dmp.DiffCleanupSemantic(diffs)

	var inserted, deleted int
	var sample string
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted++
			if sample == "" {
				sample = strings.TrimSpace(d.Text)
			}
		case diffmatchpatch.DiffDelete:
			deleted++
		}
	}

	if inserted == 0 && deleted == 0 {
		return ""
	}

	summary := fmt.Sprintf("+%d/-%d segments", inserted, deleted)
	if sample != "" {
		if len(sample) > maxSampleLen {
			sample = sample[:maxSampleLen] + "…"
		}
		summary += fmt.Sprintf(", new: «%s»", sample)
	}
	return summary
}
