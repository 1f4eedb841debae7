package utils

import "github.com/schollz/progressbar/v3"

// DescGenerating labels the workspace-run progress bar.
const DescGenerating = "Generating"

// NewProgressBar creates a consistently styled progress bar.
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (spinner mode).
//   - description: Text description to show before the bar.
//
// Example:
//
//	bar := utils.NewProgressBar(len(pkgs), utils.DescGenerating)
//	defer bar.Finish()
//
//	for _, pkg := range pkgs {
//	    // Process package
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
