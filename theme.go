package plot

// Theme collects the fixed (non-mapped) aesthetics of the plot elements.
type Theme struct {
	SurfaceStyle AesMapping // facets of the surfaces
	PaneStyle    AesMapping // the three back panes of the axes box
	GridStyle    AesMapping // grid lines on the panes
	TextStyle    AesMapping // tick labels, axis labels and title

	Background string
}

var DefaultTheme = Theme{
	SurfaceStyle: AesMapping{
		"alpha":    "0.5",
		"linetype": "blank",
		"size":     "0",
		"shade":    "true",
	},
	PaneStyle: AesMapping{
		"fill":  "gray95",
		"color": "gray80",
		"size":  "0.5",
	},
	GridStyle: AesMapping{
		"color":    "gray80",
		"size":     "0.5",
		"linetype": "solid",
	},
	TextStyle: AesMapping{
		"color":      "black",
		"size":       "9",
		"label.size": "11",
		"title.size": "14",
	},
	Background: "white",
}

// MergeStyles merges the style mappings. The first set value for an
// aesthetic wins, empty values count as unset.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for aes, v := range am {
			if _, ok := merged[aes]; ok || v == "" {
				continue
			}
			merged[aes] = v
		}
	}
	return merged
}
