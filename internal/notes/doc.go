// Package notes renders the game design notes report for an image.
//
// Render is a pure function from imaging.ImageProperties to report text and
// performs no I/O. Analyze combines imaging.Inspect and Render and never
// fails: any problem reading the image is folded into a single-line
// "Error analyzing image: <message>" string returned in place of the report.
// Callers that need to branch on failure without matching text can use
// Inspect, which returns the same failure as an *AnalysisFailure.
package notes
