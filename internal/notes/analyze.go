package notes

import (
	"log/slog"

	"github.com/k1LoW/errors"

	"github.com/ironsheep/image-notes/internal/imaging"
)

// failurePrefix starts every failure string returned by Analyze.
const failurePrefix = "Error analyzing image: "

// AnalysisFailure is the single failure kind of an analysis. Missing files,
// permission problems, unsupported encodings and corrupt headers are not
// distinguished.
type AnalysisFailure struct {
	Message string
	err     error
}

func (f *AnalysisFailure) Error() string {
	return failurePrefix + f.Message
}

func (f *AnalysisFailure) Unwrap() error {
	return f.err
}

// Inspect reads the image at path and renders its report.
//
// Every error is returned as an *AnalysisFailure.
func Inspect(path string) (*Report, error) {
	props, err := imaging.Inspect(path)
	if err != nil {
		slog.Debug("inspection failed", "path", path, "error", err, "stack", errors.StackTraces(err))
		return nil, &AnalysisFailure{Message: err.Error(), err: err}
	}

	report := &Report{
		Properties:  props,
		Orientation: props.Orientation(),
		Resolution:  props.Resolution(),
		Text:        Render(props),
	}
	slog.Debug("inspected image",
		"path", path,
		"width", props.Width,
		"height", props.Height,
		"format", props.Format,
		"mode", props.ColorMode,
		"aspect_ratio", props.AspectRatio(),
		"orientation", report.Orientation.String(),
		"resolution", report.Resolution.String(),
	)
	return report, nil
}

// Analyze returns the design notes report for the image at path, or a
// single-line "Error analyzing image: <message>" string if the image cannot
// be read. It never returns an error.
func Analyze(path string) string {
	report, err := Inspect(path)
	if err != nil {
		return err.Error()
	}
	return report.Text
}
