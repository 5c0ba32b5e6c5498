/*
Package ocr extracts plate candidates from uploaded images.

Recognition shells out to the tesseract binary in TSV mode and averages the
per-word confidences. Extraction accuracy is the engine's problem, not ours:
this package only normalizes the text and attaches the confidence so the
caller can show the low-confidence advisory. That advisory threshold is fixed
and independent of the suggestion engine's confidence tiers.
*/
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// AdvisoryThreshold is the confidence below which the low-confidence
// advisory is shown.
const AdvisoryThreshold = 85.0

// defaultTimeout bounds one recognition run.
const defaultTimeout = 30 * time.Second

// Result is one recognition outcome.
type Result struct {
	// Plate is the normalized candidate (uppercase, alphanumerics only).
	Plate string `json:"plate"`

	// Confidence is the average word confidence, 0-100.
	Confidence float64 `json:"confidence"`
}

// LowConfidence reports whether the advisory should be shown.
func (r Result) LowConfidence() bool {
	return r.Confidence < AdvisoryThreshold
}

// Recognizer runs tesseract against image files.
type Recognizer struct {
	binary    string
	languages string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewRecognizer creates a recognizer. Binary defaults to "tesseract" and
// languages to "eng" when empty.
func NewRecognizer(binary, languages string, logger zerolog.Logger) *Recognizer {
	if binary == "" {
		binary = "tesseract"
	}
	if languages == "" {
		languages = "eng"
	}
	return &Recognizer{
		binary:    binary,
		languages: languages,
		timeout:   defaultTimeout,
		logger:    logger.With().Str("component", "ocr").Logger(),
	}
}

// Recognize extracts a plate candidate from an image file.
// The child process is killed when the timeout elapses.
func (r *Recognizer) Recognize(ctx context.Context, imagePath string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, imagePath, "stdout", "-l", r.languages, "tsv")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug().Str("image", imagePath).Msg("running tesseract")
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return Result{}, fmt.Errorf("recognition timed out after %s", r.timeout)
		}
		return Result{}, fmt.Errorf("tesseract failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}

	text, confidence := parseTSV(stdout.String())
	plate := NormalizeText(text)
	if plate == "" {
		return Result{}, fmt.Errorf("no text recognized in image")
	}

	return Result{Plate: plate, Confidence: confidence}, nil
}

// parseTSV extracts the recognized words and their average confidence from
// tesseract TSV output. Word rows have level 5; conf is column 11 and text
// column 12.
func parseTSV(output string) (string, float64) {
	var words []string
	sum, count := 0.0, 0

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 12 || fields[0] != "5" {
			continue
		}
		conf, err := strconv.ParseFloat(fields[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		word := strings.TrimSpace(fields[11])
		if word == "" {
			continue
		}
		words = append(words, word)
		sum += conf
		count++
	}

	if count == 0 {
		return "", 0
	}
	return strings.Join(words, ""), sum / float64(count)
}

// NormalizeText uppercases recognized text and strips everything that cannot
// appear in a plate.
func NormalizeText(text string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(text) {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}
