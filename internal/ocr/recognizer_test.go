package ocr

import "testing"

// A minimal tesseract TSV document: a header, a page row, and word rows at
// level 5.
const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t640\t480\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t10\t10\t100\t40\t96\tAB\n" +
	"5\t1\t1\t1\t1\t2\t120\t10\t160\t40\t88\t12345\n"

func TestParseTSV_JoinsWordsAndAveragesConfidence(t *testing.T) {
	text, confidence := parseTSV(sampleTSV)

	if text != "AB12345" {
		t.Errorf("expected AB12345, got %q", text)
	}
	if confidence != 92 {
		t.Errorf("expected average confidence 92, got %v", confidence)
	}
}

func TestParseTSV_SkipsNonWordRows(t *testing.T) {
	tsv := "4\t1\t1\t1\t1\t0\t0\t0\t0\t0\t95\tIGNORED\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t0\t0\t-1\tNOCONF\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t0\t0\t90\tAB\n"

	text, confidence := parseTSV(tsv)
	if text != "AB" || confidence != 90 {
		t.Errorf("expected AB at 90, got %q at %v", text, confidence)
	}
}

func TestParseTSV_Empty(t *testing.T) {
	text, confidence := parseTSV("")
	if text != "" || confidence != 0 {
		t.Errorf("expected empty result, got %q at %v", text, confidence)
	}
}

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ab 123-45", "AB12345"},
		{"AB12345", "AB12345"},
		{"[AB.123]", "AB123"},
		{"...", ""},
	}
	for _, c := range cases {
		if got := NormalizeText(c.in); got != c.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResultLowConfidence(t *testing.T) {
	if (Result{Confidence: 85}).LowConfidence() {
		t.Error("confidence of exactly 85 is not low")
	}
	if !(Result{Confidence: 84.9}).LowConfidence() {
		t.Error("confidence below 85 is low")
	}
}
