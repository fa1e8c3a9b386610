package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

type stubGenerator struct {
	out string
	err error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func TestAskReturnsTrimmedOutput(t *testing.T) {
	a := NewAssistant(&stubGenerator{out: "  respuesta \n"}, zerolog.Nop())

	if got := a.Ask(context.Background(), "hola"); got != "respuesta" {
		t.Errorf("got %q", got)
	}
}

func TestAskSubstitutesPlaceholderOnError(t *testing.T) {
	a := NewAssistant(&stubGenerator{err: errors.New("quota exceeded")}, zerolog.Nop())

	if got := a.Ask(context.Background(), "hola"); got != Unavailable {
		t.Errorf("got %q, want the unavailable placeholder", got)
	}
}

func TestSummaryPromptTruncatesBody(t *testing.T) {
	body := strings.Repeat("ñ", summaryBodyLimit+200)

	prompt := SummaryPrompt("jane@x.com", "Hola", body)

	if strings.Contains(prompt, body) {
		t.Fatal("prompt contains the untruncated body")
	}
	if !strings.Contains(prompt, strings.Repeat("ñ", summaryBodyLimit)) {
		t.Error("prompt is missing the truncated body prefix")
	}
}

func TestTruncateRunesKeepsRunesWhole(t *testing.T) {
	got := truncateRunes("aéióu", 3)
	if got != "aéi" {
		t.Errorf("got %q, want %q", got, "aéi")
	}
	if !utf8.ValidString(got) {
		t.Errorf("result %q is not valid UTF-8", got)
	}

	if got := truncateRunes("corto", 100); got != "corto" {
		t.Errorf("short input: got %q", got)
	}
}

func TestDraftPromptEmbedsTurnData(t *testing.T) {
	prompt := DraftPrompt("jane@x.com", "Impresora", "la impresora ya quedó")

	for _, want := range []string{"jane@x.com", "Impresora", "la impresora ya quedó"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
