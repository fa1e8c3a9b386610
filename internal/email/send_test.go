package email

import (
	"strings"
	"testing"
)

func TestReplySubjectPrefixesOnce(t *testing.T) {
	if got := replySubject("Impresora"); got != "Re: Impresora" {
		t.Errorf("got %q", got)
	}
	if got := replySubject("Re: Impresora"); got != "Re: Impresora" {
		t.Errorf("already prefixed: got %q", got)
	}
	if got := replySubject("RE: Impresora"); got != "RE: Impresora" {
		t.Errorf("uppercase prefix: got %q", got)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("yo@x.com", "jane@x.com", "Re: Hola", "cuerpo")

	header, body, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatal("message has no header/body separator")
	}
	for _, want := range []string{
		"From: yo@x.com",
		"To: jane@x.com",
		"Subject: Re: Hola",
		"Content-Type: text/plain; charset=UTF-8",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
	if body != "cuerpo" {
		t.Errorf("body: got %q", body)
	}
}
