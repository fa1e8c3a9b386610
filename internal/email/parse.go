package email

import (
	"bytes"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	gomail "github.com/emersion/go-message/mail"
	"golang.org/x/text/encoding/charmap"

	// Register charset decoders (windows-1252, iso-8859-*, koi8-r, etc.)
	_ "github.com/emersion/go-message/charset"
)

// Placeholder values for headers and bodies that cannot be extracted.
const (
	noSubject = "(Sin Asunto)"
	noSender  = "Desconocido"
	noBody    = "Sin contenido legible."
)

// Message is the parsed, display-ready form of one mailbox message.
type Message struct {
	// Sender is the display form of the From header, possibly
	// containing an angle-bracketed address.
	Sender string

	// Subject is the RFC 2047-decoded subject line.
	Subject string

	// Body is the best-effort plain-text payload.
	Body string
}

// Parse extracts sender, subject, and plain-text body from a raw RFC 5322
// message. Extraction is best effort and never fails: undecodable or
// absent fields degrade to fixed placeholders, and a body whose declared
// charset cannot be decoded falls back to a permissive single-byte
// decoding instead of erroring.
func Parse(raw []byte) Message {
	msg := Message{Sender: noSender, Subject: noSubject, Body: noBody}

	mr, err := gomail.CreateReader(bytes.NewReader(raw))
	if mr == nil {
		// Headers are unreadable; salvage whatever follows the header block.
		if body := rawBody(raw); len(body) > 0 {
			msg.Body = decodePermissive(body)
		}
		return msg
	}
	// Unknown-charset errors still yield a usable reader.
	_ = err

	if from, err := mr.Header.AddressList("From"); err == nil && len(from) > 0 {
		msg.Sender = formatAddress(from[0].Name, from[0].Address)
	} else if v := decodeHeader(mr.Header.Get("From")); v != "" {
		msg.Sender = v
	}

	if s, err := mr.Header.Subject(); err == nil && s != "" {
		msg.Subject = s
	} else if v := decodeHeader(mr.Header.Get("Subject")); v != "" {
		msg.Subject = v
	}

	if body := textBody(mr); body != "" {
		msg.Body = body
	} else if b := rawBody(raw); len(b) > 0 {
		msg.Body = decodePermissive(b)
	}

	return msg
}

// textBody walks the MIME parts and returns the first inline plain-text
// payload, decoded permissively when the declared charset failed.
func textBody(mr *gomail.Reader) string {
	for {
		p, err := mr.NextPart()
		if err == io.EOF || p == nil {
			break
		}

		h, ok := p.Header.(*gomail.InlineHeader)
		if !ok {
			continue
		}

		ct, _, _ := mime.ParseMediaType(h.Get("Content-Type"))
		if ct != "" && ct != "text/plain" {
			continue
		}

		b, readErr := io.ReadAll(p.Body)
		if readErr != nil || len(b) == 0 {
			continue
		}

		if utf8.Valid(b) {
			return string(b)
		}
		return decodePermissive(b)
	}
	return ""
}

// decodePermissive maps bytes through ISO 8859-1, which accepts every
// byte value, substituting anything that still fails. It never errors.
func decodePermissive(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}

// rawBody returns everything after the header block of a raw message.
func rawBody(raw []byte) []byte {
	if idx := bytes.Index(raw, []byte("\r\n\r\n")); idx >= 0 {
		return bytes.TrimSpace(raw[idx+4:])
	}
	if idx := bytes.Index(raw, []byte("\n\n")); idx >= 0 {
		return bytes.TrimSpace(raw[idx+2:])
	}
	return nil
}

var wordDecoder = &mime.WordDecoder{}

// decodeHeader decodes RFC 2047 encoded-words, returning the input
// unchanged when decoding fails.
func decodeHeader(s string) string {
	decoded, err := wordDecoder.DecodeHeader(s)
	if err != nil {
		return s
	}
	return decoded
}

func formatAddress(name, addr string) string {
	if name != "" {
		return name + " <" + addr + ">"
	}
	return addr
}
