package ai

import (
	"fmt"
	"strings"
)

// summaryBodyLimit caps how much of a message body is submitted for
// summarization.
const summaryBodyLimit = 1500

// SummaryPrompt asks for a short executive summary of a new mail. The
// body is truncated before submission.
func SummaryPrompt(sender, subject, body string) string {
	var sb strings.Builder

	sb.WriteString("Eres JoulIAna. Analiza para Jared:\n")
	sb.WriteString(fmt.Sprintf(
		"De: %s | Asunto: %s | Cuerpo: %s\n",
		sender, subject, truncateRunes(body, summaryBodyLimit),
	))
	sb.WriteString("Dame un resumen EJECUTIVO y CORTO (máx 6 líneas).")

	return sb.String()
}

// DraftPrompt asks the model to draft a reply email transmitting the
// operator's dictated statement in third person. The model is instructed
// to return only the email body, never headers, and never to treat the
// dictation as a message addressed to itself.
func DraftPrompt(recipient, subject, dictation string) string {
	var sb strings.Builder

	sb.WriteString("ACTÚA COMO: JoulIAna, la asistente de IA de Jared Abarca (Analista TI).\n\n")
	sb.WriteString("SITUACIÓN:\n")
	sb.WriteString("Jared (tu jefe) te está dictando una respuesta para un correo que recibió.\n\n")
	sb.WriteString("DATOS:\n")
	sb.WriteString(fmt.Sprintf("- Destinatario: %s\n", recipient))
	sb.WriteString(fmt.Sprintf("- Asunto Original: %s\n", subject))
	sb.WriteString(fmt.Sprintf("- LO QUE JARED DICE (Tu instrucción): %q\n\n", dictation))
	sb.WriteString("TU TAREA:\n")
	sb.WriteString("Redactar el correo de respuesta transmitiendo el mensaje de Jared.\n")
	sb.WriteString("NO asumas que el mensaje es para ti. Si Jared dice \"funciona bien\", ")
	sb.WriteString("significa que ÉL opina que funciona bien.\n\n")
	sb.WriteString("FORMATO OBLIGATORIO:\n")
	sb.WriteString("1. Saludo: \"Le escribe JoulIAna en nombre de Jared.\"\n")
	sb.WriteString("2. Cuerpo: \"Jared comenta que [adapta lo que dijo Jared en tercera persona ")
	sb.WriteString("o transmitiendo su idea exacta]...\"\n")
	sb.WriteString("3. Cierre: \"Atentamente, JoulIAna | IA Assistant\".\n\n")
	sb.WriteString("IMPORTANTE: No agradezcas feedback a menos que Jared te diga \"Dile gracias\". ")
	sb.WriteString("Solo transmite su mensaje.\n")
	sb.WriteString("REGLA DE ORO:\n")
	sb.WriteString("SOLO dame el CUERPO del correo. NO incluyas \"Asunto:\", \"Para:\", ")
	sb.WriteString("ni cabeceras. Empieza directo con el saludo.")

	return sb.String()
}

// ChatPrompt wraps free-form operator input with the persona instruction.
func ChatPrompt(input string) string {
	return fmt.Sprintf(
		"Eres JoulIAna, asistente leal y eficiente de Jared (IT). "+
			"Input usuario: %s. Responde con personalidad.",
		input,
	)
}

// truncateRunes cuts s to at most n runes without splitting a rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
