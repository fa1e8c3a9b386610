package controller

import "strings"

// Keyword sets mirror the short Spanish phrases the operator actually
// types in chat. Matching is case-insensitive substring matching so
// "Sí, claro" and "ok dale" both count as affirmative.
var (
	affirmatives = []string{"si", "sí", "claro", "responder", "ok", "simon"}

	ticketAffirmatives = []string{"si", "sí", "claro", "por favor", "hazlo", "simon"}

	dismissals = []string{"no", "nel", "nop", "luego", "gracias"}

	incidentKeywords = []string{"ticket", "incidencia", "soporte", "falla"}
)

func matchAny(input string, keywords []string) bool {
	lowered := strings.ToLower(input)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
