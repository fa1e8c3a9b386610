// Package controller drives the operator conversation. Each incoming
// chat message is one turn: the current mode is consumed atomically,
// the turn runs to completion under that mode, and every path lands
// back in an explicit mode before the turn ends.
package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/ai"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/chat"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/convo"
)

// Asker produces model output for a prompt, degrading to a placeholder
// instead of failing.
type Asker interface {
	Ask(ctx context.Context, prompt string) string
}

// Mailer sends a reply on behalf of the operator.
type Mailer interface {
	Send(to, subject, body string) error
}

// Transport is the operator-facing chat surface.
type Transport interface {
	Notify(text string) error
	Reply(in chat.Incoming, text string) error
	Typing()
}

type Controller struct {
	convo  *convo.Context
	ai     Asker
	mailer Mailer
	chat   Transport
	log    zerolog.Logger
}

func New(shared *convo.Context, assistant Asker, mailer Mailer, transport Transport, log zerolog.Logger) *Controller {
	return &Controller{
		convo:  shared,
		ai:     assistant,
		mailer: mailer,
		chat:   transport,
		log:    log.With().Str("component", "controller").Logger(),
	}
}

// Handle runs one conversation turn.
func (c *Controller) Handle(ctx context.Context, in chat.Incoming) {
	mode := c.convo.ConsumeMode()
	c.log.Debug().
		Str("modo", mode.String()).
		Int("message_id", in.MessageID).
		Msg("procesando mensaje de chat")

	switch mode {
	case convo.ModeAwaitingTicketConfirmation:
		c.handleTicket(in)
	case convo.ModeAwaitingReplyDraft:
		c.handleDraft(ctx, in)
	default:
		c.handleIdle(ctx, in)
	}
}

const ticketCreated = "🤖 Generando ticket en la plataforma...\n\n" +
	"✅ *Ticket #INC-2026-8492 creado.*\n" +
	"Categoría: Soporte Técnico\n" +
	"Asignado a: Mesa de Ayuda N1\n" +
	"SLA: 4 horas"

// handleTicket resolves the pending ticket offer. Any answer ends the
// flow; only an explicit yes produces the ticket message.
func (c *Controller) handleTicket(in chat.Incoming) {
	if matchAny(in.Text, ticketAffirmatives) {
		c.chat.Typing()
		c.reply(in, ticketCreated)
		return
	}
	c.reply(in, "Comprendido. No se generó ticket.")
}

// handleDraft treats the whole message as the operator's dictation,
// drafts the reply with the model and sends it to the pending sender.
func (c *Controller) handleDraft(ctx context.Context, in chat.Incoming) {
	sender, subject, ok := c.convo.Pending()
	if !ok {
		c.reply(in, "🤷‍♀️ No hay correos recientes en memoria.")
		return
	}

	c.notify("A la orden Jefe, redactando su correo...")
	c.chat.Typing()

	// Ask never fails; a model outage yields the placeholder text and
	// the send still happens, so the operator sees exactly what went out.
	body := c.ai.Ask(ctx, ai.DraftPrompt(sender, subject, in.Text))

	if err := c.mailer.Send(sender, subject, body); err != nil {
		c.log.Error().Err(err).Str("destinatario", sender).Msg("fallo de envío SMTP")
		c.reply(in, "😰 Error de conexión SMTP. Revise los logs.")
		return
	}

	c.log.Info().Str("destinatario", sender).Msg("respuesta enviada")
	c.reply(in, fmt.Sprintf("✅ ¡Listo Jefe! Enviado.\n\nCopia:\n---\n%s\n---", body))

	if matchAny(body, incidentKeywords) {
		c.notify("🤔 Detecté que esto parece una incidencia de soporte.\n¿Desea que genere un ticket en la plataforma? (Sí/No)")
		c.convo.SetMode(convo.ModeAwaitingTicketConfirmation)
	}
}

// handleIdle routes free-form input: start a reply draft, acknowledge a
// dismissal, or fall through to plain persona chat.
func (c *Controller) handleIdle(ctx context.Context, in chat.Incoming) {
	switch {
	case matchAny(in.Text, affirmatives):
		sender, _, ok := c.convo.Pending()
		if !ok {
			c.reply(in, "🤷‍♀️ No hay correos recientes en memoria.")
			return
		}
		c.reply(in, fmt.Sprintf("📝 Con gusto.\n¿Qué respondemos a %s?", sender))
		c.convo.SetMode(convo.ModeAwaitingReplyDraft)

	case matchAny(in.Text, dismissals):
		c.reply(in, "👍 Enterado. Quedo a la espera.")

	default:
		c.chat.Typing()
		c.reply(in, c.ai.Ask(ctx, ai.ChatPrompt(in.Text)))
	}
}

func (c *Controller) reply(in chat.Incoming, text string) {
	if err := c.chat.Reply(in, text); err != nil {
		c.log.Error().Err(err).Msg("fallo enviando respuesta de chat")
	}
}

func (c *Controller) notify(text string) {
	if err := c.chat.Notify(text); err != nil {
		c.log.Error().Err(err).Msg("fallo enviando aviso de chat")
	}
}
