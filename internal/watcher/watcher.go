// Package watcher polls the mailbox on a fixed interval and surfaces new
// messages as chat notifications with a model-generated summary.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/ai"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/convo"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/email"
)

// Summarizer produces text for a prompt without ever failing.
type Summarizer interface {
	Ask(ctx context.Context, prompt string) string
}

// Notifier pushes a notification to the operator chat.
type Notifier interface {
	Notify(text string) error
}

// Watcher detects new mail across repeated ephemeral mailbox sessions.
// Its working memory is the in-memory identifier set of the last
// successful poll; it is rebuilt from scratch on restart via a fresh
// initial sync.
type Watcher struct {
	dialer   email.Dialer
	ai       Summarizer
	notifier Notifier
	convo    *convo.Context
	log      zerolog.Logger
	interval time.Duration

	known  idSet
	synced bool
}

// New creates a watcher. interval is the pause between cycle completions.
func New(
	dialer email.Dialer,
	summarizer Summarizer,
	notifier Notifier,
	shared *convo.Context,
	log zerolog.Logger,
	interval time.Duration,
) *Watcher {
	return &Watcher{
		dialer:   dialer,
		ai:       summarizer,
		notifier: notifier,
		convo:    shared,
		log:      log.With().Str("component", "watcher").Logger(),
		interval: interval,
		known:    idSet{},
	}
}

// Run polls until ctx is done. The interval is measured between cycle
// completions, not starts, so a slow cycle never overlaps the next one.
func (w *Watcher) Run(ctx context.Context) {
	w.log.Info().Msg("iniciando servicio de vigilancia de correo")

	for {
		w.runCycle(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.interval):
		}
	}
}

// runCycle performs one poll. A connection or listing failure aborts the
// cycle with the known set untouched; a failure on an individual message
// is logged and the rest of the cycle continues. After a cycle that
// listed successfully, the known set is replaced with the full current
// listing (not a union). If the server ever reuses an identifier after
// a deletion, that message is notified again. Accepted edge case.
func (w *Watcher) runCycle(ctx context.Context) {
	log := w.log.With().Str("cycle", uuid.NewString()).Logger()

	sess, err := w.dialer.Dial(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error en ciclo de vigilancia")
		return
	}
	defer func() { _ = sess.Close() }()

	refs, err := sess.List()
	if err != nil {
		log.Error().Err(err).Msg("error listando el buzón")
		return
	}

	current := collect(refs)

	if !w.synced {
		w.known = current
		w.synced = true
		log.Info().Int("correos_previos", len(current)).Msg("sincronización inicial completada")
		return
	}

	fresh := newRefs(refs, w.known)
	if len(fresh) > 0 {
		log.Info().Int("nuevos", len(fresh)).Msg("detectados correos nuevos")
	}

	for _, ref := range fresh {
		if err := w.handleNew(ctx, sess, ref); err != nil {
			log.Error().Err(err).Str("uid", string(ref.ID)).Msg("error procesando correo")
		}
	}

	w.known = current
}

// handleNew fetches, parses, records, summarizes, and announces one new
// message.
func (w *Watcher) handleNew(ctx context.Context, sess email.Session, ref email.Ref) error {
	raw, err := sess.Fetch(ref.Seq)
	if err != nil {
		return fmt.Errorf("fetching message: %w", err)
	}

	msg := email.Parse(raw)

	w.convo.SetPending(email.CleanAddress(msg.Sender), msg.Subject)

	summary := w.ai.Ask(ctx, ai.SummaryPrompt(msg.Sender, msg.Subject, msg.Body))

	if err := w.notifier.Notify(buildAlert(msg, summary)); err != nil {
		return fmt.Errorf("pushing notification: %w", err)
	}
	return nil
}

func buildAlert(msg email.Message, summary string) string {
	return fmt.Sprintf(
		"✨Hola Jefe, tienes correo nuevo\n"+
			"📧De: `%s`\n"+
			"📝Asunto: %s\n"+
			"------------------\n"+
			"%s\n"+
			"------------------\n"+
			"¿Le gustaría responder ahora?",
		msg.Sender, msg.Subject, summary,
	)
}
