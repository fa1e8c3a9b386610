package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/ai"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/chat"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/config"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/controller"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/convo"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/email"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/logging"
	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/watcher"
)

const banner = `
    ╔════════════════════════════════════════╗
    ║       JOULIANA AI ASSISTANT v1.2       ║
    ║      System Online & Listening...      ║
    ╚════════════════════════════════════════╝
`

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: %v. Revise el archivo .env\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.AuditLogPath)
	ctx := context.Background()

	gemini, err := ai.NewGemini(ctx, cfg.Project, cfg.Location)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo inicializar el cliente Vertex AI")
	}
	assistant := ai.NewAssistant(gemini, log)

	bot, err := chat.New(cfg.TelegramToken, cfg.TelegramChatID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo inicializar el bot de Telegram")
	}

	shared := convo.NewContext()
	dialer := email.NewIMAPDialer(cfg.MailServer, cfg.IMAPPort, cfg.MailUser, cfg.MailPass)
	sender := email.NewSMTPSender(cfg.MailServer, cfg.SMTPPort, cfg.MailUser, cfg.MailPass)

	w := watcher.New(dialer, assistant, bot, shared, log, cfg.PollInterval)
	ctrl := controller.New(shared, assistant, sender, bot, log)

	fmt.Print(banner + "\n")
	log.Info().
		Str("buzon", cfg.MailUser).
		Str("servidor", cfg.MailServer).
		Msg("sistema iniciado")

	go w.Run(ctx)

	bot.Listen(func(in chat.Incoming) {
		ctrl.Handle(ctx, in)
	})
}
