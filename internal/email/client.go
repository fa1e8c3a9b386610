// Package email talks to the mail server: ephemeral IMAP sessions for
// listing and fetching inbox messages, MIME parsing, and SMTP replies.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// dialTimeout bounds the wait for a mailbox connection so a dead server
// cannot stall a poll cycle.
const dialTimeout = 10 * time.Second

// ID is an opaque, server-assigned identifier for one mailbox message.
// It is stable for the lifetime of the mailbox and is only ever compared
// for set membership, never parsed.
type ID string

// Ref pairs a message identifier with its sequence number inside the
// session that produced it. The sequence number is meaningless outside
// that session and must not be cached across poll cycles.
type Ref struct {
	ID  ID
	Seq uint32
}

// Session is one ephemeral mailbox connection. The caller closes it at
// the end of the poll cycle regardless of outcome.
type Session interface {
	// List returns a Ref for every message currently in the inbox.
	// An empty mailbox yields an empty slice and no error.
	List() ([]Ref, error)

	// Fetch returns the raw RFC 5322 bytes of the message with the
	// given session-local sequence number.
	Fetch(seq uint32) ([]byte, error)

	Close() error
}

// Dialer opens mailbox sessions.
type Dialer interface {
	Dial(ctx context.Context) (Session, error)
}

// IMAPDialer implements Dialer over IMAP with implicit TLS. Each Dial
// opens a fresh connection, authenticates, and selects INBOX.
type IMAPDialer struct {
	host     string
	port     string
	username string
	password string
}

// NewIMAPDialer creates a dialer for the given server and credentials.
func NewIMAPDialer(host, port, username, password string) *IMAPDialer {
	return &IMAPDialer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Dial connects, authenticates, and selects INBOX read-only. Any failure
// aborts the whole attempt; nothing is retried here.
func (d *IMAPDialer) Dial(_ context.Context) (Session, error) {
	addr := net.JoinHostPort(d.host, d.port)

	netDialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(netDialer, "tcp", addr, &tls.Config{
		ServerName: d.host,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}

	return setupSession(conn, d.username, d.password, dialTimeout)
}

// setupSession authenticates and selects INBOX under a deadline covering
// the whole exchange, so a server that accepts the connection and then
// stalls cannot hang a poll cycle. The deadline is lifted once the
// session is established.
func setupSession(conn net.Conn, username, password string, timeout time.Duration) (Session, error) {
	_ = conn.SetDeadline(time.Now().Add(timeout))

	client := imapclient.New(conn, nil)

	if err := client.Login(username, password).Wait(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("authenticating %s: %w", username, err)
	}

	sel, err := client.Select("INBOX", &imap.SelectOptions{ReadOnly: true}).Wait()
	if err != nil {
		_ = client.Logout().Wait()
		return nil, fmt.Errorf("selecting INBOX: %w", err)
	}

	_ = conn.SetDeadline(time.Time{})

	return &imapSession{client: client, numMessages: sel.NumMessages}, nil
}

type imapSession struct {
	client      *imapclient.Client
	numMessages uint32
}

func (s *imapSession) List() ([]Ref, error) {
	if s.numMessages == 0 {
		return nil, nil
	}

	var seqSet imap.SeqSet
	seqSet.AddRange(1, s.numMessages)

	msgs, err := s.client.Fetch(seqSet, &imap.FetchOptions{UID: true}).Collect()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	refs := make([]Ref, 0, len(msgs))
	for _, m := range msgs {
		if m.UID == 0 || m.SeqNum == 0 {
			// Untrackable listing entry; skip rather than abort.
			continue
		}
		refs = append(refs, Ref{
			ID:  ID(strconv.FormatUint(uint64(m.UID), 10)),
			Seq: m.SeqNum,
		})
	}
	return refs, nil
}

func (s *imapSession) Fetch(seq uint32) ([]byte, error) {
	section := &imap.FetchItemBodySection{Peek: true}
	fetchOpts := &imap.FetchOptions{
		BodySection: []*imap.FetchItemBodySection{section},
	}

	fetchCmd := s.client.Fetch(imap.SeqSetNum(seq), fetchOpts)
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, fmt.Errorf("message %d not found", seq)
	}

	buf, err := msg.Collect()
	if err != nil {
		return nil, fmt.Errorf("collecting message %d: %w", seq, err)
	}

	raw := buf.FindBodySection(section)
	if raw == nil {
		return nil, fmt.Errorf("message %d has no body section", seq)
	}
	return raw, nil
}

func (s *imapSession) Close() error {
	if err := s.client.Logout().Wait(); err != nil {
		return s.client.Close()
	}
	return nil
}
