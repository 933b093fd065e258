// Package chat implements the Karsa study-buddy assistant: an append-only
// transcript plus a single-slot admission gate over one outbound
// generative-language request at a time.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nasywa/karsa/internal/llm"
)

// Greeting seeds every new transcript.
const Greeting = "Halo! Aku Karsa, teman belajarmu. Ada yang ingin kamu tanyakan tentang APBN?"

// Fallback is appended when the outbound request fails for any reason.
// No automatic retry follows; the learner may simply ask again.
const Fallback = "Maaf, layanan Karsa sedang tidak dapat dihubungi. Silakan coba lagi nanti, ya."

// persona is the fixed instruction prepended to every outbound request. It
// pins the assistant's identity, restricts it to the APBN topic, fixes the
// response language, and asks for a polite redirect on anything else. There
// is no local topic filter; enforcement rests on the model.
const persona = `Kamu adalah Karsa, teman belajar yang ramah untuk siswa yang sedang
mempelajari APBN (Anggaran Pendapatan dan Belanja Negara) Indonesia.
Jawab selalu dalam Bahasa Indonesia yang santai, hangat, dan mudah dipahami.
Jawab hanya pertanyaan seputar APBN dan keuangan negara: pendapatan negara,
belanja negara, fungsi dan struktur anggaran. Jika pertanyaan di luar topik
itu, tolak dengan sopan dan ajak kembali belajar tentang APBN.
Jawab singkat, maksimal beberapa kalimat.`

const (
	replyMaxTokens   = 512
	replyTemperature = 0.6
)

// Role tags a transcript message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID   string
	Role Role
	Text string
}

// Transcript is an ordered, append-only message log seeded with the greeting.
type Transcript struct {
	msgs []Message
}

// NewTranscript creates a transcript containing the fixed greeting.
func NewTranscript() *Transcript {
	t := &Transcript{}
	t.append(RoleAssistant, Greeting)
	return t
}

func (t *Transcript) append(role Role, text string) Message {
	m := Message{ID: uuid.New().String(), Role: role, Text: text}
	t.msgs = append(t.msgs, m)
	return m
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.msgs))
	copy(out, t.msgs)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.msgs) }

// Last returns the most recent message.
func (t *Transcript) Last() Message { return t.msgs[len(t.msgs)-1] }

// Result is the outcome of one outbound request.
type Result struct {
	Reply string
	Err   error
}

// Assistant pairs a transcript with a provider and the awaiting gate.
// All methods are called from the single UI event loop; the gate exists to
// serialize outbound requests, not goroutines.
type Assistant struct {
	provider   llm.Provider
	transcript *Transcript
	awaiting   bool
}

// New creates an Assistant. A nil provider is allowed: every submission then
// takes the failure path (fallback message) without crashing the app.
func New(provider llm.Provider) *Assistant {
	return &Assistant{
		provider:   provider,
		transcript: NewTranscript(),
	}
}

// Messages returns the transcript so far.
func (a *Assistant) Messages() []Message { return a.transcript.Messages() }

// Awaiting reports whether a request is in flight.
func (a *Assistant) Awaiting() bool { return a.awaiting }

// Submit validates and admits one question. Empty or whitespace-only text is
// rejected, as is any submission while a request is awaiting. On admission
// the user message is appended and the gate closes; the caller then runs
// Request and hands its Result to Finish.
func (a *Assistant) Submit(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || a.awaiting {
		return false
	}
	a.transcript.append(RoleUser, text)
	a.awaiting = true
	return true
}

// Request performs the outbound call for a previously admitted question.
// It never touches the transcript; pair it with Finish.
func (a *Assistant) Request(ctx context.Context, question string) Result {
	reply, err := Ask(ctx, a.provider, question)
	return Result{Reply: reply, Err: err}
}

// Finish appends the assistant reply, or the fixed fallback on failure, and
// reopens the gate. The transcript thus always gains exactly one assistant
// message per admitted submission, in order.
func (a *Assistant) Finish(res Result) {
	if res.Err != nil || strings.TrimSpace(res.Reply) == "" {
		a.transcript.append(RoleAssistant, Fallback)
	} else {
		a.transcript.append(RoleAssistant, res.Reply)
	}
	a.awaiting = false
}

// Ask sends one question under the Karsa persona and returns the reply text.
// Used by the Assistant and by the one-shot `karsa ask` command.
func Ask(ctx context.Context, provider llm.Provider, question string) (string, error) {
	if provider == nil {
		return "", fmt.Errorf("no LLM provider configured")
	}

	ctx = llm.WithPurpose(ctx, "chat")
	resp, err := provider.Generate(ctx, llm.Request{
		System: persona,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("karsa reply: %w", err)
	}
	return resp.Text, nil
}
