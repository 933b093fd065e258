package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasywa/karsa/internal/llm"
)

func TestTranscript_SeededWithGreeting(t *testing.T) {
	tr := NewTranscript()
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, RoleAssistant, tr.Last().Role)
	assert.Equal(t, Greeting, tr.Last().Text)
	assert.NotEmpty(t, tr.Last().ID)
}

func TestSubmit_RejectsEmptyAndWhitespace(t *testing.T) {
	a := New(llm.NewMockProvider())

	assert.False(t, a.Submit(""))
	assert.False(t, a.Submit("   \t\n"))
	assert.Equal(t, 1, len(a.Messages()), "transcript must be unchanged")
	assert.False(t, a.Awaiting())
}

func TestSubmit_RejectsWhileAwaiting(t *testing.T) {
	a := New(llm.NewMockProvider(llm.MockResponse{Text: "jawaban"}))

	require.True(t, a.Submit("apa itu apbn"))
	require.True(t, a.Awaiting())

	before := len(a.Messages())
	assert.False(t, a.Submit("pertanyaan kedua"), "submission while awaiting must be rejected")
	assert.Equal(t, before, len(a.Messages()), "transcript length unchanged")
}

func TestExchange_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "APBN adalah rencana keuangan tahunan negara."})
	a := New(mock)

	require.True(t, a.Submit("apa itu apbn?"))
	res := a.Request(context.Background(), "apa itu apbn?")
	a.Finish(res)

	msgs := a.Messages()
	require.Equal(t, 3, len(msgs)) // greeting, user, assistant
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "apa itu apbn?", msgs[1].Text)
	assert.Equal(t, RoleAssistant, msgs[2].Role)
	assert.Equal(t, "APBN adalah rencana keuangan tahunan negara.", msgs[2].Text)
	assert.False(t, a.Awaiting(), "gate must reopen after finish")
}

func TestExchange_FailureAppendsFallbackAndReopensGate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := New(mock)

	require.True(t, a.Submit("halo"))
	res := a.Request(context.Background(), "halo")
	require.Error(t, res.Err)
	a.Finish(res)

	msgs := a.Messages()
	require.Equal(t, 3, len(msgs), "exactly one fallback message gained")
	assert.Equal(t, Fallback, msgs[2].Text)
	assert.False(t, a.Awaiting(), "must return to idle, not stay awaiting")

	// Usable again after a failure.
	assert.True(t, a.Submit("coba lagi"))
}

func TestNilProvider_TakesFailurePath(t *testing.T) {
	a := New(nil)

	require.True(t, a.Submit("halo"))
	res := a.Request(context.Background(), "halo")
	require.Error(t, res.Err)
	a.Finish(res)

	assert.Equal(t, Fallback, a.Messages()[2].Text)
	assert.False(t, a.Awaiting())
}

func TestAsk_SendsPersonaAndLiteralText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})

	_, err := Ask(context.Background(), mock, "  fungsi apbn?  ")
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.System, "Karsa")
	assert.Contains(t, req.System, "APBN")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "  fungsi apbn?  ", req.Messages[0].Content, "user text is sent literally")
}

func TestFinish_EmptyReplyFallsBack(t *testing.T) {
	a := New(llm.NewMockProvider())
	require.True(t, a.Submit("x"))
	a.Finish(Result{Reply: "   "})
	assert.Equal(t, Fallback, a.Messages()[2].Text)
}

func TestOrdering_AppendOnly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "satu"},
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		llm.MockResponse{Text: "tiga"},
	)
	a := New(mock)

	questions := []string{"q1", "q2", "q3"}
	for _, q := range questions {
		require.True(t, a.Submit(q))
		a.Finish(a.Request(context.Background(), q))
	}

	msgs := a.Messages()
	require.Equal(t, 7, len(msgs))
	wantRoles := []Role{RoleAssistant, RoleUser, RoleAssistant, RoleUser, RoleAssistant, RoleUser, RoleAssistant}
	for i, r := range wantRoles {
		assert.Equal(t, r, msgs[i].Role, "message %d", i)
	}
	assert.Equal(t, "satu", msgs[2].Text)
	assert.Equal(t, Fallback, msgs[4].Text)
	assert.Equal(t, "tiga", msgs[6].Text)
}
