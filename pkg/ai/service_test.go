package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cv-builder/internal/fallback"
	"cv-builder/internal/model"
	"cv-builder/internal/sector"
	"cv-builder/pkg/ai/backends"
)

const validReply = `{"summary":"Ingeniera con 5 años de experiencia.","experience":[{"title":"Dev","organization":"ACME","period":"2019-2024","bullets":["Lideró la migración"]}],"skills":{"technical":["Go"],"soft":["Liderazgo"],"tools":["Jira"]}}`

var fallbackCV = model.StructuredCV{
	Summary:    "plantilla",
	Experience: []model.Role{},
	Skills:     model.Skills{Technical: []string{}, Soft: []string{}, Tools: []string{}},
}

type stubFallback struct{ calls int }

func (f *stubFallback) Generate(model.CandidateInput) model.StructuredCV {
	f.calls++
	return fallbackCV
}

type stubBackend struct {
	reply  string
	err    error
	block  bool
	calls  int
	prompt string
	model  string
	key    string
}

func (b *stubBackend) Send(ctx context.Context, prompt, model, apiKey string) (string, error) {
	b.calls++
	b.prompt, b.model, b.key = prompt, model, apiKey
	if b.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return b.reply, b.err
}

func testRegistry(t *testing.T) *backends.Registry {
	t.Helper()
	r, err := backends.DefaultRegistry()
	require.NoError(t, err)
	return r
}

func newTestService(t *testing.T, b *stubBackend, opts ...Option) (*Service, *stubFallback) {
	t.Helper()
	fb := &stubFallback{}
	base := []Option{
		WithFactory(func(backends.Spec, backends.Settings) (backends.Backend, error) { return b, nil }),
		WithEnv(func(string) string { return "" }),
	}
	return NewService(testRegistry(t), fb, append(base, opts...)...), fb
}

var candidate = model.CandidateInput{Name: "Ana Pérez", Email: "ana@example.com", Phone: "600123456", Skills: "Go, SQL"}

func TestGenerate_ValidReply(t *testing.T) {
	replies := map[string]string{
		"plain":      validReply,
		"fenced":     "```json\n" + validReply + "\n```",
		"bare fence": "```\n" + validReply + "```",
		"with prose": "Claro, aquí tienes el CV:\n" + validReply + "\nEspero que te sirva.",
		"padded":     "\n\t " + validReply + "  \n",
	}
	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			b := &stubBackend{reply: reply}
			svc, fb := newTestService(t, b)
			cv := svc.Generate(context.Background(), candidate, "ollama_local", "mistral", "")
			assert.Equal(t, 0, fb.calls)
			assert.Equal(t, "Ingeniera con 5 años de experiencia.", cv.Summary)
			require.Len(t, cv.Experience, 1)
			assert.Equal(t, "ACME", cv.Experience[0].Organization)
			assert.Equal(t, "mistral", b.model)
			assert.Contains(t, b.prompt, "Ana Pérez")
		})
	}
}

func TestGenerate_FallsBack(t *testing.T) {
	cases := map[string]*stubBackend{
		"transport error": {err: errors.New("connection refused")},
		"status error":    {err: &backends.StatusError{StatusCode: 503}},
		"empty":           {reply: "   "},
		"mock sentinel":   {reply: backends.MockReply},
		"not json":        {reply: "Lo siento, no puedo ayudar con eso."},
		"broken json":     {reply: `{"summary": "x", "experience": [`},
		"schema mismatch": {reply: `{"summary": "x", "experience": "ninguna", "skills": {}}`},
		"missing keys":    {reply: `{"resumen": "x"}`},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			svc, fb := newTestService(t, b)
			cv := svc.Generate(context.Background(), candidate, "ollama_local", "", "")
			assert.Equal(t, fallbackCV, cv)
			assert.Equal(t, 1, fb.calls)
			assert.Equal(t, 1, b.calls)
		})
	}
}

func TestGenerate_UnknownBackend(t *testing.T) {
	b := &stubBackend{reply: validReply}
	svc, fb := newTestService(t, b)
	assert.Equal(t, fallbackCV, svc.Generate(context.Background(), candidate, "carrier_pigeon", "", ""))
	assert.Equal(t, 1, fb.calls)
	assert.Equal(t, 0, b.calls)
}

func TestGenerate_MissingKeySkipsNetwork(t *testing.T) {
	b := &stubBackend{reply: validReply}
	svc, fb := newTestService(t, b)
	assert.Equal(t, fallbackCV, svc.Generate(context.Background(), candidate, "openai", "gpt-4", ""))
	assert.Equal(t, 1, fb.calls)
	assert.Equal(t, 0, b.calls)
}

func TestGenerate_KeyResolution(t *testing.T) {
	env := func(name string) string {
		if name == "OPENAI_API_KEY" {
			return "sk-from-env-123"
		}
		return ""
	}

	b := &stubBackend{reply: validReply}
	svc, _ := newTestService(t, b, WithEnv(env))
	svc.Generate(context.Background(), candidate, "openai", "", "")
	assert.Equal(t, "sk-from-env-123", b.key)
	assert.Equal(t, "gpt-3.5-turbo", b.model, "empty model selects the first listed one")

	svc.Generate(context.Background(), candidate, "openai", "gpt-4", "sk-explicit-456")
	assert.Equal(t, "sk-explicit-456", b.key)
}

func TestGenerate_KeylessBackendNeedsNoKey(t *testing.T) {
	b := &stubBackend{reply: validReply}
	svc, fb := newTestService(t, b)
	svc.Generate(context.Background(), candidate, "ollama_local", "", "")
	assert.Equal(t, 0, fb.calls)
	assert.Equal(t, "", b.key)
}

func TestGenerate_Timeout(t *testing.T) {
	b := &stubBackend{block: true}
	svc, fb := newTestService(t, b, WithSettings(backends.Settings{MaxTokens: 10, Timeout: 20 * time.Millisecond}))
	start := time.Now()
	cv := svc.Generate(context.Background(), candidate, "cohere", "", "co-key-1234567")
	assert.Equal(t, fallbackCV, cv)
	assert.Equal(t, 1, fb.calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGenerate_TimeoutMatchesTemplateGenerator(t *testing.T) {
	catalog, err := sector.DefaultCatalog()
	require.NoError(t, err)
	gen := fallback.New(catalog)
	in := model.CandidateInput{
		Name:        "Ana Pérez",
		Email:       "ana@example.com",
		Phone:       "600123456",
		Objective:   "Desarrolladora backend",
		WorkHistory: "Desarrolladora - Fintech SA - 2019-2023",
		Skills:      "Go, SQL, Docker",
	}

	b := &stubBackend{block: true}
	svc := NewService(testRegistry(t), gen,
		WithFactory(func(backends.Spec, backends.Settings) (backends.Backend, error) { return b, nil }),
		WithEnv(func(string) string { return "" }),
		WithSettings(backends.Settings{MaxTokens: 10, Timeout: 20 * time.Millisecond}),
	)
	assert.Equal(t, gen.Generate(in), svc.Generate(context.Background(), in, "cohere", "", "co-key-1234567"))
	assert.Equal(t, 1, b.calls)
}

func TestGenerate_MockBackendEndToEnd(t *testing.T) {
	fb := &stubFallback{}
	svc := NewService(testRegistry(t), fb)
	for _, m := range []string{"mock-basic", "mock-professional", "mock-creative", ""} {
		assert.Equal(t, fallbackCV, svc.Generate(context.Background(), candidate, "mock", m, ""))
	}
	assert.Equal(t, 4, fb.calls)
}

func TestGenerate_NeverLogsKey(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	const secret = "sk-very-secret-key-987"
	b := &stubBackend{err: fmt.Errorf("upstream 401")}
	svc, _ := newTestService(t, b, WithLogger(zap.New(core)), WithEnv(func(string) string { return secret }))

	svc.Generate(context.Background(), candidate, "openai", "", secret)
	svc.Generate(context.Background(), candidate, "groq", "", "")

	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, secret)
		for k, v := range entry.ContextMap() {
			assert.NotContains(t, fmt.Sprint(v), secret, k)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(model.CandidateInput{
		Name:        "Ana Pérez",
		Objective:   "Liderar equipos de datos",
		WorkHistory: "Analista - Banco - 2018-2023",
		Skills:      "SQL, Python",
	})
	assert.Contains(t, p, "Nombre: Ana Pérez")
	assert.Contains(t, p, "Objetivo profesional: Liderar equipos de datos")
	assert.Contains(t, p, "Experiencia laboral: Analista - Banco - 2018-2023")
	assert.Contains(t, p, "Habilidades: SQL, Python")
	assert.Contains(t, p, "Educación: No especificado")
	assert.Contains(t, p, "Idiomas: No especificado")
	assert.Contains(t, p, `"summary"`)
	assert.Contains(t, p, `"experience"`)
	assert.Contains(t, p, `"skills"`)
	assert.Equal(t, p, BuildPrompt(model.CandidateInput{
		Name:        "Ana Pérez",
		Objective:   "Liderar equipos de datos",
		WorkHistory: "Analista - Banco - 2018-2023",
		Skills:      "SQL, Python",
	}))
}

func TestCleanReply(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanReply("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, cleanReply(`texto {"a":{"b":2}} más texto`))
	assert.Equal(t, "sin llaves", cleanReply("  sin llaves  "))
	assert.Equal(t, "} al revés {", cleanReply("} al revés {"))
	assert.True(t, strings.HasPrefix(cleanReply(validReply), "{"))
}
