package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

func testCase(t *testing.T) (seal.Input, seal.Result) {
	t.Helper()
	in := seal.Input{
		DOuter:    0.150,
		NRPM:      10300,
		Rho:       1.225,
		Mu:        1.81e-5,
		LambdaGas: 0.026,
		Pr:        0.71,
		UAxial:    5,
		DeltaGap:  5e-6,
		DHyd:      1e-5,
		B:         2,
	}
	res, err := seal.Calculate(in)
	require.NoError(t, err)
	return in, res
}

func TestPrompt_Triples(t *testing.T) {
	in, res := testCase(t)
	p := Prompt(in, res)

	for _, want := range []string{
		"d_outer: 0.15: m",
		"n_rpm: 10300: rpm",
		"mu: 1.81e-05: Pa.s",
		"re_ax:",
		"h_r:",
		"W/(m2.K)",
	} {
		assert.Contains(t, p, want)
	}
	assert.Contains(t, p, "Inputs:")
	assert.Contains(t, p, "Results:")
}

type stubSummarizer struct {
	text string
	err  error
}

func (s *stubSummarizer) Summarize(ctx context.Context, in seal.Input, res seal.Result) (string, error) {
	return s.text, s.err
}

func postInput(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"d_outer":0.15,"n_rpm":10300,"rho":1.225,"mu":1.81e-5,` +
		`"lambda_gas":0.026,"pr":0.71,"u_axial":5,"delta_gap":5e-6,"d_hyd":1e-5,"b":2}`
	req := httptest.NewRequest(http.MethodPost, "/tools/seal/summary", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Summarize(rec, req)
	return rec
}

func TestHandler_WithSummary(t *testing.T) {
	h := &Handler{Summarizer: &stubSummarizer{text: "Turbulent on the rotor side."}}
	rec := postInput(t, h)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Turbulent on the rotor side.", resp.Summary)
	assert.False(t, resp.Degraded)
	assert.Greater(t, resp.Result.HR, 0.0)
}

func TestHandler_DegradesOnServiceError(t *testing.T) {
	svcErr := &ExternalServiceError{Err: errors.New("429")}
	h := &Handler{Summarizer: &stubSummarizer{err: svcErr}}
	rec := postInput(t, h)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Summary)
	// The calculation must be unaffected by the failing collaborator.
	assert.Greater(t, resp.Result.ReRot, 0.0)
}

func TestHandler_NoSummarizerConfigured(t *testing.T) {
	h := &Handler{}
	rec := postInput(t, h)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
}

func TestNewAnthropic_RequiresClientAndModel(t *testing.T) {
	_, err := NewAnthropic(nil, "claude-sonnet-4-5")
	assert.Error(t, err)
	_, err = NewAnthropicFromAPIKey("", "claude-sonnet-4-5")
	assert.Error(t, err)
}
