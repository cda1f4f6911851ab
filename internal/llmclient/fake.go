package llmclient

import "context"

// FakeClient returns a canned completion for offline runs and tests.
// Calls counts how many completions reached the client, which lets tests
// assert that rejected requests never touch the upstream.
type FakeClient struct {
	Response string
	Err      error
	Calls    int
}

// NewFakeClient creates a fake client. An empty response falls back to a
// minimal valid pricing payload so the full pipeline works offline.
func NewFakeClient(response string) *FakeClient {
	if response == "" {
		response = `{"priceLow":300,"priceMid":550,"priceHigh":900,` +
			`"marketContext":"Offline fake response.",` +
			`"positiveFactors":[{"factor":"Offline mode","detail":"This result was generated without an upstream call."},` +
			`{"factor":"Stable output","detail":"The fake client always returns the same payload."},` +
			`{"factor":"Fast turnaround","detail":"No network round-trip is involved."}],` +
			`"developmentAreas":[{"area":"Configure a provider","suggestion":"Set GROQ_API_KEY to get real analysis."},` +
			`{"area":"Real market data","suggestion":"Offline results carry no market signal."}],` +
			`"tips":["Set GROQ_API_KEY","Restart the gateway","Resubmit the questionnaire"],` +
			`"confidence":"low"}`
	}
	return &FakeClient{Response: response}
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.Calls++
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}
