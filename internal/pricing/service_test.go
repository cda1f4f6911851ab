package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/rabigarip/priceright/internal/llmclient"
	"github.com/rabigarip/priceright/internal/tester"
)

const stubReport = `{"priceLow":800,"priceMid":1500,"priceHigh":2500,` +
	`"marketContext":"Mid-career oil painters in New York typically sell in this range.",` +
	`"positiveFactors":[{"factor":"Career stage","detail":"a"},{"factor":"Market","detail":"b"},{"factor":"Sales history","detail":"c"}],` +
	`"developmentAreas":[{"area":"Solo shows","suggestion":"a"},{"area":"Online presence","suggestion":"b"}],` +
	`"tips":["one","two","three"],"confidence":"medium"}`

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestAnalyze_PassesReportThrough(t *testing.T) {
	fake := llmclient.NewFakeClient(stubReport)
	svc := New(fake, quietLogger())

	raw, err := svc.Analyze(context.Background(), fullInput())
	tester.NoErr(t, err)
	tester.Eq(t, string(raw), stubReport)
	tester.Eq(t, fake.Calls, 1)

	var rep Report
	tester.NoErr(t, json.Unmarshal(raw, &rep))
	tester.Eq(t, rep.PriceMid, 1500)
	tester.Eq(t, len(rep.Tips), 3)
}

func TestAnalyze_ToleratesWrappedOutput(t *testing.T) {
	fake := llmclient.NewFakeClient("Here you go:\n```json\n" + stubReport + "\n```\nHope that helps!")
	svc := New(fake, quietLogger())

	raw, err := svc.Analyze(context.Background(), fullInput())
	tester.NoErr(t, err)
	tester.Eq(t, string(raw), stubReport)
}

func TestAnalyze_InvalidInputSkipsUpstream(t *testing.T) {
	fake := llmclient.NewFakeClient(stubReport)
	svc := New(fake, quietLogger())

	in := fullInput()
	in.Medium = ""
	_, err := svc.Analyze(context.Background(), in)
	tester.ErrIs(t, err, ErrInvalidInput)
	tester.Eq(t, fake.Calls, 0, "validation must reject before any upstream call")
}

func TestAnalyze_UpstreamStatusError(t *testing.T) {
	fake := llmclient.NewFakeClient("")
	fake.Err = llmclient.NewPermanentError(&llmclient.StatusError{Status: 429, Body: "quota exhausted"})
	svc := New(fake, quietLogger())

	_, err := svc.Analyze(context.Background(), fullInput())
	tester.ErrIs(t, err, ErrUpstream)
}

func TestAnalyze_TransportError(t *testing.T) {
	fake := llmclient.NewFakeClient("")
	fake.Err = errors.New("dial tcp: connection refused")
	svc := New(fake, quietLogger())

	_, err := svc.Analyze(context.Background(), fullInput())
	tester.ErrIs(t, err, ErrAnalysis)
}

func TestAnalyze_UnparseableOutput(t *testing.T) {
	fake := llmclient.NewFakeClient("I am sorry, I cannot price this work.")
	svc := New(fake, quietLogger())

	_, err := svc.Analyze(context.Background(), fullInput())
	tester.ErrIs(t, err, ErrAnalysis)
}

func TestAnalyze_MalformedJSONSpan(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"priceLow": 800, "priceMid": oops}`)
	svc := New(fake, quietLogger())

	_, err := svc.Analyze(context.Background(), fullInput())
	tester.ErrIs(t, err, ErrAnalysis)
}

// A zero price is rejected exactly like a missing one. That conflates a
// legitimate free listing with a broken report; the behavior is intentional
// and this test pins it down.
func TestAnalyze_ZeroPriceRejected(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"priceLow":0,"priceMid":1500,"priceHigh":2500}`)
	svc := New(fake, quietLogger())

	_, err := svc.Analyze(context.Background(), fullInput())
	tester.ErrIs(t, err, ErrInvalidResult)
}

func TestAnalyze_MissingPriceRejected(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"priceMid":1500,"priceHigh":2500}`)
	svc := New(fake, quietLogger())

	_, err := svc.Analyze(context.Background(), fullInput())
	tester.ErrIs(t, err, ErrInvalidResult)
}
