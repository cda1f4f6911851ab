package llmclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabigarip/priceright/internal/tester"
)

// flaky fails n times before succeeding.
type flaky struct {
	failures int
	calls    int
	err      error
}

func (f *flaky) Name() string { return "flaky" }
func (f *flaky) Close() error { return nil }
func (f *flaky) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return "ok", nil
}

func TestRetry_RecoversFromTransientError(t *testing.T) {
	inner := &flaky{failures: 1, err: errors.New("connection reset")}
	cli := Wrap(inner, Retry(3, time.Millisecond))

	out, err := cli.Complete(context.Background(), "s", "u")
	tester.NoErr(t, err)
	tester.Eq(t, out, "ok")
	tester.Eq(t, inner.calls, 2)
}

func TestRetry_GivesUpAfterBudget(t *testing.T) {
	inner := &flaky{failures: 10, err: errors.New("connection reset")}
	cli := Wrap(inner, Retry(2, time.Millisecond))

	_, err := cli.Complete(context.Background(), "s", "u")
	tester.True(t, err != nil)
	tester.Eq(t, inner.calls, 2, "budget is a hard bound")
}

func TestRetry_SkipsPermanentErrors(t *testing.T) {
	// Non-success upstream responses burn paid quota; retrying them is
	// never correct.
	inner := &flaky{failures: 10, err: NewPermanentError(&StatusError{Status: 429, Body: "quota"})}
	cli := Wrap(inner, Retry(3, time.Millisecond))

	_, err := cli.Complete(context.Background(), "s", "u")
	var st *StatusError
	tester.True(t, errors.As(err, &st))
	tester.Eq(t, inner.calls, 1, "permanent errors must not be retried")
}

func TestRetry_StopsOnCanceledContext(t *testing.T) {
	inner := &flaky{failures: 10, err: errors.New("timeout")}
	cli := Wrap(inner, Retry(5, time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cli.Complete(ctx, "s", "u")
	tester.ErrIs(t, err, context.Canceled)
}

func TestWrap_Order(t *testing.T) {
	inner := &flaky{}
	cli := Wrap(inner, WithLogging(nil), Retry(1, time.Millisecond))
	tester.Eq(t, cli.Name(), "flaky", "middlewares must not change the client name")
	tester.NoErr(t, cli.Close())
}
