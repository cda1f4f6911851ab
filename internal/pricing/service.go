package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/rabigarip/priceright/internal/llmclient"
	"github.com/rabigarip/priceright/internal/util/jsonutil"
)

// Service runs the pricing pipeline: validate the questionnaire, render the
// prompt, call the completion backend, recover the JSON report from its text
// output, and verify the price fields. Each call consumes upstream quota;
// identical input yields a fresh, semantically similar but not byte-identical
// result because the generator is non-deterministic even at low temperature.
type Service struct {
	client llmclient.Client
	log    *log.Logger
}

func New(client llmclient.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{client: client, log: logger}
}

// Analyze returns the model's report object verbatim, or one of the package
// error sentinels. Validation runs before anything that costs money; the
// upstream is never touched for an invalid questionnaire.
func (s *Service) Analyze(ctx context.Context, in Input) (json.RawMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	text, err := s.client.Complete(ctx, SystemInstruction, Prompt(in))
	if err != nil {
		var st *llmclient.StatusError
		if errors.As(err, &st) {
			s.log.Printf("pricing: upstream error: status %d: %s", st.Status, st.Body)
			return nil, fmt.Errorf("%w: status %d", ErrUpstream, st.Status)
		}
		s.log.Printf("pricing: completion failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	raw, err := jsonutil.ExtractObject(text)
	if err != nil {
		s.log.Printf("pricing: unparseable completion: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	// Sanity check on the three prices. A zero price is indistinguishable
	// from a missing one here; the check rejects falsy, not just absent.
	var fields map[string]any
	_ = json.Unmarshal(raw, &fields)
	if !truthy(fields["priceLow"]) || !truthy(fields["priceMid"]) || !truthy(fields["priceHigh"]) {
		s.log.Printf("pricing: report missing price fields")
		return nil, ErrInvalidResult
	}
	return raw, nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
