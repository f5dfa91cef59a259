package events

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/IBM/sarama"
	"github.com/gometeo/citydash/internal/model"
)

// Tally counts consumed lookups per kind and outcome.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

func tallyKey(e model.LookupEvent) string {
	outcome := "ok"
	if e.Status >= 400 {
		outcome = "failed"
	}
	return e.Kind + "." + outcome
}

func (t *Tally) Add(e model.LookupEvent) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := tallyKey(e)
	t.counts[key]++
	return t.counts[key]
}

// Snapshot returns "kind.outcome" counts.
func (t *Tally) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// LogArgs flattens a snapshot into sorted slog key/value pairs.
func (t *Tally) LogArgs() []any {
	snap := t.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, snap[k])
	}
	return args
}

// ConsumerHandler is a sarama.ConsumerGroupHandler that audits lookup events.
type ConsumerHandler struct {
	logger *slog.Logger
	tally  *Tally
}

func NewConsumerHandler(logger *slog.Logger, tally *Tally) *ConsumerHandler {
	return &ConsumerHandler{logger: logger, tally: tally}
}

func (h *ConsumerHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *ConsumerHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *ConsumerHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handle(msg)
		sess.MarkMessage(msg, "")
	}
	return nil
}

// handle records one message. Broken payloads are logged and skipped so they
// do not block the partition.
func (h *ConsumerHandler) handle(msg *sarama.ConsumerMessage) bool {
	var event model.LookupEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("Broken lookup event",
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err)
		return false
	}

	count := h.tally.Add(event)
	h.logger.Info("Lookup audited",
		"id", event.ID,
		"kind", event.Kind,
		"query", event.Query,
		"status", event.Status,
		"duration_ms", event.DurationMs,
		"seen", count)
	return true
}
