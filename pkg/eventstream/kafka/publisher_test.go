package kafka

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/papercomputeco/charnn/pkg/eventstream"
	"github.com/papercomputeco/charnn/pkg/storage"
)

type recordingWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

var _ = Describe("Publisher", func() {
	var (
		w *recordingWriter
		p *Publisher
	)

	BeforeEach(func() {
		w = &recordingWriter{}
		p = newPublisher(w, "charnn.runs", nil)
	})

	It("requires brokers", func() {
		_, err := NewPublisher(Config{Topic: "t"})
		Expect(err).To(MatchError(ErrNoBrokers))
	})

	It("requires a topic", func() {
		_, err := NewPublisher(Config{Brokers: []string{"localhost:9092"}})
		Expect(err).To(HaveOccurred())
	})

	It("builds a writer without dialing", func() {
		pub, err := NewPublisher(Config{Brokers: []string{"localhost:9092"}, Topic: "t"})
		Expect(err).NotTo(HaveOccurred())
		Expect(pub.Close()).To(Succeed())
	})

	It("rejects nil events", func() {
		Expect(p.PublishRun(context.Background(), nil)).To(MatchError(eventstream.ErrNilRunEvent))
	})

	It("writes the event keyed by run id", func() {
		run := storage.NewRun("data", "results/x", []string{"English", "Italian"})
		event := eventstream.NewRunCompletedEvent(run, []float64{0.5, 0.75}, eventstream.EventSource{Service: "charnn"})

		Expect(p.PublishRun(context.Background(), event)).To(Succeed())
		Expect(w.messages).To(HaveLen(1))

		msg := w.messages[0]
		Expect(string(msg.Key)).To(Equal(run.ID))
		Expect(msg.Headers).To(ContainElement(kafkago.Header{Key: "event_type", Value: []byte(eventstream.EventTypeRunCompleted)}))

		var decoded eventstream.RunCompletedEvent
		Expect(json.Unmarshal(msg.Value, &decoded)).To(Succeed())
		Expect(decoded.Run.ID).To(Equal(run.ID))
		Expect(decoded.Diagonal).To(Equal([]float64{0.5, 0.75}))
	})

	It("wraps writer failures with the run id", func() {
		w.err = errors.New("broker down")
		run := storage.NewRun("data", "results/x", nil)

		err := p.PublishRun(context.Background(), eventstream.NewRunCompletedEvent(run, nil, eventstream.EventSource{}))
		Expect(err).To(MatchError(ContainSubstring(run.ID)))
		Expect(errors.Unwrap(err)).To(MatchError("broker down"))
	})

	It("closes the writer", func() {
		Expect(p.Close()).To(Succeed())
		Expect(w.closed).To(BeTrue())
	})
})
