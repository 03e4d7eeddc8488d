package eventstream_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/eventstream"
	"github.com/papercomputeco/charnn/pkg/storage"
)

var _ = Describe("Event", func() {
	It("marshals RunCompletedEvent with expected top-level keys", func() {
		run := storage.NewRun("data", "results/abc", []string{"English", "Italian"})
		run.Loss = 1.5
		event := eventstream.NewRunCompletedEvent(run, []float64{0.9, 0.8}, eventstream.EventSource{
			Service: "charnn",
			Version: "dev",
		})

		payload, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())

		var got map[string]any
		Expect(json.Unmarshal(payload, &got)).To(Succeed())

		Expect(got).To(HaveKey("schema_version"))
		Expect(got).To(HaveKey("event_type"))
		Expect(got).To(HaveKey("event_id"))
		Expect(got).To(HaveKey("emitted_at"))
		Expect(got).To(HaveKey("source"))
		Expect(got).To(HaveKey("run"))
		Expect(got).To(HaveKey("diagonal"))
		Expect(got["run"]).To(HaveKeyWithValue("id", run.ID))
	})

	It("copies the run so later edits do not leak into the event", func() {
		run := storage.NewRun("data", "results/abc", nil)
		event := eventstream.NewRunCompletedEvent(run, nil, eventstream.EventSource{})
		run.Loss = 42

		Expect(event.Run.Loss).To(BeZero())
		Expect(event.EventID).NotTo(BeEmpty())
	})

	It("defines stable event constants", func() {
		Expect(eventstream.SchemaVersionV1).To(BeNumerically(">", 0))
		Expect(eventstream.EventTypeRunCompleted).To(Equal("charnn.run.completed"))
	})

	It("provides ErrNilRunEvent for nil payload validation", func() {
		Expect(eventstream.ErrNilRunEvent).To(MatchError("nil run event"))
	})
})
