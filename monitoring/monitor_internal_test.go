package monitoring

import (
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/triagehall/wardkeeper/ward"
)

var _ = Describe("Monitor", func() {
	var (
		m        *Monitor
		patients *ward.AdmissionQueue
		supplies *ward.SupplyStack
		triage   *ward.TriageHeap
		roster   *ward.RotationQueue
	)

	BeforeEach(func() {
		m = NewMonitor()

		patients = ward.NewAdmissionQueue()
		supplies = ward.NewSupplyStack()
		triage = ward.NewTriageHeap()
		roster = ward.NewRotationQueue()

		m.RegisterContainer("patients", patients)
		m.RegisterContainer("supplies", supplies)
		m.RegisterContainer("emergencies", triage)
		m.RegisterContainer("ambulances", roster)
	})

	It("should list registered containers", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/list_containers", nil)

		m.listContainers(w, r)

		Expect(w.Body.String()).To(Equal(
			`["patients","supplies","emergencies","ambulances"]`))
	})

	It("should report occupancy sorted by percent", func() {
		patients.Push(ward.NewPatient("A01", "Alice", "Flu"))
		for i := 0; i < 10; i++ {
			roster.Push(ward.NewAmbulance("AMB"))
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/occupancy", nil)

		m.listOccupancy(w, r)

		// Half-full roster sorts above the nearly empty patient queue.
		Expect(w.Body.String()).To(Equal(
			`[{"container":"ambulances","level":10,"cap":20},` +
				`{"container":"patients","level":1,"cap":100},` +
				`{"container":"supplies","level":0,"cap":100},` +
				`{"container":"emergencies","level":0,"cap":100}]`))
	})

	It("should report occupancy sorted by level", func() {
		patients.Push(ward.NewPatient("A01", "Alice", "Flu"))
		patients.Push(ward.NewPatient("A02", "Bob", "Cut"))
		roster.Push(ward.NewAmbulance("AMB"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/occupancy?sort=level", nil)

		m.listOccupancy(w, r)

		Expect(w.Body.String()).To(HavePrefix(
			`[{"container":"patients","level":2,"cap":100},` +
				`{"container":"ambulances","level":1,"cap":20}`))
	})

	It("should apply limit and offset", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/occupancy?limit=2&offset=1", nil)

		m.listOccupancy(w, r)

		Expect(w.Body.String()).To(MatchRegexp(
			`^\[\{[^{]*\},\{[^{]*\}\]$`))
	})

	It("should reject an invalid sort method", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/occupancy?sort=bogus", nil)

		m.listOccupancy(w, r)

		Expect(w.Code).To(Equal(400))
	})

	It("should 404 for an unknown container", func() {
		w := httptest.NewRecorder()

		c := m.findContainerOr404(w, "nope")

		Expect(c).To(BeNil())
		Expect(w.Code).To(Equal(404))
	})

	It("should find a registered container", func() {
		w := httptest.NewRecorder()

		c := m.findContainerOr404(w, "supplies")

		Expect(c).To(BeIdenticalTo(supplies))
	})
})
