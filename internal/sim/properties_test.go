package sim_test

import (
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/blastsim/internal/sim"
)

func randomChamber(r *rand.Rand) string {
	n := sim.MinChamber + r.Intn(sim.MaxChamber)
	b := make([]byte, n)
	for i := range b {
		if r.Intn(4) == 0 {
			b[i] = sim.Bomb
		} else {
			b[i] = sim.Empty
		}
	}
	return string(b)
}

var _ = Describe("Simulate", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewSource(42))
	})

	It("starts with the input and ends with an empty chamber", func() {
		for i := 0; i < 200; i++ {
			chamber := randomChamber(r)
			force := sim.MinForce + r.Intn(sim.MaxForce)

			frames, err := sim.Simulate(chamber, force)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames[0]).To(Equal(chamber))
			Expect(frames[len(frames)-1]).To(Equal(strings.Repeat(".", len(chamber))))
			for _, f := range frames {
				Expect(f).To(HaveLen(len(chamber)))
			}
		}
	})

	It("only shows an empty chamber in the final frame", func() {
		for i := 0; i < 200; i++ {
			chamber := randomChamber(r)
			frames, err := sim.Simulate(chamber, 1+r.Intn(10))
			Expect(err).NotTo(HaveOccurred())
			if len(frames) < 2 {
				continue
			}

			empty := strings.Repeat(".", len(chamber))
			for _, f := range frames[1 : len(frames)-1] {
				Expect(f).NotTo(Equal(empty))
			}
		}
	})

	It("terminates within the chamber length", func() {
		frames, err := sim.Simulate("B"+strings.Repeat(".", 49), 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(frames) - 1).To(BeNumerically("<=", 50))
	})

	It("is deterministic", func() {
		chamber := randomChamber(r)
		a, err := sim.Simulate(chamber, 3)
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.Simulate(chamber, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("uses only shrapnel symbols after the first frame", func() {
		frames, err := sim.Simulate("BB.B..B.BB", 2)
		Expect(err).NotTo(HaveOccurred())
		for _, f := range frames[1:] {
			Expect(strings.Trim(f, ".<>X")).To(BeEmpty())
		}
	})

	It("returns a single frame when there are no bombs", func() {
		frames, err := sim.Simulate("......", 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(Equal([]string{"......"}))
	})

	DescribeTable("rejects invalid input",
		func(chamber string, force int, target error) {
			frames, err := sim.Simulate(chamber, force)
			Expect(err).To(MatchError(target))
			Expect(frames).To(BeNil())
		},
		Entry("chamber of 51", strings.Repeat(".", 51), 1, sim.ErrChamberSize),
		Entry("empty chamber", "", 1, sim.ErrChamberSize),
		Entry("force of 11", "B", 11, sim.ErrForceRange),
		Entry("force of 0", "B", 0, sim.ErrForceRange),
		Entry("stray character", "B.b", 1, sim.ErrInvalidSymbol),
	)

	It("is safe to call concurrently", func() {
		want, err := sim.Simulate(".....B.....", 1)
		Expect(err).NotTo(HaveOccurred())

		done := make(chan []string, 8)
		for i := 0; i < 8; i++ {
			go func() {
				defer GinkgoRecover()
				got, err := sim.Simulate(".....B.....", 1)
				Expect(err).NotTo(HaveOccurred())
				done <- got
			}()
		}
		for i := 0; i < 8; i++ {
			Eventually(done).Should(Receive(Equal(want)))
		}
	})
})
