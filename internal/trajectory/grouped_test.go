package trajectory_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

func makeTable(rows, cols int) trajectory.Table {
	t := make(trajectory.Table, rows)
	for r := range t {
		t[r] = make([]float64, cols)
		for c := range t[r] {
			t[r][c] = float64(100*r + c)
		}
	}
	return t
}

var _ = Describe("Group", func() {
	It("shapes a 1+3N table as [N, 3, T]", func() {
		raw := makeTable(1+3*3, 5)
		g := trajectory.Group(raw)

		Expect(g.Shape()).To(Equal([3]int{3, 3, 5}))
		for b := 0; b < 3; b++ {
			for a := 0; a < 3; a++ {
				for t := 0; t < 5; t++ {
					Expect(g.At(b, a, t)).To(Equal(raw[1+3*b+a][t]))
				}
			}
		}
		Expect(g.Times).To(Equal(raw[0]))
	})

	It("groups a single body with two samples", func() {
		raw := makeTable(4, 2)
		g := trajectory.Group(raw)

		Expect(g.Shape()).To(Equal([3]int{1, 3, 2}))
		Expect(g.Data[0][trajectory.X]).To(Equal(raw[1]))
	})

	It("drops rows past the last full triple", func() {
		g := trajectory.Group(makeTable(6, 3))
		Expect(g.Bodies()).To(Equal(1))
	})

	It("has no bodies when only the time row is present", func() {
		g := trajectory.Group(makeTable(1, 4))
		Expect(g.Bodies()).To(BeZero())
		Expect(g.Steps()).To(Equal(4))
	})

	It("does not alias the raw table", func() {
		raw := makeTable(4, 2)
		g := trajectory.Group(raw)
		raw[1][0] = -1
		Expect(g.At(0, trajectory.X, 0)).To(Equal(100.0))
	})
})

var _ = Describe("Grouped", func() {
	var g *trajectory.Grouped

	BeforeEach(func() {
		g = trajectory.Group(makeTable(1+3*3, 4))
	})

	It("names bodies by index by default", func() {
		Expect(g.Names).To(Equal([]string{"body0", "body1", "body2"}))
		g.SetNames([]string{"Sun", ""})
		Expect(g.Names).To(Equal([]string{"Sun", "body1", "body2"}))
	})

	It("scales coordinates without touching the source", func() {
		s := g.Scaled(100)
		Expect(s.At(0, trajectory.X, 1)).To(Equal(1.01))
		Expect(g.At(0, trajectory.X, 1)).To(Equal(101.0))
	})

	It("selects bodies in the requested order", func() {
		s, err := g.Select([]int{2, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Names).To(Equal([]string{"body2", "body0"}))
		Expect(s.Data[0]).To(Equal(g.Data[2]))
	})

	It("rejects out of range selections", func() {
		_, err := g.Select([]int{3})
		Expect(err).To(MatchError(trajectory.ErrBadSelection))
	})

	It("computes distance from the origin", func() {
		h := trajectory.Group(trajectory.Table{{0}, {3}, {4}, {0}})
		Expect(h.Distance(0)).To(Equal([]float64{5}))
	})
})

var _ = Describe("Open", func() {
	It("loads, groups and names a run", func() {
		path := filepath.Join(GinkgoT().TempDir(), "run.txt")
		Expect(os.WriteFile(path, []byte(runFile), 0644)).To(Succeed())

		g, err := trajectory.Open(path, trajectory.DefaultHeaderLines)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Names).To(Equal([]string{"Sun", "Earth"}))
		Expect(g.Shape()).To(Equal([3]int{2, 3, 3}))
		Expect(g.Duration()).To(Equal(2.0))
	})
})
