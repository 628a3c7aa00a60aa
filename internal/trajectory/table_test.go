package trajectory_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

const runFile = `Simulation Run Results

time span (s): 2
time resolution (s): 1
=> number of time samples: 3

time (s),Sun X (km),Sun Y (km),Sun Z (km),Earth X (km),Earth Y (km),Earth Z (km)

0,0,0,0,10,0,0
1,0,0,0,9,1,0
2,0,0,0,8,2,1
`

var _ = Describe("Parse", func() {
	It("skips the header and transposes samples into quantity rows", func() {
		f, err := trajectory.Parse(strings.NewReader(runFile), trajectory.DefaultHeaderLines)
		Expect(err).NotTo(HaveOccurred())

		Expect(f.Header).To(HaveLen(8))
		Expect(f.Table.Rows()).To(Equal(7))
		Expect(f.Table.Cols()).To(Equal(3))
		Expect(f.Table[0]).To(Equal([]float64{0, 1, 2}))
		Expect(f.Table[4]).To(Equal([]float64{10, 9, 8}))
		Expect(f.Table[6]).To(Equal([]float64{0, 0, 1}))
	})

	It("turns non-numeric cells into NaN", func() {
		f, err := trajectory.Parse(strings.NewReader("0,1,abc\n1,2,3\n"), 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(f.Table[2][0])).To(BeTrue())
		Expect(f.Table[2][1]).To(Equal(3.0))
	})

	It("turns a cell with a stray quote into NaN", func() {
		in := strings.Repeat("header\n", trajectory.DefaultHeaderLines) + "0,1,2,3\n1,4\"x,5,6\n"
		f, err := trajectory.Parse(strings.NewReader(in), trajectory.DefaultHeaderLines)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Table.Rows()).To(Equal(4))
		Expect(f.Table[0]).To(Equal([]float64{0, 1}))
		Expect(f.Table[1][0]).To(Equal(1.0))
		Expect(math.IsNaN(f.Table[1][1])).To(BeTrue())
		Expect(f.Table[2]).To(Equal([]float64{2, 5}))
	})

	It("pads short lines with NaN", func() {
		f, err := trajectory.Parse(strings.NewReader("0,1,2,3\n1,2\n"), 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Table.Rows()).To(Equal(4))
		Expect(f.Table[1]).To(Equal([]float64{1, 2}))
		Expect(math.IsNaN(f.Table[3][1])).To(BeTrue())
	})

	It("ignores a trailing delimiter", func() {
		f, err := trajectory.Parse(strings.NewReader("0,1,2,3,\n"), 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Table.Rows()).To(Equal(4))
	})

	It("returns an empty table when the file ends inside the header", func() {
		f, err := trajectory.Parse(strings.NewReader("only\ntwo lines\n"), 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Table.Rows()).To(BeZero())
		Expect(f.Header).To(HaveLen(2))
	})
})

var _ = Describe("Load", func() {
	It("fails when the file does not exist", func() {
		_, err := trajectory.Load(filepath.Join(GinkgoT().TempDir(), "missing.txt"), 8)
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("reads a run written to disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "run.txt")
		Expect(os.WriteFile(path, []byte(runFile), 0644)).To(Succeed())

		f, err := trajectory.Load(path, trajectory.DefaultHeaderLines)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Table.Cols()).To(Equal(3))
	})
})

var _ = Describe("BodyNames", func() {
	It("reads names from the column header line", func() {
		f, err := trajectory.Parse(strings.NewReader(runFile), trajectory.DefaultHeaderLines)
		Expect(err).NotTo(HaveOccurred())
		Expect(trajectory.BodyNames(f.Header)).To(Equal([]string{"Sun", "Earth"}))
	})

	It("keeps multi-word names", func() {
		header := []string{"time (s),Halley Comet X (km),Halley Comet Y (km),Halley Comet Z (km)"}
		Expect(trajectory.BodyNames(header)).To(Equal([]string{"Halley Comet"}))
	})

	It("returns nil without a column line", func() {
		Expect(trajectory.BodyNames([]string{"Simulation Run Results", ""})).To(BeNil())
	})
})
