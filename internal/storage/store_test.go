package storage

import (
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"

	"github.com/myphysicslab/myphysicslab-sub000/internal/lab"
)

func testResult() *lab.Result {
	return &lab.Result{
		Names:  []string{"ANGLE", "ANGULAR_VELOCITY", "TIME"},
		Times:  []float64{0.01, 0.02},
		States: [][]float64{{0.5, -0.1, 0.01}, {0.49, -0.2, 0.02}},
		Metrics: map[string]float64{
			"steps": 2,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	g := gomega.NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(gomega.Succeed())

	runID, err := st.Save("pendulum", "rk4", 0.01, 1.0, testResult())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(runID).NotTo(gomega.BeEmpty())

	meta, err := st.Load(runID)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(meta.Sim).To(gomega.Equal("pendulum"))
	g.Expect(meta.Solver).To(gomega.Equal("rk4"))
	g.Expect(meta.Variables).To(gomega.Equal([]string{"ANGLE", "ANGULAR_VELOCITY", "TIME"}))
	g.Expect(meta.Metrics["steps"]).To(gomega.Equal(2.0))

	res, err := st.LoadResult(runID)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res.Names).To(gomega.Equal([]string{"ANGLE", "ANGULAR_VELOCITY", "TIME"}))
	g.Expect(res.Times).To(gomega.Equal([]float64{0.01, 0.02}))
	g.Expect(res.States).To(gomega.Equal([][]float64{{0.5, -0.1, 0.01}, {0.49, -0.2, 0.02}}))
	g.Expect(res.Column("ANGLE")).To(gomega.Equal([]float64{0.5, 0.49}))
}

func TestStoreList(t *testing.T) {
	g := gomega.NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(gomega.Succeed())

	runs, err := st.List()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(runs).To(gomega.BeEmpty())

	_, err = st.Save("pendulum", "rk4", 0.01, 1.0, testResult())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	_, err = st.Save("spring_mass", "euler", 0.01, 1.0, testResult())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	runs, err = st.List()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(runs).To(gomega.HaveLen(2))
}

func TestStoreListMissingDir(t *testing.T) {
	g := gomega.NewWithT(t)
	st := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := st.List()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(runs).To(gomega.BeEmpty())
}

func TestExportJSON(t *testing.T) {
	g := gomega.NewWithT(t)
	st := New(t.TempDir())
	g.Expect(st.Init()).To(gomega.Succeed())

	runID, err := st.Save("pendulum", "rk4", 0.01, 1.0, testResult())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	out := filepath.Join(t.TempDir(), "run.json")
	g.Expect(st.ExportJSON(runID, out)).To(gomega.Succeed())
	g.Expect(out).To(gomega.BeAnExistingFile())
}
