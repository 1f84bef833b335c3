package config

import (
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"
)

func TestDefaultConfig(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := DefaultConfig()
	g.Expect(cfg.Sim).To(gomega.Equal("pendulum"))
	g.Expect(cfg.Dt).To(gomega.BeNumerically(">", 0))
	g.Expect(cfg.Validate()).To(gomega.Succeed())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	g := gomega.NewWithT(t)
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := &Config{
		Sim:      "spring_mass",
		Solver:   "euler",
		Dt:       0.005,
		Duration: 5,
		Params:   map[string]float64{"stiffness": 12.5},
		InitState: map[string]float64{
			"POSITION": 1.25,
		},
	}
	g.Expect(Save(path, cfg)).To(gomega.Succeed())

	got, err := Load(path)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(got).To(gomega.Equal(cfg))
}

func TestLoadRejectsInvalid(t *testing.T) {
	g := gomega.NewWithT(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	g.Expect(Save(path, &Config{Sim: "pendulum", Dt: -1, Duration: 10})).To(gomega.Succeed())
	_, err := Load(path)
	g.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("dt must be positive")))
}

func TestLoadMissingFile(t *testing.T) {
	g := gomega.NewWithT(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	g.Expect(err).To(gomega.HaveOccurred())
}

func TestGetPreset(t *testing.T) {
	g := gomega.NewWithT(t)
	cfg := GetPreset("pendulum", "small")
	g.Expect(cfg).NotTo(gomega.BeNil())
	g.Expect(cfg.InitState["ANGLE"]).To(gomega.Equal(0.2))

	g.Expect(GetPreset("pendulum", "nonexistent")).To(gomega.BeNil())
	g.Expect(GetPreset("nonexistent", "small")).To(gomega.BeNil())
}

func TestListPresets(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(ListPresets("pendulum")).NotTo(gomega.BeEmpty())
	g.Expect(ListPresets("nonexistent")).To(gomega.BeNil())
}

func TestPresetsValidate(t *testing.T) {
	g := gomega.NewWithT(t)
	for sim, presets := range Presets {
		for name, cfg := range presets {
			g.Expect(cfg.Validate()).To(gomega.Succeed(), "%s/%s", sim, name)
			g.Expect(cfg.Sim).To(gomega.Equal(sim), "%s/%s", sim, name)
		}
	}
}
