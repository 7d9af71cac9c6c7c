package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/probeworks/llmprobe/config"
)

var _ = Describe("Config", func() {
	Describe("Default", func() {
		It("carries the built-in parameters", func() {
			cfg := config.Default()

			Expect(cfg.SampleFrequency.Duration).To(Equal(10 * time.Millisecond))
			Expect(cfg.LLMServiceKeyword).To(Equal("ollamaserve"))
			Expect(cfg.MonitoringServiceKeyword).To(Equal("scaphandre"))
			Expect(cfg.MonitoringStartDelay.Duration).To(Equal(time.Second))
			Expect(cfg.MonitoringEndDelay.Duration).To(Equal(time.Second))
			Expect(cfg.OpenAICompatibleServices).To(ConsistOf("openai", "llamafile", "vllm"))
			Expect(cfg.DataDir).To(Equal("./data"))
		})
	})

	Describe("Load", func() {
		var tmpDir string

		BeforeEach(func() {
			tmpDir = GinkgoT().TempDir()
		})

		writeConfig := func(contents string) string {
			path := filepath.Join(tmpDir, "llmprobe.toml")
			Expect(os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())
			return path
		}

		It("overlays file values onto the defaults", func() {
			path := writeConfig(`
sample_frequency = "25ms"
openai_compatible_services = ["openai", "lmstudio"]
data_dir = "` + filepath.Join(tmpDir, "out") + `"
`)

			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.SampleFrequency.Duration).To(Equal(25 * time.Millisecond))
			Expect(cfg.OpenAICompatibleServices).To(ConsistOf("openai", "lmstudio"))
			// Untouched keys keep their defaults.
			Expect(cfg.MonitoringServiceKeyword).To(Equal("scaphandre"))
			Expect(cfg.MonitoringStartDelay.Duration).To(Equal(time.Second))
		})

		It("creates the data directory", func() {
			dataDir := filepath.Join(tmpDir, "nested", "data")
			path := writeConfig(`data_dir = "` + dataDir + `"`)

			_, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(dataDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})

		It("tolerates an already-existing data directory", func() {
			dataDir := filepath.Join(tmpDir, "data")
			path := writeConfig(`data_dir = "` + dataDir + `"`)

			_, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			_, err = config.Load(path)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails fast when the data directory cannot be created", func() {
			blocker := filepath.Join(tmpDir, "blocker")
			Expect(os.WriteFile(blocker, []byte("not a directory"), 0o644)).To(Succeed())
			path := writeConfig(`data_dir = "` + filepath.Join(blocker, "data") + `"`)

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("create data directory"))
		})

		It("rejects malformed TOML", func() {
			path := writeConfig(`sample_frequency = [not toml`)

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})

		It("rejects unparseable durations", func() {
			path := writeConfig(`sample_frequency = "very fast"`)

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing file path", func() {
			_, err := config.Load(filepath.Join(tmpDir, "absent.toml"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("IsOpenAICompatible", func() {
		It("matches only configured identifiers", func() {
			cfg := config.Default()

			Expect(cfg.IsOpenAICompatible("openai")).To(BeTrue())
			Expect(cfg.IsOpenAICompatible("llamafile")).To(BeTrue())
			Expect(cfg.IsOpenAICompatible("ollama")).To(BeFalse())
			Expect(cfg.IsOpenAICompatible("")).To(BeFalse())
		})
	})
})
