package config_test

import (
	"flag"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trustification/spog-ui-e2e/internal/config"
)

var _ = Describe("Flags", func() {
	keys := config.FlagKeys{
		"fixtures":      "fixtures.directory",
		"fail-on-error": "runner.failOnImportError",
	}

	newFlags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("fixtures", "", "")
		fs.Bool("fail-on-error", false, "")
		return fs
	}

	AfterEach(func() {
		os.Unsetenv("SPOG_FIXTURES_DIRECTORY")
	})

	// Given a fixtures directory in the environment and on the command line
	// When the configuration is loaded
	// Then the flag wins
	It("should rank flags above the environment", func() {
		os.Setenv("SPOG_FIXTURES_DIRECTORY", "/from/env")
		fs := newFlags()
		Expect(fs.Parse([]string{"--fixtures", "/from/flag", "--fail-on-error"})).To(Succeed())

		v := viper.New()
		Expect(config.BindFlags(v, fs, keys)).To(Succeed())
		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Fixtures.Directory).To(Equal("/from/flag"))
		Expect(cfg.Runner.FailOnImportError).To(BeTrue())
	})

	It("should leave unset flags out", func() {
		os.Setenv("SPOG_FIXTURES_DIRECTORY", "/from/env")
		fs := newFlags()
		Expect(fs.Parse(nil)).To(Succeed())

		v := viper.New()
		Expect(config.BindFlags(v, fs, keys)).To(Succeed())
		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Fixtures.Directory).To(Equal("/from/env"))
		Expect(cfg.Fixtures.Workers).To(Equal(8))
	})

	It("should fail on a flag that is not registered", func() {
		err := config.BindFlags(viper.New(), newFlags(), config.FlagKeys{"nope": "ui.url"})
		Expect(err).To(MatchError(ContainSubstring(`unknown flag "nope"`)))
	})

	// Given a standard flag set where only some flags were passed
	// When it is wrapped
	// Then only the passed flags count as set
	It("should mark the parsed standard flags as changed", func() {
		goFlags := flag.NewFlagSet("e2e", flag.ContinueOnError)
		goFlags.String("ui-url", "", "")
		goFlags.Bool("interactive", false, "")
		Expect(goFlags.Parse([]string{"-ui-url", "http://spog.example.com"})).To(Succeed())

		fs := config.FromGoFlags(goFlags)
		Expect(fs.Lookup("ui-url").Changed).To(BeTrue())
		Expect(fs.Lookup("interactive").Changed).To(BeFalse())

		v := viper.New()
		Expect(config.BindFlags(v, fs, config.FlagKeys{"ui-url": "ui.url", "interactive": "runner.interactive"})).To(Succeed())
		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.UI.URL).To(Equal("http://spog.example.com"))
		Expect(cfg.Runner.Interactive).To(BeFalse())
	})
})
