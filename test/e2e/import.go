package main

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/internal/models"
	"github.com/trustification/spog-ui-e2e/pkg/importer"
)

var _ = Describe("Fixture import", Label("import"), func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should import every fixture", func() {
		Expect(importReports).To(HaveLen(2))
		for _, report := range importReports {
			Expect(report.Error()).NotTo(HaveOccurred(), "%s batch", report.Kind.Plural())
			Expect(report.Results).NotTo(BeEmpty())
		}
	})

	// Given the fixtures imported before the suite
	// When we search the SPOG API for each SBOM id
	// Then every SBOM is found
	It("should make every SBOM searchable", func() {
		fixtures, err := importer.ReadFixtures(cfg.Fixtures.SBOMsDirectory(), models.FixtureKindSBOM)
		Expect(err).NotTo(HaveOccurred())

		for _, f := range fixtures {
			Eventually(func() error {
				_, err := spogSvc.FindSBOM(ctx, f.Filename)
				return err
			}, cfg.Runner.IndexTimeout, time.Second).Should(Succeed(), f.Filename)
		}
	})

	It("should make every advisory searchable", func() {
		fixtures, err := importer.ReadFixtures(cfg.Fixtures.AdvisoriesDirectory(), models.FixtureKindAdvisory)
		Expect(err).NotTo(HaveOccurred())

		for _, f := range fixtures {
			key := models.DocumentName(models.FixtureKindAdvisory, f.Content, f.Filename)
			Eventually(func() error {
				_, err := spogSvc.FindAdvisory(ctx, key)
				return err
			}, cfg.Runner.IndexTimeout, time.Second).Should(Succeed(), key)
		}
	})
})
