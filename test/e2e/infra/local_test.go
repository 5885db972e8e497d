package infra_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/internal/config"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
	"github.com/trustification/spog-ui-e2e/pkg/importer"
	"github.com/trustification/spog-ui-e2e/pkg/ingest"
	"github.com/trustification/spog-ui-e2e/pkg/sso"
	"github.com/trustification/spog-ui-e2e/test/e2e/infra"
	"github.com/trustification/spog-ui-e2e/test/e2e/service"
)

var realm = infra.Realm{Name: "chicken", ClientID: "walker", ClientSecret: "s3cr3t"}

var _ = Describe("LocalInfraManager", func() {
	var (
		ctx context.Context
		m   *infra.LocalInfraManager
	)

	BeforeEach(func() {
		ctx = context.Background()
		m = infra.NewLocalInfraManager(realm)
	})

	AfterEach(func() {
		Expect(m.StopServices()).To(Succeed())
		Expect(m.StopSSO()).To(Succeed())
	})

	It("should refuse to start the services before the SSO realm", func() {
		Expect(m.StartServices()).NotTo(Succeed())
		Expect(m.Endpoints()).To(Equal(infra.Endpoints{}))
	})

	// Given the SSO realm is running
	// When a client asks for a token
	// Then valid credentials get one and wrong ones are refused
	It("should grant tokens to the configured client only", func() {
		Expect(m.StartSSO()).To(Succeed())
		e := m.Endpoints()
		Expect(e.SSO).To(HavePrefix("http://127.0.0.1:"))

		token, err := sso.NewClient(e.SSO, realm.Name, realm.ClientID, realm.ClientSecret).Token(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(token).NotTo(BeEmpty())

		_, err = sso.NewClient(e.SSO, realm.Name, realm.ClientID, "wrong").Token(ctx)
		Expect(srvErrors.IsTokenError(err)).To(BeTrue())
	})

	// Given the local SSO realm and services
	// When the fixtures are imported
	// Then every document can be found through the SPOG API
	It("should serve the imported fixtures through the search API", func() {
		Expect(m.StartSSO()).To(Succeed())
		Expect(m.StartServices()).To(Succeed())
		e := m.Endpoints()
		Expect(e.AdvisoryURL).To(Equal(e.SpogAPIURL))

		tokens := sso.NewClient(e.SSO, realm.Name, realm.ClientID, realm.ClientSecret)
		imp := importer.NewImporter(
			tokens,
			ingest.NewClient(e.AdvisoryURL),
			ingest.NewClient(e.SBOMURL),
			config.Fixtures{Directory: "../fixtures", Workers: 2},
		)

		for _, report := range imp.ImportAll(ctx) {
			Expect(report.Error()).NotTo(HaveOccurred())
			Expect(report.Results).NotTo(BeEmpty())
		}

		svc := service.NewSpogService(e.SpogAPIURL, tokens)

		sbom, err := svc.FindSBOM(ctx, "ubi9-container.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(sbom.Name).To(Equal("ubi9-container"))

		sbom, err = svc.FindSBOM(ctx, "seedwing-java-example")
		Expect(err).NotTo(HaveOccurred())
		Expect(sbom.ID).To(Equal("seedwing-java-example.json"))

		adv, err := svc.FindAdvisory(ctx, "RHSA-2023:1441")
		Expect(err).NotTo(HaveOccurred())
		Expect(adv.ID).To(Equal("RHSA-2023:1441"))
	})

	It("should reject uploads without a valid token", func() {
		Expect(m.StartSSO()).To(Succeed())
		Expect(m.StartServices()).To(Succeed())

		err := ingest.NewClient(m.Endpoints().SBOMURL).UploadSBOM(ctx, "not-a-jwt", "x.json", []byte(`{}`))
		Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
	})
})
