package main

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/internal/util"
	"github.com/trustification/spog-ui-e2e/pkg/browser"
)

var _ = Describe("SBOMs filter validations", Ordered, Label("ui"), func() {
	var s *browser.Session

	login := func() {
		_, err := s.Login(cfg.UI.URL, loginCredentials)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeAll(func() {
		s = startBrowser()
		login()
	})

	BeforeEach(func() {
		if !cfg.Runner.TestIsolation {
			return
		}
		Expect(s.ClearSession()).To(Succeed())
		login()
	})

	AfterEach(func() {
		screenshotOnFailure(s)
		Expect(s.Reload()).To(Succeed())
	})

	It("SearchInput validations", func() {
		// Navigate to page
		Expect(s.ClickByText(browser.NavMenu, browser.SidebarSBOMs)).To(Succeed())

		// Enter an existing display name substring and assert
		Expect(s.ApplySearchFilterText(util.Prefix(sbomList.UBI9.Name, 3))).To(Succeed())
		Expect(s.ExistsRow(sbomList.UBI9.Name)).To(Succeed())

		Expect(s.ApplySearchFilterText(util.Prefix(sbomList.SeedwingJavaExample.Name, 8))).To(Succeed())
		Expect(s.ExistsRow(sbomList.SeedwingJavaExample.Name)).To(Succeed())

		// Enter a non-existing display name substring
		Expect(s.ApplySearchFilterText(nonExistentSBOM)).To(Succeed())
		Expect(s.ExpectHeading(browser.NoResults)).To(Succeed())
	})

	It("Filter checkboxes validations", func() {
		// Navigate to page
		Expect(s.ClickByText(browser.NavMenu, browser.SidebarSBOMs)).To(Succeed())

		Expect(s.ApplyCheckboxFilter(filterContainer)).To(Succeed())
		Expect(s.ExistsRow(sbomList.UBI9.Name)).To(Succeed())
		Expect(s.ClickByText(browser.Button, browser.ClearAllFilters)).To(Succeed())

		Expect(s.ApplyRadioButtonFilter(createdThisYear)).To(Succeed())
		Expect(s.ExistsRow(sbomList.SeedwingJavaExample.Name)).To(Succeed())
		Expect(s.ClickByText(browser.Button, browser.ClearAllFilters)).To(Succeed())

		// a filter that yields no results
		Expect(s.ApplyRadioButtonFilter(createdLast30)).To(Succeed())
		Expect(s.ExpectHeading(browser.NoResults)).To(Succeed())
	})
})
