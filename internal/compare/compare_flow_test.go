package compare_test

import (
	"context"
	"encoding/json"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"rootfind/internal/compare"
	"rootfind/internal/config"
	"rootfind/pkg/rootfind"
)

var _ = ginkgo.Describe("Compare", func() {
	var report *compare.Report

	ginkgo.BeforeEach(func() {
		s, err := config.LoadScenario("classic")
		gomega.Expect(err).To(gomega.Succeed())
		report, err = compare.Compare(context.Background(), compare.Config{Scenario: s, Parallel: 4})
		gomega.Expect(err).To(gomega.Succeed())
	})

	find := func(fn string, m rootfind.Method) compare.Run {
		for _, run := range report.Runs {
			if run.FunctionID == fn && run.Method == m {
				return run
			}
		}
		ginkgo.Fail("missing run " + fn + "/" + string(m))
		return compare.Run{}
	}

	ginkgo.It("converges every run of the classic scenario", func() {
		for _, run := range report.Runs {
			gomega.Expect(run.Outcome).To(gomega.Equal(rootfind.Converged), run.Function+" "+string(run.Method))
		}
	})

	ginkgo.It("needs far fewer Newton than bisection iterations at a simple root", func() {
		gomega.Expect(find("f1", rootfind.MethodNewton).Iterations).
			To(gomega.BeNumerically("<", find("f1", rootfind.MethodBisection).Iterations))
	})

	ginkgo.It("slows Newton down at the triple root of f3", func() {
		gomega.Expect(find("f3", rootfind.MethodNewton).Iterations).
			To(gomega.BeNumerically(">", find("f1", rootfind.MethodNewton).Iterations))
	})

	ginkgo.It("reports roots whose residual meets the value tolerance", func() {
		for _, run := range report.Runs {
			gomega.Expect(run.HasRoot()).To(gomega.BeTrue(), run.Function)
			if run.Criterion == rootfind.ValueTolerance {
				gomega.Expect(*run.FRoot).To(gomega.BeNumerically("~", 0, report.Tolerances.ValueTol))
			}
		}
	})

	ginkgo.It("encodes to JSON without iterate sequences", func() {
		data, err := json.Marshal(report)
		gomega.Expect(err).To(gomega.Succeed())

		var decoded map[string]any
		gomega.Expect(json.Unmarshal(data, &decoded)).To(gomega.Succeed())
		gomega.Expect(decoded["scenario"]).To(gomega.Equal("classic"))

		runs, ok := decoded["runs"].([]any)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(runs).To(gomega.HaveLen(9))
		first := runs[0].(map[string]any)
		gomega.Expect(first).To(gomega.HaveKeyWithValue("outcome", "converged"))
		gomega.Expect(first).NotTo(gomega.HaveKey("Iterates"))
	})
})
