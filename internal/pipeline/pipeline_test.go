package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/zyxtlang/zyxt-go/internal/interp"
	"github.com/zyxtlang/zyxt-go/internal/samples"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func TestAllSamplesRunEndToEnd(t *testing.T) {
	for _, pr := range samples.All() {
		t.Run(pr.Name, func(t *testing.T) {
			e := pr.Build()
			var out bytes.Buffer
			ip := interp.New(&out)
			res := Run(&e, ip, false)
			report := Report(res, false, "", "")
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", pr.Name), report)
		})
	}
}

func TestUndefinedVariableReportsError(t *testing.T) {
	pr, _ := samples.Get("undefined-variable")
	e := pr.Build()
	var out bytes.Buffer
	ip := interp.New(&out)
	res := Run(&e, ip, false)
	if len(res.CheckErrors) == 0 {
		t.Fatalf("expected at least one check error")
	}
	if res.CheckErrors[0].Code != "3.0" {
		t.Fatalf("got code %s, want 3.0", res.CheckErrors[0].Code)
	}
}

func TestSkipTypeCheckStillEvaluates(t *testing.T) {
	pr, _ := samples.Get("arithmetic")
	e := pr.Build()
	var out bytes.Buffer
	ip := interp.New(&out)
	res := Run(&e, ip, true)
	if len(res.CheckErrors) != 0 {
		t.Fatalf("skipTypeCheck should bypass checking entirely, got %v", res.CheckErrors)
	}
	if res.RuntimeErr != nil {
		t.Fatalf("unexpected runtime error: %v", res.RuntimeErr)
	}
}
