package prover

import (
	"testing"
	"time"

	"truej-proof/internal/pkg/common"
)

// These exercise SubprocessClient against /bin/sh as a stand-in for a real
// prover binary — they only check the query/verdict/timeout plumbing, never
// the arithmetic a real prover would actually perform.

func Test_SubprocessClient_ParsesFirstLineAsVerdict(t *testing.T) {
	log := &common.LogWriter{}
	client := NewSubprocessClient(Config{
		Command: "/bin/sh",
		Args:    []string{"-c", "echo provenTrue"},
		Timeout: time.Second,
	}, log)

	v, err := client.Root().ProveIfProven("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ProvenTrue {
		t.Fatalf("got %v, want provenTrue", v)
	}
}

func Test_SubprocessClient_UnknownVerdictLineIsUnsupported(t *testing.T) {
	log := &common.LogWriter{}
	client := NewSubprocessClient(Config{
		Command: "/bin/sh",
		Args:    []string{"-c", "echo nonsense"},
		Timeout: time.Second,
	}, log)

	v, err := client.Root().ProveIfProven("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Unsupported {
		t.Fatalf("got %v, want unsupported", v)
	}
}

func Test_SubprocessClient_DeadlineExceededMapsToReachedLimit(t *testing.T) {
	log := &common.LogWriter{}
	client := NewSubprocessClient(Config{
		Command: "/bin/sh",
		Args:    []string{"-c", "sleep 5"},
		Timeout: 20 * time.Millisecond,
	}, log)

	v, err := client.Root().ProveIfProven("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ReachedLimit {
		t.Fatalf("got %v, want reachedLimit", v)
	}
}

func Test_SubprocessClient_ChildKBCarriesParentAssumptionsIntoTheScript(t *testing.T) {
	log := &common.LogWriter{}
	// Reports provenTrue only if exactly two "assume " lines reached
	// stdin ahead of the "prove " line — confirming a child KB's query
	// carries its parent's assumption along with its own.
	script := `n=$(grep -c '^assume '); if [ "$n" = 2 ]; then echo provenTrue; else echo unsupported; fi`
	client := NewSubprocessClient(Config{
		Command: "/bin/sh",
		Args:    []string{"-c", script},
		Timeout: time.Second,
	}, log)

	root := client.Root()
	_ = root.Assume("a")
	child := root.Child()
	_ = child.Assume("b")

	v, err := child.ProveIfProven("c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ProvenTrue {
		t.Fatalf("got %v, want provenTrue (parent's assumption did not reach the script)", v)
	}
}
