package prover

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"truej-proof/internal/pkg/common"
)

// Config names the external prover binary and how long a single query may
// run before the pass gives up on it and reports reachedLimit rather than
// blocking forever.
type Config struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// SubprocessClient runs one prover process per query, grounded on
// Dr-Deep-hl's runSMTScript: the script is piped to the process's stdin and
// the first line of stdout is the verdict, mirroring runSMTScript's own
// "first line is the result" convention.
type SubprocessClient struct {
	cfg Config
	log *common.LogWriter
}

func NewSubprocessClient(cfg Config, log *common.LogWriter) *SubprocessClient {
	return &SubprocessClient{cfg: cfg, log: log}
}

// Root returns the KB this client backs at the top of the scope stack —
// spec §3's root KB, empty of assumptions.
func (c *SubprocessClient) Root() KB {
	return &subprocessKB{client: c}
}

type subprocessKB struct {
	client      *SubprocessClient
	parent      *subprocessKB
	assumptions []string
}

func (k *subprocessKB) Child() KB {
	return &subprocessKB{client: k.client, parent: k}
}

func (k *subprocessKB) Assume(formula string) error {
	k.assumptions = append(k.assumptions, formula)
	return nil
}

func (k *subprocessKB) allAssumptions() []string {
	var out []string
	chain := []*subprocessKB{}
	for kb := k; kb != nil; kb = kb.parent {
		chain = append(chain, kb)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, chain[i].assumptions...)
	}
	return out
}

func (k *subprocessKB) ProveIfProven(formula string) (Verdict, error) {
	return k.client.query(k.allAssumptions(), formula)
}

func (k *subprocessKB) AssumeIfProven(formula string) (Verdict, error) {
	v, err := k.ProveIfProven(formula)
	if err == nil && v == ProvenTrue {
		_ = k.Assume(formula)
	}
	return v, err
}

func (k *subprocessKB) SubstituteIfProven(formula string) (Verdict, error) {
	v, err := k.ProveIfProven(formula)
	if err == nil && v == ProvenTrue {
		k.assumptions = nil
		_ = k.Assume(formula)
	}
	return v, err
}

// query tags the request with a uuid (so concurrent queries are traceable
// in the log even though each gets its own process), builds a script of
// one assumption per line followed by the goal, and runs it with the
// configured timeout.
func (c *SubprocessClient) query(assumptions []string, goal string) (Verdict, error) {
	id := uuid.New()
	var script bytes.Buffer
	for _, a := range assumptions {
		fmt.Fprintf(&script, "assume %s\n", a)
	}
	fmt.Fprintf(&script, "prove %s\n", goal)

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.cfg.Command, c.cfg.Args...)
	cmd.Stdin = &script
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.log.Trace(fmt.Sprintf("[prover %s] %s", id, goal))
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return ReachedLimit, nil
	}
	if err != nil {
		return Unsupported, fmt.Errorf("prover %s: %w: %s", id, err, strings.TrimSpace(stderr.String()))
	}

	scanner := bufio.NewScanner(&stdout)
	if !scanner.Scan() {
		return Unsupported, nil
	}
	switch strings.TrimSpace(scanner.Text()) {
	case "provenTrue", "sat", "true":
		return ProvenTrue, nil
	case "reachedLimit", "unknown", "timeout":
		return ReachedLimit, nil
	default:
		return Unsupported, nil
	}
}
