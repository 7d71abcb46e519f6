package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"truej-proof/internal/pkg/common"
	"truej-proof/internal/pkg/prover"
	truejproof "truej-proof/pkg"
)

func main() {
	proverCmd := flag.String("prover", "", "external prover command (empty: use the in-memory congruence-closure stand-in)")
	proverTimeout := flag.Duration("prover-timeout", 5*time.Second, "per-query timeout for -prover")
	requireDecoratedReturn := flag.Bool("require-decorated-return", false, "require every returned value to be a decorated final value")
	flag.Parse()

	if len(flag.Args()) != 1 {
		fmt.Fprintln(os.Stderr, "usage: truejproof [flags] <fixture.json>")
		os.Exit(2)
	}

	log := &common.LogWriter{}

	unit, scopes, types, err := loadUnit(flag.Args()[0])
	if err != nil {
		log.Err(common.NewSystemError(err))
		log.Flush(os.Stdout)
		os.Exit(1)
	}

	var kb prover.KB
	if *proverCmd != "" {
		client := prover.NewSubprocessClient(prover.Config{Command: *proverCmd, Timeout: *proverTimeout}, log)
		kb = client.Root()
	} else {
		kb = prover.NewFakeKB()
	}

	cfg := truejproof.DefaultConfig()
	cfg.RequireDecoratedFinalValue = *requireDecoratedReturn

	result := truejproof.Verify(unit, scopes, types, kb, cfg)
	for _, e := range result.Errors {
		log.Err(e)
	}
	log.Trace(truejproof.FormatTranscript(unit.Name, result))
	log.Flush(os.Stdout)

	if log.HasErrors() {
		os.Exit(1)
	}
}
