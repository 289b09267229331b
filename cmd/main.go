package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/luca-patrignani/hashledger/ledger"
)

const tamperedData = "Changed something"

const (
	exitVerifyFailed = 1
	exitUsage        = 2
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitCode(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ledger",
		Usage:     "Build a hash-linked ledger from the given payloads and verify it",
		ArgsUsage: "<data>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "hash",
				Usage: "Hash function: fnv, blake2b or a kyber suite name such as Ed25519",
				Value: "fnv",
			},
			&cli.IntFlag{
				Name:  "tamper",
				Usage: "Replace the data of the block at this index before verifying",
			},
			&cli.BoolFlag{
				Name:  "reseal",
				Usage: "Recompute the hash of the tampered block",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log every pushed block",
			},
		},
		Action: func(c *cli.Context) error {
			plog := pterm.DefaultLogger
			if c.Bool("verbose") {
				plog.Level = pterm.LogLevelDebug
			}
			logger := slog.New(pterm.NewSlogHandler(&plog))

			opts := options{
				hash:     c.String("hash"),
				payloads: c.Args().Slice(),
				tamper:   -1,
				reseal:   c.Bool("reseal"),
			}
			if c.IsSet("tamper") {
				opts.tamper = c.Int("tamper")
				if opts.tamper < 0 {
					return cli.Exit(fmt.Sprintf("--tamper must be a block index >= 0, got %d", opts.tamper), exitUsage)
				}
			}

			bc, err := buildLedger(opts, logger)
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}

			table, err := renderChain(bc)
			if err != nil {
				return err
			}
			pterm.Println(table)

			if err := bc.Verify(); err != nil {
				return cli.Exit(fmt.Sprintf("ledger verification failed: %v", err), exitVerifyFailed)
			}
			pterm.Success.Printfln("Ledger of %d blocks verified", bc.Len())
			return nil
		},
		// Exit codes are resolved by main so that Run never terminates the
		// process.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// options holds the parsed command line.
type options struct {
	hash     string
	payloads []string
	tamper   int // -1 leaves the chain untouched
	reseal   bool
}

// buildLedger pushes one block per payload and applies the requested
// tampering.
func buildLedger(opts options, logger *slog.Logger) (*ledger.Blockchain, error) {
	if len(opts.payloads) == 0 {
		return nil, errors.New("at least one payload is required")
	}
	if opts.reseal && opts.tamper < 0 {
		return nil, errors.New("--reseal requires --tamper")
	}
	hasher, err := ledger.HasherByName(opts.hash)
	if err != nil {
		return nil, err
	}

	bc := ledger.NewBlockchain(ledger.WithHasher(hasher), ledger.WithLogger(logger))
	for _, p := range opts.payloads {
		bc.Push(bc.NewBlock(p))
	}

	if opts.tamper >= 0 {
		err := bc.Tamper(opts.tamper, func(b *ledger.Block) {
			b.Data = tamperedData
			if opts.reseal {
				b.Hash = b.CalculateHash()
			}
		})
		if err != nil {
			return nil, err
		}
		logger.Info("block tampered", "index", opts.tamper, "resealed", opts.reseal)
	}
	return bc, nil
}

func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return exitUsage
}
