package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/iamNilotpal/sumstream/config"
	"github.com/iamNilotpal/sumstream/internal/core/domain"
	"github.com/iamNilotpal/sumstream/internal/core/services/archive"
	"github.com/iamNilotpal/sumstream/internal/core/services/manifest"
	"github.com/iamNilotpal/sumstream/internal/core/services/stream"
	"github.com/iamNilotpal/sumstream/pkg/errors"
	"github.com/iamNilotpal/sumstream/pkg/logger"
)

const usage = `usage: sumstream [-config file] <command> [arguments]

commands:
  sum <file>             compute and print the file's checksum token
  verify <file> <token>  verify a file against a token
  record <file>          record the file's token into the manifest
  check [file]           verify one manifest entry, or all of them
  pack <src> <dst>       pack a file into a token-stamped archive
  unpack <src> <dst>     unpack an archive, verifying its token
`

func main() {
	log := logger.New("sumstream")
	defer log.Sync()

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Infow("load config error", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, cfg, args[0], args[1:]); err != nil {
		if errors.IsValidationError(err) {
			ve := errors.GetValidationError(err)
			log.Infow("invalid options", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else if mismatch := domain.AsChecksumMismatchError(err); mismatch != nil {
			log.Infow("checksum mismatch",
				"computed", mismatch.Computed.String(),
				"expected", mismatch.Expected.String(),
			)
		} else {
			log.Infow("command failed", "command", args[0], "error", err)
		}
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger, cfg *config.Config, command string, args []string) error {
	switch command {
	case "sum":
		return runSum(log, cfg, args)
	case "verify":
		return runVerify(log, args)
	case "record":
		return runRecord(log, cfg, args)
	case "check":
		return runCheck(log, cfg, args)
	case "pack", "unpack":
		return runArchive(log, cfg, command, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func runSum(log *zap.SugaredLogger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sum", flag.ExitOnError)
	algorithm := fs.String("algo", cfg.Checksum.Algorithm, "digest algorithm (md5, sha256, sha512)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("sum: expected one file argument")
	}

	file, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer file.Close()

	producer, future, err := stream.NewProducer(file, domain.Algorithm(*algorithm))
	if err != nil {
		return err
	}
	if _, err := io.Copy(io.Discard, producer); err != nil {
		return err
	}

	token, _ := future.Token()
	log.Infow("token computed", "file", fs.Arg(0), "algorithm", *algorithm)
	fmt.Println(token)
	return nil
}

func runVerify(log *zap.SugaredLogger, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("verify: expected <file> <token>")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	verifier, _, err := stream.NewVerifier(file, args[1])
	if err != nil {
		return err
	}
	if _, err := io.Copy(io.Discard, verifier); err != nil {
		return err
	}

	log.Infow("verified", "file", args[0], "token", args[1])
	return nil
}

func runRecord(log *zap.SugaredLogger, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	force := fs.Bool("force", false, "replace an existing entry")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("record: expected one file argument")
	}

	service, err := newManifest(cfg)
	if err != nil {
		return err
	}

	token, err := service.Record(fs.Arg(0), *force)
	if err != nil {
		return err
	}

	log.Infow("token recorded", "file", fs.Arg(0), "token", token.String(), "manifest", service.Path())
	return nil
}

func runCheck(log *zap.SugaredLogger, cfg *config.Config, args []string) error {
	service, err := newManifest(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := service.Verify(args[0]); err != nil {
			return err
		}
		log.Infow("entry verified", "file", args[0])
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := service.VerifyAll(ctx); err != nil {
		return err
	}
	log.Infow("all entries verified", "entries", service.Len(), "manifest", service.Path())
	return nil
}

func runArchive(log *zap.SugaredLogger, cfg *config.Config, command string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%s: expected <src> <dst>", command)
	}

	service, err := archive.New(&archive.Options{
		Checksum: &domain.ChecksumOptions{
			Algorithm:  domain.Algorithm(cfg.Checksum.Algorithm),
			BufferSize: cfg.Checksum.BufferSize,
		},
		Compression: &domain.CompressionOptions{
			Enable: cfg.Compression.Enable,
			Level:  cfg.Compression.Level,
		},
	})
	if err != nil {
		return err
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer func() {
		if err := service.Close(closeCtx); err != nil {
			log.Infow("error closing archive service", "error", err)
		}
	}()

	var token domain.Token
	if command == "pack" {
		token, err = service.Pack(args[0], args[1])
	} else {
		token, err = service.Unpack(args[0], args[1])
	}
	if err != nil {
		return err
	}

	log.Infow(command+" complete", "src", args[0], "dst", args[1], "token", token.String())
	return nil
}

func newManifest(cfg *config.Config) (*manifest.Service, error) {
	return manifest.New(&manifest.Options{
		Path: cfg.ManifestPath,
		Checksum: &domain.ChecksumOptions{
			Algorithm:  domain.Algorithm(cfg.Checksum.Algorithm),
			BufferSize: cfg.Checksum.BufferSize,
		},
	})
}
